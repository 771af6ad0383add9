// SPDX-License-Identifier: EPL-2.0

package session

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ik5/namhost/engine"
)

// DefaultMaximumBufferSize is the watermark used by NewDefault and when New
// receives a size below 1.
const DefaultMaximumBufferSize = 512

// engine types whose fast activation switch has been flipped
var fastActivated sync.Map

// Session owns zero or one loaded model, the scratch buffer the engine writes
// into, and the largest block size the model is prepared for.
//
// See the package documentation for the concurrency contract.
type Session struct {
	engine engine.Engine

	model   *model
	path    string
	scratch []float32

	maxBufferSize int
	sampleRate    float64

	prewarmOnGrowth bool
	log             zerolog.Logger
	observer        Observer
}

// New creates a session with no model loaded and a scratch buffer of
// maxBufferSize samples.
//
// The first session created for a given engine type also enables the
// engine's fast activation mode when it offers one.
func New(eng engine.Engine, maxBufferSize int, opts ...Option) *Session {
	if maxBufferSize < 1 {
		maxBufferSize = DefaultMaximumBufferSize
	}

	enableFastActivation(eng)

	s := &Session{
		engine:        eng,
		scratch:       make([]float32, maxBufferSize),
		maxBufferSize: maxBufferSize,
		log:           zerolog.Nop(),
		observer:      NopObserver{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewDefault creates a session with DefaultMaximumBufferSize.
func NewDefault(eng engine.Engine, opts ...Option) *Session {
	return New(eng, DefaultMaximumBufferSize, opts...)
}

func enableFastActivation(eng engine.Engine) {
	fa, ok := eng.(engine.FastActivator)
	if !ok {
		return
	}

	if _, done := fastActivated.LoadOrStore(reflect.TypeOf(eng), struct{}{}); done {
		return
	}
	fa.EnableFastActivation()
}

// Load replaces the current model with the one stored at path, then resets
// and prewarms it at its expected sample rate and the current watermark.
//
// On failure the session is left exactly as it was. Load must not be called
// from a real-time thread.
func (s *Session) Load(path string) error {
	m, err := s.open(path)
	if err != nil {
		return err
	}

	s.prepare(m, s.maxBufferSize)
	s.swap(m)

	return nil
}

// open asks the engine for a new model. It reads only fields that never
// change after New, so Shared calls it without holding its lock.
func (s *Session) open(path string) (*model, error) {
	if path == "" || strings.IndexByte(path, 0) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	h, err := s.engine.Load(path)
	if err == nil && h == nil {
		err = errNoHandle
	}
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("model load failed")
		s.observer.ModelLoadFailed(path, err)

		return nil, fmt.Errorf("%w: %q: %w", ErrModelLoadFailed, path, err)
	}

	return newModel(h, path), nil
}

func (s *Session) prepare(m *model, blockSize int) {
	m.reset(m.sampleRate, blockSize)
	m.handle.Prewarm()
}

// swap installs m and destroys the model it replaces.
func (s *Session) swap(m *model) {
	if m.blockSize != s.maxBufferSize {
		s.prepare(m, s.maxBufferSize)
	}

	old := s.model
	s.model = m
	s.path = m.path
	s.sampleRate = m.sampleRate

	if old != nil {
		old.close()
		s.log.Debug().Str("path", old.path).Msg("model replaced")
		s.observer.ModelDestroyed(old.path)
	}

	s.log.Info().
		Str("path", m.path).
		Float64("sample_rate", m.sampleRate).
		Int("max_buffer_size", s.maxBufferSize).
		Msg("model loaded")
	s.observer.ModelLoaded(m.path, m.sampleRate)
}

// Process runs buffer through the model in place.
//
// Without a model buffer is left untouched. A buffer longer than the
// watermark grows it first; this is the only case where Process allocates.
func (s *Session) Process(buffer []float32) {
	if s.model == nil || len(buffer) == 0 {
		return
	}

	n := len(buffer)
	if n > s.maxBufferSize {
		s.grow(n)
	}

	out := s.scratch[:n]
	s.model.handle.Process(buffer, out)
	copy(buffer, out)
}

func (s *Session) grow(n int) {
	from := s.maxBufferSize
	s.resize(n)

	s.model.reset(s.sampleRate, n)
	if s.prewarmOnGrowth {
		s.model.handle.Prewarm()
	}

	s.log.Debug().Int("from", from).Int("to", n).Msg("buffer grown")
	s.observer.BufferResized(from, n)
}

// resize keeps len(scratch) equal to the watermark, reusing capacity when it
// can.
func (s *Session) resize(n int) {
	s.maxBufferSize = n
	if cap(s.scratch) >= n {
		s.scratch = s.scratch[:n]
		return
	}
	s.scratch = make([]float32, n)
}

// Reset tells the model the operating sample rate and block size. A
// sampleRate of 0 or below selects the model's expected rate. A bufferSize
// above the watermark raises it; the model is always prepared for at least
// the watermark. Without a model Reset does nothing.
func (s *Session) Reset(sampleRate float64, bufferSize int) {
	if s.model == nil {
		return
	}

	if sampleRate <= 0 {
		sampleRate = s.model.sampleRate
	}

	if bufferSize > s.maxBufferSize {
		from := s.maxBufferSize
		s.resize(bufferSize)
		s.observer.BufferResized(from, bufferSize)
	}

	s.sampleRate = sampleRate
	s.model.reset(sampleRate, s.maxBufferSize)
}

// Prewarm settles the model's start-up transient. Call it after Reset and
// before the first audible block. Without a model Prewarm does nothing.
func (s *Session) Prewarm() {
	if s.model == nil {
		return
	}
	s.model.handle.Prewarm()
}

// SetMaximumBufferSize sets the watermark explicitly, shrinking it if asked.
// A loaded model is reset and prewarmed for the new size. Sizes below 1 are
// ignored. This is a control-path call.
func (s *Session) SetMaximumBufferSize(n int) {
	if n < 1 || n == s.maxBufferSize {
		return
	}

	from := s.maxBufferSize
	s.resize(n)
	s.observer.BufferResized(from, n)

	if s.model != nil {
		s.model.reset(s.sampleRate, n)
		s.model.handle.Prewarm()
	}
}

// ExpectedSampleRate is the rate the loaded model was trained at, or 0 when
// no model is loaded or the model does not say.
func (s *Session) ExpectedSampleRate() float64 {
	if s.model == nil {
		return 0
	}
	return s.model.sampleRate
}

// SampleRate is the rate of the latest reset, or 0 without a model.
func (s *Session) SampleRate() float64 {
	if s.model == nil {
		return 0
	}
	return s.sampleRate
}

// ModelPath returns the path of the loaded model.
func (s *Session) ModelPath() (string, bool) {
	if s.model == nil {
		return "", false
	}
	return s.path, true
}

// Loaded reports whether a model is loaded.
func (s *Session) Loaded() bool { return s.model != nil }

// MaximumBufferSize is the largest block the model is currently prepared
// for. Process raises it on demand.
func (s *Session) MaximumBufferSize() int { return s.maxBufferSize }

// Close destroys the loaded model, if any. The session stays usable and
// behaves as if nothing was ever loaded. Close is idempotent.
func (s *Session) Close() error {
	if s.model == nil {
		return nil
	}

	path := s.model.path
	s.model.close()
	s.model = nil
	s.path = ""
	s.sampleRate = 0

	s.log.Debug().Str("path", path).Msg("model destroyed")
	s.observer.ModelDestroyed(path)

	return nil
}
