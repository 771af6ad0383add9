// SPDX-License-Identifier: EPL-2.0

// Package enginetest provides an in-memory engine.Engine that records every
// call made against it. Handles apply a fixed gain so tests can tell
// processed samples from untouched ones.
package enginetest

import (
	"errors"
	"sync"

	"github.com/ik5/namhost/engine"
)

var ErrNoSuchModel = errors.New("enginetest: no such model")

// Call is one recorded operation.
type Call struct {
	Op         string // load, reset, prewarm, process, destroy
	Path       string
	SampleRate float64
	BlockSize  int
	Frames     int
}

// Engine is a fake engine. Models must be registered with AddModel before
// they can be loaded; any other path fails with ErrNoSuchModel.
type Engine struct {
	mu        sync.Mutex
	models    map[string]Model
	calls     []Call
	handles   []*Handle
	fastCalls int
}

// Model describes what a registered path loads into.
type Model struct {
	Gain       float32
	SampleRate float64
}

func New() *Engine {
	return &Engine{models: make(map[string]Model)}
}

// AddModel makes path loadable.
func (e *Engine) AddModel(path string, m Model) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.models[path] = m
	return e
}

func (e *Engine) EnableFastActivation() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.fastCalls++
}

func (e *Engine) Load(path string) (engine.Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, Call{Op: "load", Path: path})

	m, ok := e.models[path]
	if !ok {
		return nil, ErrNoSuchModel
	}

	h := &Handle{engine: e, path: path, model: m}
	e.handles = append(e.handles, h)
	return h, nil
}

func (e *Engine) record(c Call) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, c)
}

// Calls returns a copy of the call log.
func (e *Engine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]Call(nil), e.calls...)
}

// Ops returns only the operation names from the call log.
func (e *Engine) Ops() []string {
	calls := e.Calls()
	ops := make([]string, len(calls))
	for i, c := range calls {
		ops[i] = c.Op
	}
	return ops
}

// ResetCalls clears the call log, keeping handles and models.
func (e *Engine) ResetCalls() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = nil
}

// FastActivationCalls counts EnableFastActivation invocations.
func (e *Engine) FastActivationCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.fastCalls
}

// Handles returns every handle ever produced, in load order.
func (e *Engine) Handles() []*Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]*Handle(nil), e.handles...)
}

// Live counts handles that were loaded and not yet destroyed.
func (e *Engine) Live() int {
	n := 0
	for _, h := range e.Handles() {
		if h.Destroys() == 0 {
			n++
		}
	}
	return n
}

// Handle is a fake model instance.
type Handle struct {
	engine *Engine
	path   string
	model  Model

	mu           sync.Mutex
	destroys     int
	maxBlock     int
	sampleRate   float64
	prewarmed    int
	overrunCount int
}

func (h *Handle) Path() string { return h.path }

func (h *Handle) Reset(sampleRate float64, maxBlockSize int) {
	h.mu.Lock()
	h.sampleRate = sampleRate
	h.maxBlock = maxBlockSize
	h.mu.Unlock()

	h.engine.record(Call{Op: "reset", Path: h.path, SampleRate: sampleRate, BlockSize: maxBlockSize})
}

func (h *Handle) Prewarm() {
	h.mu.Lock()
	h.prewarmed++
	h.mu.Unlock()

	h.engine.record(Call{Op: "prewarm", Path: h.path})
}

// Process multiplies by the model gain. Blocks larger than the last reset
// size are counted as overruns, which a correct caller never produces.
func (h *Handle) Process(in, out []float32) {
	h.mu.Lock()
	if len(out) > h.maxBlock {
		h.overrunCount++
	}
	h.mu.Unlock()

	for i := range out {
		out[i] = in[i] * h.model.Gain
	}

	h.engine.record(Call{Op: "process", Path: h.path, Frames: len(out)})
}

func (h *Handle) ExpectedSampleRate() float64 { return h.model.SampleRate }

func (h *Handle) Destroy() {
	h.mu.Lock()
	h.destroys++
	h.mu.Unlock()

	h.engine.record(Call{Op: "destroy", Path: h.path})
}

// Destroys counts Destroy calls; anything above one is a double free.
func (h *Handle) Destroys() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.destroys
}

// Overruns counts Process calls larger than the prepared block size.
func (h *Handle) Overruns() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.overrunCount
}

// MaxBlock is the block size from the latest Reset.
func (h *Handle) MaxBlock() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.maxBlock
}

// Prewarms counts Prewarm calls.
func (h *Handle) Prewarms() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.prewarmed
}
