// SPDX-License-Identifier: EPL-2.0

package session

import "sync"

// Shared guards a Session with a mutex so a control goroutine can load
// models while an audio goroutine processes.
//
// Load parses and prewarms the new model without holding the lock and only
// takes it to swap models. Process never waits: when the lock is held it
// leaves the block dry and reports false.
type Shared struct {
	mu sync.Mutex
	s  *Session
}

// NewShared wraps s. s must not be used directly afterwards.
func NewShared(s *Session) *Shared {
	return &Shared{s: s}
}

// Load behaves like Session.Load. Only the final swap, and a second reset
// if the watermark moved in the meantime, happen under the lock.
func (sh *Shared) Load(path string) error {
	m, err := sh.s.open(path)
	if err != nil {
		return err
	}

	sh.mu.Lock()
	blockSize := sh.s.maxBufferSize
	sh.mu.Unlock()

	sh.s.prepare(m, blockSize)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.s.swap(m)
	return nil
}

// Process runs buffer through the model if the session is free. It returns
// false, leaving buffer untouched, when a control operation holds the lock.
func (sh *Shared) Process(buffer []float32) bool {
	if !sh.mu.TryLock() {
		return false
	}
	defer sh.mu.Unlock()

	sh.s.Process(buffer)
	return true
}

// ProcessWait is Process for callers that may block.
func (sh *Shared) ProcessWait(buffer []float32) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.s.Process(buffer)
}

// Reset prepares the model for sampleRate and bufferSize under the lock.
func (sh *Shared) Reset(sampleRate float64, bufferSize int) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.s.Reset(sampleRate, bufferSize)
}

// Prewarm settles the model's internal state under the lock.
func (sh *Shared) Prewarm() {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.s.Prewarm()
}

// SetMaximumBufferSize moves the watermark under the lock.
func (sh *Shared) SetMaximumBufferSize(n int) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.s.SetMaximumBufferSize(n)
}

// ExpectedSampleRate reports the loaded model's rate, or 0.
func (sh *Shared) ExpectedSampleRate() float64 {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	return sh.s.ExpectedSampleRate()
}

// ModelPath returns the path of the loaded model.
func (sh *Shared) ModelPath() (string, bool) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	return sh.s.ModelPath()
}

// MaximumBufferSize returns the current watermark.
func (sh *Shared) MaximumBufferSize() int {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	return sh.s.MaximumBufferSize()
}

// Loaded reports whether a model is loaded.
func (sh *Shared) Loaded() bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	return sh.s.Loaded()
}

// Close destroys the loaded model. It waits for a Process in flight.
func (sh *Shared) Close() error {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	return sh.s.Close()
}
