// SPDX-License-Identifier: EPL-2.0

// Package engine defines the boundary between a model session and the neural
// DSP engine that actually runs a model.
//
// The engine is opaque: it parses model files, owns the network state and
// produces output samples. Implementations live in subpackages (see
// engine/nam) or in tests.
//
// None of the methods here are safe for concurrent use on the same Handle.
// Serialising access is the caller's job; package session documents and
// enforces the contract.
package engine

// Engine constructs model handles from files on disk.
type Engine interface {
	// Load parses the model at path and returns a handle to it.
	// Load may perform file I/O and large allocations and must never be
	// called from a real-time audio callback.
	Load(path string) (Handle, error)
}

// Handle is a loaded model. It is exclusively owned by whoever received it
// from Load, and must be destroyed exactly once.
type Handle interface {
	// Reset prepares internal state for the given sample rate and the
	// largest block that will be passed to Process.
	Reset(sampleRate float64, maxBlockSize int)

	// Prewarm runs the model through its start-up transient so the first
	// audible block does not glitch.
	Prewarm()

	// Process reads len(out) samples from in and writes the same number of
	// samples to out. len(in) >= len(out) and len(out) must not exceed the
	// block size given to the latest Reset.
	Process(in, out []float32)

	// ExpectedSampleRate reports the rate the model was trained at, or 0
	// when unknown.
	ExpectedSampleRate() float64

	// Destroy releases the model. The handle must not be used afterwards.
	Destroy()
}

// FastActivator is implemented by engines that offer a process-wide fast
// approximation of the activation function. EnableFastActivation must be
// idempotent.
type FastActivator interface {
	EnableFastActivation()
}
