// SPDX-License-Identifier: EPL-2.0

// Package session owns a loaded neural amp model and the buffers used to
// exchange samples with it.
//
// A Session holds at most one model. Load replaces it, Process runs audio
// through it in place, and Close destroys it. Processing without a model is
// a silent pass-through, so a real-time callback can call Process
// unconditionally whatever the load state is.
//
//	s := session.New(nam.New(), 512)
//	defer s.Close()
//
//	if err := s.Load("plexi.nam"); err != nil {
//	    return err
//	}
//
//	// audio callback
//	s.Process(block)
//
// # Buffer sizes
//
// The session is prepared for blocks up to MaximumBufferSize samples. A
// longer block grows the watermark, resizes the scratch buffer and resets the
// model before that block is processed. The watermark never shrinks on its
// own; SetMaximumBufferSize is the only way down. Hosts that know their
// largest block should pass it to New so growth never happens on the audio
// thread.
//
// Growth resets the model but does not prewarm it unless WithPrewarmOnGrowth
// is given. Prewarming removes the settling transient at the cost of running
// the model for a while inside the audio callback that triggered growth.
//
// # Concurrency
//
// A Session is NOT safe for concurrent use. It performs no locking. The
// caller must guarantee that at most one method is in flight at any time, or
// at least that Load, SetMaximumBufferSize and Close never overlap Process,
// Reset or Prewarm. Breaking this races on the scratch buffer and on the
// model handle while it is being replaced or destroyed.
//
// Hosts that load from a control goroutine while an audio goroutine
// processes should use Shared. It performs the slow part of Load outside its
// lock and lets the audio side skip a block instead of waiting.
//
// Load may block on file I/O. Process, Reset, Prewarm and
// ExpectedSampleRate do no I/O and, except for growth, no allocation.
package session
