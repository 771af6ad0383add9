// SPDX-License-Identifier: EPL-2.0

// Package namhost hosts neural amp models for offline and real-time
// processing.
//
// The heart of the module is package session, which owns a loaded model
// and the scratch buffer it renders into, and grows that buffer when the
// host hands it a block larger than the model was prepared for. The model
// itself lives behind the engine.Engine interface; engine/nam binds the
// native NAM library when built with the nam tag.
//
// This package ties the pieces into file rendering pipelines:
//
//	eng := nam.New()
//	sess := session.NewDefault(eng)
//	if err := sess.Load("amp.nam"); err != nil {
//	    return err
//	}
//	defer sess.Close()
//
//	src, err := namhost.Open(namhost.NewRegistry(), "di.wav")
//	if err != nil {
//	    return err
//	}
//
//	rate := int(sess.ExpectedSampleRate())
//	samples, rate, err := namhost.Render(src, sess, rate, 512)
//
// # Packages
//
//   - session: model lifecycle, buffer growth, Shared for use across goroutines
//   - engine, engine/nam: the DSP engine boundary and its native binding
//   - audio: sources, resampling, downmixing, block-wise effects
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders
//   - metrics: Prometheus instrumentation for sessions
//
// The namhost command renders files from the command line.
package namhost
