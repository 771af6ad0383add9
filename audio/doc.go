// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming building blocks that sit in front of
// an amp model: the Source interface, sample rate conversion, channel
// downmixing, block-wise effect processing and a format registry.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders and processors all implement Source, so they chain:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	rs, err := audio.NewResampler(src, 48000)
//	fx, err := audio.NewEffect(audio.NewMonoMixer(rs), sess, 512)
//	samples, err := audio.ReadAll(fx, 4096)
//
// Samples are float32 in [-1.0, 1.0], interleaved when there is more than one
// channel. ReadSamples counts float32 values, not frames.
//
// # Resampling
//
// Resampler uses github.com/tphakala/go-audio-resampling with one converter
// per channel. The filter delay is trimmed from the start and the filter is
// flushed at the end, so n frames at the source rate always become
// n*dst/src frames.
//
// # Effects
//
// Effect hands a Processor mono blocks no longer than the block size it was
// created with. A *session.Session is a Processor.
//
// # Errors
//
// io.EOF marks the end of a stream and may arrive together with the final
// samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
