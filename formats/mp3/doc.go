// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// # Decoding
//
// Decoder wraps any io.Reader:
//
//	f, _ := os.Open("riff.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if errors.Is(err, mp3.ErrNotMP3) {
//	    // not an MPEG-1 Layer 3 stream
//	}
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// The returned audio.Source yields float32 samples in [-1.0, 1.0].
//
// # Output Format
//
//   - Channels: always 2, interleaved (go-mp3 duplicates mono streams)
//   - Sample rate: whatever the file was encoded at, usually 44.1 or 48 kHz
//   - Length: the source has a Frames method returning the stream length in
//     frames, or -1 when go-mp3 could not determine it
//
// go-mp3 produces 16-bit little-endian bytes. A sample split across two reads
// is carried over to the next ReadSamples call, so any buffer size works.
//
// # Feeding a Model
//
// Amp models take mono input at their own rate. Downmix before resampling,
// which halves the resampling work:
//
//	mono := audio.NewMonoMixer(src)
//	rs, err := audio.NewResampler(mono, int(sess.ExpectedSampleRate()))
//
// namhost.Render does exactly this, followed by the effect stage.
//
// # Limitations
//
//   - Decoding only; there is no MP3 encoder
//   - Close does not close the underlying reader
package mp3
