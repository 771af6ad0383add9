// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel count and
// any sample rate, and returns an audio.Source of float32 samples in
// [-1.0, 1.0]:
//
//	f, _ := os.Open("di.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Both the plain PCM format tag and WAVE_FORMAT_EXTENSIBLE are accepted.
// 8-bit WAV data is unsigned and is re-centred around zero. IEEE float
// files are rejected.
//
// go-wav needs to seek. Readers that cannot are buffered in memory first.
//
// # Encoding
//
// WriteWAV renders processed mono audio at 16, 24 or 32 bits. It needs an
// io.WriteSeeker such as *os.File, because chunk sizes are patched on close:
//
//	out, _ := os.Create("amped.wav")
//	err := wav.WriteWAV(out, 48000, 24, samples)
//
// Samples outside [-1.0, 1.0] are clipped. Scaling is the inverse of the
// decoder's, so a decoded file written back at its own depth is bit exact.
//
// WriteWAV16 writes 16-bit PCM to any io.Writer, including pipes and
// stdout. The sample count is known up front, so the header is written
// first and nothing needs to seek.
//
// # Errors
//
// Errors can be matched with errors.Is:
//
//   - ErrNotWavFile: no RIFF/WAVE header
//   - ErrNotPCM: a compressed or float format tag
//   - ErrNoPCMData: no data chunk
//   - ErrUnsupportedBitDepth: a depth other than 8, 16, 24 or 32, or 8-bit
//     output
package wav
