// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// # Decoding
//
//	f, _ := os.Open("riff.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not AIFF
//	}
//
// go-aiff needs to seek. A reader that cannot seek is read into memory
// first, so prefer passing an *os.File for long recordings.
//
// # Supported Formats
//
//   - Big-endian signed PCM at 8, 16, 24 or 32 bits
//   - Any channel count, interleaved on output
//   - Any sample rate stored in the 80-bit COMM field
//
// Other depths fail with ErrUnsupportedBitDepth, which is the same value as
// utils.ErrUnsupportedBitDepth and wav.ErrUnsupportedBitDepth.
//
// # Output Format
//
// Samples come out as float32 in [-1.0, 1.0), scaled by 2^(bits-1) so the
// most negative integer maps to exactly -1.0.
//
// # Limitations
//
//   - Compressed AIFF-C data is not decoded
//   - Decoding only; render output is written as WAV
package aiff
