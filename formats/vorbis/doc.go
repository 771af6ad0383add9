// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// # Decoding
//
//	f, _ := os.Open("riff.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if errors.Is(err, vorbis.ErrNotVorbis) {
//	    // not an Ogg Vorbis stream
//	}
//
// oggvorbis already produces float32 samples, so ReadSamples decodes
// straight into the caller's buffer without conversion.
//
// # Output Format
//
//   - Channels: as encoded, interleaved in Vorbis channel order
//   - Sample rate: as encoded
//   - Length: the source has a Frames method; it reports 0 when the input
//     cannot seek, since oggvorbis finds the length from the last page
//
// # Buffer Sizes
//
// Buffers passed to ReadSamples must hold whole frames. A length that is not
// a multiple of the channel count fails with audio.ErrInvalidDstSize.
//
// # Limitations
//
//   - Decoding only
//   - Close does not close the underlying reader
package vorbis
