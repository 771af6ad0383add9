// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/namhost/utils"
)

const writeChunk = 8192

// WriteWAV writes mono float samples as integer PCM at bitDepth 16, 24 or
// 32. Samples outside [-1, 1] are clipped. The header sizes are patched on
// close, hence the io.WriteSeeker.
func WriteWAV(w io.WriteSeeker, sampleRate, bitDepth int, samples []float32) error {
	if bitDepth == 8 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if err := utils.CheckBitDepth(bitDepth); err != nil {
		return err
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, 0, min(len(samples), writeChunk)),
	}

	// at least one Write so an empty file still gets a header
	for first := true; first || len(samples) > 0; first = false {
		n := min(len(samples), writeChunk)

		buf.Data = buf.Data[:n]
		for i, s := range samples[:n] {
			buf.Data[i] = utils.Float32ToInt(s, bitDepth)
		}
		samples = samples[n:]

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}
	return nil
}

// WriteWAV16 streams a mono 16-bit PCM WAV to w. It needs no seeking since
// the sizes are known up front, so it works on pipes.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if _, err := w.Write(header16(sampleRate, len(samples))); err != nil {
		return fmt.Errorf("%w", err)
	}

	buf := make([]byte, 2*min(len(samples), writeChunk))
	for len(samples) > 0 {
		n := min(len(samples), writeChunk)
		for i, s := range samples[:n] {
			binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
		}
		samples = samples[n:]

		if _, err := w.Write(buf[:2*n]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// header16 is the canonical 44 byte header for mono 16-bit PCM.
func header16(sampleRate, numSamples int) []byte {
	const (
		channels   = 1
		blockAlign = 2 * channels
	)
	dataSize := uint32(numSamples * blockAlign)

	h := make([]byte, 44)
	copy(h[0:], "RIFF")
	binary.LittleEndian.PutUint32(h[4:], 36+dataSize)
	copy(h[8:], "WAVE")

	copy(h[12:], "fmt ")
	binary.LittleEndian.PutUint32(h[16:], 16)
	binary.LittleEndian.PutUint16(h[20:], formatPCM)
	binary.LittleEndian.PutUint16(h[22:], channels)
	binary.LittleEndian.PutUint32(h[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(h[32:], blockAlign)
	binary.LittleEndian.PutUint16(h[34:], 16)

	copy(h[36:], "data")
	binary.LittleEndian.PutUint32(h[40:], dataSize)

	return h
}
