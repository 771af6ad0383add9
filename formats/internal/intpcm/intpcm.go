// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts the integer buffers produced by the go-audio
// decoders to audio.Source.
package intpcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/namhost/utils"
)

const defaultBufSize = 4096

// Reader is the part of the go-audio WAV and AIFF decoders Source needs.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams a go-audio decoder as float32 samples.
type Source struct {
	dec       Reader
	format    *goaudio.Format
	bitDepth  int
	unsigned8 bool
	intBuf    *goaudio.IntBuffer
	eof       bool
}

// New wraps dec. Set unsigned8 for formats that store 8-bit samples
// offset by 128, as WAV does.
func New(dec Reader, format *goaudio.Format, bitDepth int, unsigned8 bool) (*Source, error) {
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, fmt.Errorf("invalid format %+v", format)
	}
	if err := utils.CheckBitDepth(bitDepth); err != nil {
		return nil, err
	}

	return &Source{
		dec:       dec,
		format:    format,
		bitDepth:  bitDepth,
		unsigned8: unsigned8 && bitDepth == 8,
	}, nil
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return defaultBufSize
}

// ReadSamples converts up to len(dst) samples. A short read from the
// decoder is the end of the stream.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading pcm: %w", err)
	}

	for i, v := range s.intBuf.Data[:n] {
		if s.unsigned8 {
			v -= 128
		}
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	if n < len(dst) || err == io.EOF {
		s.eof = true
		return n, io.EOF
	}

	return n, nil
}

// ReadSeeker returns r itself when it can seek, or buffers it fully in
// memory since the go-audio decoders need to seek.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
