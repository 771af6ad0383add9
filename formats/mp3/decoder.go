// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/namhost/audio"
	"github.com/ik5/namhost/utils"
)

// go-mp3 always produces interleaved stereo, 16-bit little-endian
const (
	channels  = 2
	byteDepth = 2
)

type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec  mp3Reader
	buf  []byte
	tail []byte // bytes of a sample split across two reads
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / byteDepth }

// Frames is the stream length in frames, or -1 when the input could not be
// measured.
func (s *source) Frames() int64 {
	n := s.dec.Length()
	if n < 0 {
		return -1
	}
	return n / (channels * byteDepth)
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * byteDepth
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	off := copy(buf, s.tail)
	s.tail = s.tail[:0]

	n, err := s.dec.Read(buf[off:])
	n += off
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	samples := n / byteDepth
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(buf[i*byteDepth:]))
		dst[i] = utils.IntToFloat32(int(v), 16)
	}
	s.tail = append(s.tail, buf[samples*byteDepth:n]...)

	if err == io.EOF {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder reads MPEG-1/2 Layer III streams with github.com/hajimehoshi/go-mp3.
// Output is always stereo; mono files are duplicated on both channels.
type Decoder struct{}

// Decode starts decoding r. It fails with ErrNotMP3 when r holds no MP3 frames.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec: dec,
		buf: make([]byte, 8192),
	}
}
