// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMP3Reader serves PCM bytes in chunks of at most step bytes.
type mockMP3Reader struct {
	rate int
	data []byte
	step int
	err  error
}

func (m *mockMP3Reader) SampleRate() int { return m.rate }
func (m *mockMP3Reader) Length() int64   { return int64(len(m.data)) }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}

	n := len(buf)
	if m.step > 0 {
		n = min(n, m.step)
	}
	n = copy(buf[:n], m.data)
	m.data = m.data[n:]
	return n, nil
}

func pcm(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func readAll(t *testing.T, s *source, size int) []float32 {
	t.Helper()

	var out []float32
	dst := make([]float32, size)
	for {
		n, err := s.ReadSamples(dst)
		out = append(out, dst[:n]...)
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not MP3 data")} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrNotMP3)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := newSource(&mockMP3Reader{rate: 44100, data: make([]byte, 400)})

	assert.Equal(t, 44100, s.SampleRate())
	assert.Equal(t, 2, s.Channels())
	assert.Equal(t, int64(100), s.Frames())
	assert.Equal(t, 4096, s.BufSize())
	assert.NoError(t, s.Close())
}

func TestSource_Conversion(t *testing.T) {
	t.Parallel()

	s := newSource(&mockMP3Reader{rate: 48000, data: pcm(0, 16384, -32768, -16384)})

	assert.Equal(t, []float32{0, 0.5, -1, -0.5}, readAll(t, s, 8))
}

func TestSource_SplitSamples(t *testing.T) {
	t.Parallel()

	want := []int16{1000, -1000, 2000, -2000, 3000}

	// three bytes per read splits every other sample across reads
	s := newSource(&mockMP3Reader{rate: 48000, data: pcm(want...), step: 3})

	got := readAll(t, s, 2)
	require.Len(t, got, len(want))
	for i, v := range want {
		assert.Equal(t, float32(v)/32768, got[i], "sample %d", i)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	s := newSource(&mockMP3Reader{rate: 48000, err: boom})

	_, err := s.ReadSamples(make([]float32, 4))
	assert.ErrorIs(t, err, boom)
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	s := newSource(&mockMP3Reader{rate: 48000, data: pcm(1)})

	n, err := s.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	data := make([]byte, 44100*4)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		s := newSource(&mockMP3Reader{rate: 44100, data: data})
		for {
			if _, err := s.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
