// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/namhost/utils"
)

// sliceReader hands out data the way the go-audio decoders do: full
// buffers, then a short one, then nothing.
type sliceReader struct {
	data []int
	err  error
}

func (r *sliceReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n := copy(buf.Data, r.data)
	r.data = r.data[n:]
	return n, nil
}

func mono(rate int) *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: rate}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(&sliceReader{}, nil, 16, false)
	assert.Error(t, err)

	_, err = New(&sliceReader{}, &goaudio.Format{NumChannels: 0, SampleRate: 8000}, 16, false)
	assert.Error(t, err)

	_, err = New(&sliceReader{}, mono(8000), 12, false)
	assert.ErrorIs(t, err, utils.ErrUnsupportedBitDepth)
}

func TestSource_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bitDepth  int
		unsigned8 bool
		in        []int
		want      []float32
	}{
		{"16 bit", 16, false, []int{0, 16384, -32768}, []float32{0, 0.5, -1}},
		{"24 bit", 24, false, []int{1 << 22, -1 << 23}, []float32{0.5, -1}},
		{"signed 8 bit", 8, false, []int{64, -128}, []float32{0.5, -1}},
		{"unsigned 8 bit", 8, true, []int{128, 192, 0}, []float32{0, 0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := New(&sliceReader{data: tt.in}, mono(8000), tt.bitDepth, tt.unsigned8)
			require.NoError(t, err)

			dst := make([]float32, 16)
			n, err := src.ReadSamples(dst)
			assert.ErrorIs(t, err, io.EOF)
			assert.Equal(t, tt.want, dst[:n])
		})
	}
}

func TestSource_StreamsUntilShortRead(t *testing.T) {
	t.Parallel()

	data := make([]int, 10)
	src, err := New(&sliceReader{data: data}, &goaudio.Format{NumChannels: 2, SampleRate: 44100}, 16, false)
	require.NoError(t, err)

	assert.Equal(t, 44100, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, 16, src.BitDepth())

	dst := make([]float32, 4)
	total := 0
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, 10, total)

	n, err := src.ReadSamples(dst)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 4, src.BufSize())
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src, err := New(&sliceReader{err: boom}, mono(8000), 16, false)
	require.NoError(t, err)

	_, err = src.ReadSamples(make([]float32, 4))
	assert.ErrorIs(t, err, boom)
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	sr := strings.NewReader("abc")
	rs, err := ReadSeeker(sr)
	require.NoError(t, err)
	assert.Same(t, sr, rs)

	rs, err = ReadSeeker(io.MultiReader(strings.NewReader("ab"), strings.NewReader("cd")))
	require.NoError(t, err)
	data, err := io.ReadAll(rs)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(data))
}
