// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/namhost/audio"
)

// mockOggVorbisReader mimics oggvorbis.Reader: Read returns the number of
// float32 values written and io.EOF once drained.
type mockOggVorbisReader struct {
	rate     int
	channels int
	data     []float32
	err      error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.rate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }
func (m *mockOggVorbisReader) Length() int64   { return int64(len(m.data) / m.channels) }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}
	n := copy(buf, m.data)
	m.data = m.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not Ogg data")} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrNotVorbis)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{dec: &mockOggVorbisReader{rate: 44100, channels: 2, data: make([]float32, 20)}}

	assert.Equal(t, 44100, s.SampleRate())
	assert.Equal(t, 2, s.Channels())
	assert.Equal(t, int64(10), s.Frames())
	assert.NoError(t, s.Close())
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		data     []float32
		bufSize  int
	}{
		{"mono", 1, []float32{0.1, -0.2, 0.3}, 2},
		{"stereo", 2, []float32{0.1, 0.2, -0.3, -0.4, 0.5, 0.6}, 4},
		{"surround", 6, make([]float32, 60), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := append([]float32(nil), tt.data...)
			s := &source{dec: &mockOggVorbisReader{rate: 48000, channels: tt.channels, data: tt.data}}

			got, err := audio.ReadAll(s, tt.bufSize)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSource_PartialFrameBuffer(t *testing.T) {
	t.Parallel()

	s := &source{dec: &mockOggVorbisReader{rate: 48000, channels: 2, data: make([]float32, 4)}}

	_, err := s.ReadSamples(make([]float32, 3))
	assert.ErrorIs(t, err, audio.ErrInvalidDstSize)
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad page")
	s := &source{dec: &mockOggVorbisReader{rate: 48000, channels: 1, err: boom}}

	_, err := s.ReadSamples(make([]float32, 4))
	assert.ErrorIs(t, err, boom)
}
