// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates synthetic audio for tests: whole buffers for
// feeding a session directly, and streaming sources for pipeline tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of one sample.
type Waveform func(sample, channel int) float32

// SineWave is a full-scale sine at frequency Hz.
func SineWave(sampleRate int, frequency float64) Waveform {
	return func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

// Constant always returns value.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// PerChannel holds each channel at its own constant level.
func PerChannel(levels ...float32) Waveform {
	return func(_, channel int) float32 { return levels[channel%len(levels)] }
}

// Ramp climbs linearly from 0 by step per sample, wrapping at 1.
func Ramp(step float32) Waveform {
	return func(sample, _ int) float32 {
		v := float32(sample) * step
		return v - float32(math.Floor(float64(v)))
	}
}

// Sine returns n mono samples of a sine wave.
func Sine(n, sampleRate int, frequency float64) []float32 {
	return Fill(make([]float32, n), SineWave(sampleRate, frequency))
}

// Fill writes w into a mono buffer and returns it.
func Fill(buf []float32, w Waveform) []float32 {
	for i := range buf {
		buf[i] = w(i, 0)
	}
	return buf
}

// MockSource streams frames of a waveform. It implements audio.Source
// without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to produce
	pos        int // frames produced so far
	waveform   Waveform
	closed     bool
}

func NewMockSource(sampleRate, channels, frames int, w Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   w,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Constant(0))
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, SineWave(sampleRate, frequency))
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Constant(value))
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Rewind starts the stream over.
func (m *MockSource) Rewind() { m.pos = 0 }

// ReadSamples writes whole frames only. It returns io.EOF together with the
// last samples.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.pos+f, ch)
		}
	}
	m.pos += frames

	if m.pos >= m.frames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
