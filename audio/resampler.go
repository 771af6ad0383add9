// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	resampling "github.com/tphakala/go-audio-resampling"
)

const resamplerReadSize = 4096

// Resampler streams src at a new sample rate, keeping the channel count.
// Conversion is done by go-audio-resampling at its high quality preset, one
// converter per channel; when the rates already match samples pass straight
// through.
//
// The filter delay is removed from the head of the stream and the filter is
// flushed at the end, so n input frames come out as n*dstRate/srcRate frames.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	channels int

	rs []resampling.Resampler // nil when no conversion is needed

	skip      int   // leading filter delay still to drop, in frames
	inFrames  int64 // frames read from src
	outFrames int64 // frames queued into pending

	readBuf []float32
	planar  [][]float64
	pending [][]float64 // converted frames not yet handed out, per channel
	eof     bool
}

// NewResampler converts src to dstRate. Both rates must be positive.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidSampleRate, src.SampleRate(), dstRate)
	}

	r := &Resampler{
		src:      src,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		channels: src.Channels(),
	}

	if r.srcRate == dstRate {
		return r, nil
	}

	// Process and Flush of the library only drive channel 0, so every
	// channel gets its own mono converter.
	r.rs = make([]resampling.Resampler, r.channels)
	for c := range r.rs {
		rs, err := resampling.New(&resampling.Config{
			InputRate:  float64(r.srcRate),
			OutputRate: float64(dstRate),
			Channels:   1,
			Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
		})
		if err != nil {
			return nil, fmt.Errorf("creating resampler: %w", err)
		}
		r.rs[c] = rs
	}
	r.skip = max(r.rs[0].GetLatency(), 0)

	frames := resamplerReadSize / r.channels
	r.readBuf = make([]float32, frames*r.channels)
	r.planar = make([][]float64, r.channels)
	r.pending = make([][]float64, r.channels)
	for c := range r.planar {
		r.planar[c] = make([]float64, frames)
	}

	return r, nil
}

// SampleRate returns the destination rate.
func (r *Resampler) SampleRate() int { return r.dstRate }

// Channels returns the source's channel count.
func (r *Resampler) Channels() int { return r.channels }

// BufSize returns the source's preferred buffer size.
func (r *Resampler) BufSize() int { return r.src.BufSize() }

// Close closes the underlying source.
func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.rs == nil {
		return r.src.ReadSamples(dst)
	}

	frames := len(dst) / r.channels
	for len(r.pending[0]) < frames && !r.eof {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	n := min(frames, len(r.pending[0]))
	for c, p := range r.pending {
		for i := range n {
			dst[i*r.channels+c] = float32(p[i])
		}
		r.pending[c] = append(p[:0], p[n:]...)
	}

	if r.eof && len(r.pending[0]) == 0 {
		return n * r.channels, io.EOF
	}

	return n * r.channels, nil
}

// fill converts one read worth of source frames into pending. At the end of
// the source it flushes the converters.
func (r *Resampler) fill() error {
	n, err := r.src.ReadSamples(r.readBuf)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	// a source with nothing to give yet is treated as finished
	// rather than spun on
	if n == 0 {
		r.eof = true
	}

	if frames := n / r.channels; frames > 0 {
		for c, plane := range r.planar {
			plane = plane[:frames]
			for i := range plane {
				plane[i] = float64(r.readBuf[i*r.channels+c])
			}
		}

		out := make([][]float64, r.channels)
		for c, rs := range r.rs {
			if out[c], err = rs.Process(r.planar[c][:frames]); err != nil {
				return fmt.Errorf("resampling: %w", err)
			}
		}
		r.inFrames += int64(frames)
		r.queue(out)
	}

	if r.eof {
		return r.flush()
	}
	return nil
}

func (r *Resampler) flush() error {
	out := make([][]float64, r.channels)
	for c, rs := range r.rs {
		var err error
		if out[c], err = rs.Flush(); err != nil {
			return fmt.Errorf("flushing resampler: %w", err)
		}
	}
	r.queue(out)

	want := r.inFrames * int64(r.dstRate) / int64(r.srcRate)
	switch {
	case r.outFrames > want:
		cut := min(int(r.outFrames-want), len(r.pending[0]))
		for c, p := range r.pending {
			r.pending[c] = p[:len(p)-cut]
		}
	case r.outFrames < want:
		pad := make([]float64, want-r.outFrames)
		for c, p := range r.pending {
			r.pending[c] = append(p, pad...)
		}
	}
	r.outFrames = want

	return nil
}

// queue appends one converted block per channel to pending, dropping what is
// left of the filter delay.
func (r *Resampler) queue(out [][]float64) {
	frames := len(out[0])
	for _, o := range out[1:] {
		frames = min(frames, len(o))
	}

	drop := min(r.skip, frames)
	r.skip -= drop
	for c, o := range out {
		r.pending[c] = append(r.pending[c], o[drop:frames]...)
	}
	r.outFrames += int64(frames - drop)
}
