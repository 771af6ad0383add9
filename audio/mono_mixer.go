// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages all channels of src into one.
type MonoMixer struct {
	src Source
	tmp []float32
}

// NewMonoMixer averages the channels of src into one.
func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

// SampleRate returns the source rate.
func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }

// Channels is always 1.
func (m *MonoMixer) Channels() int { return 1 }

// BufSize returns the source's preferred buffer size.
func (m *MonoMixer) BufSize() int { return m.src.BufSize() }

// Close closes the underlying source.
func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with up to len(dst) mono frames.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	// grow but never shrink, so a varying dst does not thrash
	if cap(m.tmp) < need {
		m.tmp = make([]float32, max(need, 8192))
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	downmix(dst[:frames], m.tmp[:frames*channels], channels)

	return frames, err
}

// downmix writes the per-frame mean of interleaved src into dst.
func downmix(dst, src []float32, channels int) {
	switch channels {
	case 2:
		for f := range dst {
			i := f << 1
			dst[f] = (src[i] + src[i+1]) * 0.5
		}
	case 4:
		for f := range dst {
			i := f << 2
			dst[f] = (src[i] + src[i+1] + src[i+2] + src[i+3]) * 0.25
		}
	default:
		inv := 1 / float32(channels)
		for f := range dst {
			var sum float32
			for _, s := range src[f*channels : (f+1)*channels] {
				sum += s
			}
			dst[f] = sum * inv
		}
	}
}
