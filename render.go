// SPDX-License-Identifier: EPL-2.0

package namhost

import (
	"fmt"

	"github.com/ik5/namhost/audio"
	"github.com/ik5/namhost/utils"
)

// DefaultReadSize is how many samples Render pulls through the pipeline per
// read.
const DefaultReadSize = 4096

// Render downmixes src to mono, converts it to targetRate and runs it
// through proc in blocks of at most blockSize samples. It returns every
// rendered sample and the output rate, which is always targetRate.
//
// A nil proc renders the converted input unchanged. src is closed when
// Render returns.
func Render(src audio.Source, proc audio.Processor, targetRate, blockSize int) ([]float32, int, error) {
	if proc == nil {
		proc = audio.ProcessorFunc(func([]float32) {})
	}

	rs, err := audio.NewResampler(audio.NewMonoMixer(src), targetRate)
	if err != nil {
		src.Close()
		return nil, targetRate, fmt.Errorf("%w", err)
	}

	fx, err := audio.NewEffect(rs, proc, blockSize)
	if err != nil {
		rs.Close()
		return nil, targetRate, fmt.Errorf("%w", err)
	}
	defer fx.Close()

	out, err := audio.ReadAll(fx, max(DefaultReadSize, blockSize))
	if err != nil {
		return nil, targetRate, fmt.Errorf("rendering: %w", err)
	}

	return out, targetRate, nil
}

// RenderToPCM16 is Render followed by conversion to 16-bit PCM, ready for
// wav.WriteWAV16.
func RenderToPCM16(src audio.Source, proc audio.Processor, targetRate, blockSize int) ([]int16, int, error) {
	out, rate, err := Render(src, proc, targetRate, blockSize)
	if err != nil {
		return nil, rate, err
	}

	pcm16 := make([]int16, len(out))
	for i, s := range out {
		pcm16[i] = utils.Float32ToInt16(s)
	}

	return pcm16, rate, nil
}
