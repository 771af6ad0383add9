// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/namhost/audio"
	"github.com/ik5/namhost/internal/audiotest"
)

// Converting sample rates. The resampler keeps the channel count.
func Example_resampler() {
	source := audiotest.NewSineSource(44100, 1, 44100, 440)

	resampler, err := audio.NewResampler(source, 48000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())
	// Output:
	// Output sample rate: 48000 Hz
	// Channels: 1
}

func Example_monoMixer() {
	source := audiotest.NewConstantSource(48000, 6, 48000, 0.5)
	mono := audio.NewMonoMixer(source)

	buf := make([]float32, 1)
	n, _ := mono.ReadSamples(buf)

	fmt.Printf("Input: %d channels\n", source.Channels())
	fmt.Printf("Output: %d channel\n", mono.Channels())
	fmt.Printf("Read %d sample: %.1f\n", n, buf[0])
	// Output:
	// Input: 6 channels
	// Output: 1 channel
	// Read 1 sample: 0.5
}

// A chain that feeds an amp model at its rate: decode, resample, downmix,
// then process block by block.
func Example_effectChain() {
	source := audiotest.NewConstantSource(44100, 2, 44100, 0.25)

	resampled, err := audio.NewResampler(source, 44100)
	if err != nil {
		fmt.Println(err)
		return
	}

	gain := audio.ProcessorFunc(func(block []float32) {
		for i := range block {
			block[i] *= 2
		}
	})

	fx, err := audio.NewEffect(audio.NewMonoMixer(resampled), gain, 128)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fx.Close()

	samples, err := audio.ReadAll(fx, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", fx.SampleRate())
	fmt.Printf("Samples: %d\n", len(samples))
	fmt.Printf("First sample: %.2f\n", samples[0])
	// Output:
	// Sample rate: 44100 Hz
	// Samples: 44100
	// First sample: 0.50
}

type mockDecoder struct{}

func (mockDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 1, 1000, 440), nil
}

func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("mock", mockDecoder{})

	decoder, err := registry.Lookup("riff.MOCK")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Retrieved decoder: %T\n", decoder)

	_, err = registry.Lookup("song.flac")
	fmt.Println(err)
	// Output:
	// Retrieved decoder: audio_test.mockDecoder
	// no decoder registered for format: ".flac"
}

// Always consume the samples before looking at the error: the last read
// may return data together with io.EOF.
func Example_errorHandling() {
	source := audiotest.NewSineSource(16000, 1, 1000, 440)

	buf := make([]float32, 4096)
	total := 0

	for {
		n, err := source.ReadSamples(buf)
		total += n

		if err == io.EOF {
			fmt.Println("Reached end of audio stream")
			break
		}
		if err != nil {
			fmt.Printf("Error reading samples: %v\n", err)
			break
		}
	}

	fmt.Printf("Processed %d samples\n", total)
	// Output:
	// Reached end of audio stream
	// Processed 1000 samples
}
