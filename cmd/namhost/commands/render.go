// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/namhost"
	"github.com/ik5/namhost/engine"
	"github.com/ik5/namhost/formats/wav"
)

type renderFlags struct {
	blockSize  int
	bitDepth   int
	sampleRate int
}

func newRenderCmd(eng engine.Engine, g *globalFlags) *cobra.Command {
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "render <input> <output.wav>",
		Short: "Process an audio file through the model",
		Long: `Render decodes the input (WAV, AIFF, MP3 or Ogg Vorbis), mixes it to mono,
converts it to the model's sample rate and runs it through the model block by
block. The result is written as a mono WAV file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("block-size") {
				cfg.BlockSize = rf.blockSize
			}
			if cmd.Flags().Changed("bit-depth") {
				cfg.OutputBitDepth = rf.bitDepth
			}

			a, err := setup(cmd, eng, cfg)
			if err != nil {
				return err
			}
			defer a.close()

			return a.render(cmd, args[0], args[1], rf.sampleRate)
		},
	}

	f := cmd.Flags()
	f.IntVar(&rf.blockSize, "block-size", 512, "largest block handed to the model")
	f.IntVar(&rf.bitDepth, "bit-depth", 24, "output bit depth: 16, 24 or 32")
	f.IntVar(&rf.sampleRate, "sample-rate", 0, "processing rate (default: the model's expected rate)")

	return cmd
}

func (a *app) render(cmd *cobra.Command, in, out string, sampleRate int) error {
	src, err := namhost.Open(namhost.NewRegistry(), in)
	if err != nil {
		return err
	}

	rate := sampleRate
	if rate <= 0 {
		rate = int(a.session.ExpectedSampleRate())
	}
	if rate <= 0 {
		rate = src.SampleRate()
	}

	s := a.session
	if float64(rate) != s.SampleRate() || a.cfg.BlockSize > s.MaximumBufferSize() {
		s.Reset(float64(rate), a.cfg.BlockSize)
		s.Prewarm()
	}

	a.log.Debug().
		Str("input", in).
		Int("input_rate", src.SampleRate()).
		Int("channels", src.Channels()).
		Int("rate", rate).
		Int("block_size", a.cfg.BlockSize).
		Msg("rendering")

	start := time.Now()
	samples, rate, err := namhost.Render(src, s, rate, a.cfg.BlockSize)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := writeWAV(out, rate, a.cfg.OutputBitDepth, samples); err != nil {
		return err
	}

	duration := time.Duration(float64(len(samples)) / float64(rate) * float64(time.Second))
	a.log.Info().
		Str("output", out).
		Int("samples", len(samples)).
		Dur("audio", duration).
		Dur("elapsed", elapsed).
		Msg("rendered")

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d samples at %d Hz (%s)\n",
		out, len(samples), rate, duration.Round(time.Millisecond))

	return nil
}

func writeWAV(path string, rate, bitDepth int, samples []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.WriteWAV(f, rate, bitDepth, samples); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
