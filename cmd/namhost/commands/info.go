// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/namhost/engine"
)

func newInfoCmd(eng engine.Engine, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Load a model and print its properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}

			a, err := setup(cmd, eng, cfg)
			if err != nil {
				return err
			}
			defer a.close()

			s := a.session
			path, _ := s.ModelPath()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Model:              %s\n", path)
			if rate := s.ExpectedSampleRate(); rate > 0 {
				fmt.Fprintf(out, "Expected rate:      %g Hz\n", rate)
			} else {
				fmt.Fprintln(out, "Expected rate:      unknown")
			}
			fmt.Fprintf(out, "Max buffer size:    %d\n", s.MaximumBufferSize())

			return nil
		},
	}
}
