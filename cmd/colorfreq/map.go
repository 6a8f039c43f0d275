// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ik5/colorfreq/pipeline"
	"github.com/ik5/colorfreq/wavelength"
)

func newMapCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "map <hz>...",
		Short: "Print the wavelength and color of frequencies",
		Long: `map prints the wavelength and color of each frequency for every mapping
method, or only for --method when it is given.`,
		Example: "  colorfreq map 440 1000 --method octave",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}

			freqs := make([]float64, len(args))
			for i, a := range args {
				if freqs[i], err = strconv.ParseFloat(a, 64); err != nil {
					return fmt.Errorf("invalid frequency %q: %w", a, err)
				}
			}

			methods := wavelength.Methods()
			if cmd.Flags().Changed("method") {
				methods = []wavelength.Method{cfg.MappingMethod(logger)}
			}

			out := cmd.OutOrStdout()
			for _, f := range freqs {
				for _, m := range methods {
					r := pipeline.New(m, pipeline.WithRepresentation(cfg.ColorRepresentation())).Reading(f)
					red, green, blue := r.Color.Bytes()
					fmt.Fprintf(out, "%9.2f Hz  %-6s  %6.1f nm  %s  rgb(%d, %d, %d)\n",
						f, m, r.Wavelength, r.Color.Hex(), red, green, blue)
				}
			}
			return nil
		},
	}
}
