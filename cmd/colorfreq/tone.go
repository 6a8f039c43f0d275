// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/formats/wav"
)

func newToneCmd() *cobra.Command {
	var (
		freq      float64
		duration  time.Duration
		rate      int
		amplitude float64
		bits      int
	)

	cmd := &cobra.Command{
		Use:   "tone <out.wav>",
		Short: "Write a sine test tone to a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if freq <= 0 || rate <= 0 || duration <= 0 {
				return errors.New("--freq, --rate and --duration must be positive")
			}
			if amplitude < 0 || amplitude > 1 {
				return fmt.Errorf("--amplitude %v is outside [0, 1]", amplitude)
			}

			frames := int(duration.Seconds() * float64(rate))
			src := audio.NewTone(rate, 1, frames, freq, amplitude)

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			n, err := wav.Encode(f, src, bits)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d frames of %.2f Hz at %d Hz\n", args[0], n, freq, rate)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&freq, "freq", 440, "tone frequency in Hz")
	fs.DurationVar(&duration, "duration", time.Second, "tone length")
	fs.IntVar(&rate, "rate", 44100, "sample rate in Hz")
	fs.Float64Var(&amplitude, "amplitude", 0.5, "peak amplitude in [0, 1]")
	fs.IntVar(&bits, "bits", 16, "bit depth: 16 or 24")
	return cmd
}
