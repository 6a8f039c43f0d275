// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/internal/capture"
)

func newListenCmd(root *rootFlags) *cobra.Command {
	var (
		rf       runFlags
		execLine string
		rate     int
		channels int
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Show the color of live audio",
		Long: `listen reads raw signed 16-bit little-endian PCM from a recorder process
(--exec) or from stdin, e.g.

  colorfreq listen --exec "` + capture.DefaultCommand + `"
  parec --format=s16le --channels=1 --rate=44100 | colorfreq listen`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rate") {
				cfg.Audio.SampleRate = rate
			}
			if err := rf.apply(cmd, cfg); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			var src audio.Source
			if execLine != "" {
				rec, err := capture.Start(ctx, execLine, cfg.Audio.SampleRate, channels,
					capture.WithLogger(logger), capture.WithStderr(cmd.ErrOrStderr()))
				if err != nil {
					return err
				}
				src = rec
			} else {
				logger.Info("reading raw pcm from stdin", "sample_rate", cfg.Audio.SampleRate, "channels", channels)
				src = audio.NewRawSource(cmd.InOrStdin(), cfg.Audio.SampleRate, channels)
			}

			return run(ctx, cfg, logger, cmd.OutOrStdout(), src, false)
		},
	}

	rf.register(cmd)
	cmd.Flags().StringVar(&execLine, "exec", "", "recorder command writing s16le PCM to stdout")
	cmd.Flags().IntVar(&rate, "rate", 0, "sample rate of the incoming PCM (default from config)")
	cmd.Flags().IntVar(&channels, "channels", 1, "channels of the incoming PCM")
	return cmd
}
