// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newPlayCmd(root *rootFlags) *cobra.Command {
	var (
		rf       runFlags
		realtime bool
	)

	cmd := &cobra.Command{
		Use:   "play <file>",
		Short: "Show the colors of an audio file",
		Long: `play decodes a WAV, MP3, Ogg Vorbis or AIFF file, resamples it to the
configured rate and renders one color per frame. Playback is paced at the
speed of the audio unless --realtime=false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}
			if err := rf.apply(cmd, cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("realtime") {
				cfg.Audio.Realtime = realtime
			}

			src, err := newRegistry().Open(args[0])
			if err != nil {
				return err
			}
			logger.Info("playing file", "path", args[0],
				"sample_rate", src.SampleRate(), "channels", src.Channels())

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return run(ctx, cfg, logger, cmd.OutOrStdout(), src, cfg.Audio.Realtime)
		},
	}

	rf.register(cmd)
	cmd.Flags().BoolVar(&realtime, "realtime", true, "pace frames at the speed of the audio")
	return cmd
}
