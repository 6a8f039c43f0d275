// SPDX-License-Identifier: EPL-2.0

// Command colorfreq shows the color of the sound it hears.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/colorfreq/audio"
	"github.com/ik5/colorfreq/formats/aiff"
	"github.com/ik5/colorfreq/formats/mp3"
	"github.com/ik5/colorfreq/formats/vorbis"
	"github.com/ik5/colorfreq/formats/wav"
	"github.com/ik5/colorfreq/internal/config"
)

const defaultConfigPath = "colorfreq.yaml"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootFlags struct {
	configPath string
	method     string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "colorfreq",
		Short: "Map the dominant frequency of sound to a visible color",
		Long: `colorfreq finds the dominant frequency of each audio frame, maps it onto
the visible spectrum and shows the resulting color in the terminal, in the
log or in a browser.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", defaultConfigPath, "path to the YAML configuration")
	pf.StringVar(&flags.method, "method", "", "mapping method: simple, octave or 440hz (1, 2, 3)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newListenCmd(&flags),
		newPlayCmd(&flags),
		newMapCmd(&flags),
		newToneCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and installs the
// default logger.
func setup(cmd *cobra.Command, flags *rootFlags) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		if cmd.Flags().Changed("config") || !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, err
		}
		cfg = config.Default()
	}

	if cmd.Flags().Changed("method") {
		cfg.Method = flags.method
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = config.LogLevel(flags.logLevel)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.LogLevel.Level(),
	}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{}, "wave")
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{}, "oga", "vorbis")
	reg.Register("aiff", aiff.Decoder{}, "aif")
	return reg
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "colorfreq %s\n", version)
		},
	}
}
