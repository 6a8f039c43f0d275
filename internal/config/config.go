// SPDX-License-Identifier: EPL-2.0

// Package config loads the colorfreq YAML configuration.
package config

import (
	"log/slog"

	"github.com/ik5/colorfreq/audio"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l to its slog level. Unknown values map to info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the root configuration.
type Config struct {
	LogLevel       LogLevel      `yaml:"log_level"`
	Method         string        `yaml:"method"`
	Representation string        `yaml:"representation"`
	Audio          AudioConfig   `yaml:"audio"`
	Render         RenderConfig  `yaml:"render"`
	Metrics        MetricsConfig `yaml:"metrics"`
}

// AudioConfig describes how frames are cut and analyzed.
type AudioConfig struct {
	SampleRate  int    `yaml:"sample_rate"`
	FrameLength int    `yaml:"frame_length"`
	Window      string `yaml:"window"`
	// Realtime paces file playback at one frame per frame duration.
	Realtime bool `yaml:"realtime"`
}

// RenderConfig selects the renderers.
type RenderConfig struct {
	Terminal bool `yaml:"terminal"`
	// InPlace redraws one terminal line instead of scrolling.
	InPlace bool `yaml:"in_place"`
	// WebsocketAddr serves the browser viewer when set, e.g. ":8080".
	WebsocketAddr string `yaml:"websocket_addr"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	// Addr serves /metrics when render.websocket_addr is empty. Otherwise
	// /metrics shares the viewer's listener.
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:       LogInfo,
		Method:         "simple",
		Representation: "normalized",
		Audio: AudioConfig{
			SampleRate:  44100,
			FrameLength: audio.DefaultFrameLength,
			Window:      "none",
			Realtime:    true,
		},
		Render: RenderConfig{
			Terminal: true,
		},
		Metrics: MetricsConfig{
			Addr: ":9090",
		},
	}
}
