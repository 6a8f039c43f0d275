// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/colorfreq/chroma"
	"github.com/ik5/colorfreq/spectrum"
	"github.com/ik5/colorfreq/wavelength"
)

const maxFrameLength = 1 << 20

// Load reads the YAML configuration file at path on top of [Default] and
// validates it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r on top of [Default]. Unknown keys are
// rejected. An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns every problem found in cfg, joined. An unknown mapping
// method is not an error; [ResolveMethod] falls back to simple.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if _, err := chroma.ParseRepresentation(cfg.Representation); err != nil {
		errs = append(errs, fmt.Errorf("representation: %w", err))
	}

	if cfg.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d must be positive", cfg.Audio.SampleRate))
	}
	if cfg.Audio.FrameLength <= 0 || cfg.Audio.FrameLength > maxFrameLength {
		errs = append(errs, fmt.Errorf("audio.frame_length %d is out of range [1, %d]", cfg.Audio.FrameLength, maxFrameLength))
	}
	if _, err := spectrum.ParseWindow(cfg.Audio.Window); err != nil {
		errs = append(errs, fmt.Errorf("audio.window: %w", err))
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" && cfg.Render.WebsocketAddr == "" {
		errs = append(errs, errors.New("metrics.enabled requires metrics.addr or render.websocket_addr"))
	}

	return errors.Join(errs...)
}

// ResolveMethod parses s as a mapping method. An unrecognised value is
// reported on logger and resolves to [wavelength.Simple].
func ResolveMethod(s string, logger *slog.Logger) wavelength.Method {
	m, err := wavelength.ParseMethod(s)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("unknown mapping method, using simple", "method", s, "valid", wavelength.Methods())
		return wavelength.Simple
	}
	return m
}

// MappingMethod resolves cfg.Method, see [ResolveMethod].
func (c *Config) MappingMethod(logger *slog.Logger) wavelength.Method {
	return ResolveMethod(c.Method, logger)
}

// ColorRepresentation returns the parsed representation. Call after Validate.
func (c *Config) ColorRepresentation() chroma.Representation {
	rep, _ := chroma.ParseRepresentation(c.Representation)
	return rep
}

// AnalysisWindow returns the parsed window. Call after Validate.
func (c *Config) AnalysisWindow() spectrum.Window {
	w, _ := spectrum.ParseWindow(c.Audio.Window)
	return w
}
