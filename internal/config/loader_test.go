// SPDX-License-Identifier: EPL-2.0

package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/ik5/colorfreq/chroma"
	"github.com/ik5/colorfreq/internal/config"
	"github.com/ik5/colorfreq/spectrum"
	"github.com/ik5/colorfreq/wavelength"
)

func TestLoadFromReader_Full(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	yaml := `
log_level: debug
method: octave
representation: 8bit
audio:
  sample_rate: 16000
  frame_length: 2048
  window: hann
  realtime: false
render:
  terminal: true
  in_place: true
  websocket_addr: ":8080"
metrics:
  enabled: true
  addr: ":8080"
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	is.NoErr(err)

	is.Equal(cfg.LogLevel, config.LogDebug)
	is.Equal(cfg.LogLevel.Level(), slog.LevelDebug)
	is.Equal(cfg.MappingMethod(nil), wavelength.Octave)
	is.Equal(cfg.ColorRepresentation(), chroma.EightBit)
	is.Equal(cfg.Audio.SampleRate, 16000)
	is.Equal(cfg.Audio.FrameLength, 2048)
	is.Equal(cfg.AnalysisWindow(), spectrum.WindowHann)
	is.True(!cfg.Audio.Realtime)
	is.True(cfg.Render.InPlace)
	is.Equal(cfg.Render.WebsocketAddr, ":8080")
	is.True(cfg.Metrics.Enabled)
}

func TestLoadFromReader_EmptyUsesDefaults(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	cfg, err := config.LoadFromReader(strings.NewReader(""))
	is.NoErr(err)
	is.Equal(cfg, config.Default())
}

func TestLoadFromReader_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	cfg, err := config.LoadFromReader(strings.NewReader("method: 440hz\n"))
	is.NoErr(err)
	is.Equal(cfg.MappingMethod(nil), wavelength.FourForty)
	is.Equal(cfg.Audio.FrameLength, 1024)
	is.Equal(cfg.Audio.SampleRate, 44100)
	is.True(cfg.Audio.Realtime)
	is.True(cfg.Render.Terminal)
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	_, err := config.LoadFromReader(strings.NewReader("colour: red\n"))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "decode yaml"))
}

func TestLoadFromReader_InvalidYAML(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	_, err := config.LoadFromReader(strings.NewReader("audio: [unterminated\n"))
	is.True(err != nil)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	cfg := config.Default()
	cfg.LogLevel = "verbose"
	cfg.Representation = "cmyk"
	cfg.Audio.SampleRate = 0
	cfg.Audio.FrameLength = -1
	cfg.Audio.Window = "kaiser"

	err := config.Validate(cfg)
	is.True(err != nil)

	for _, want := range []string{"log_level", "representation", "sample_rate", "frame_length", "window"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestValidate_MetricsNeedAnAddress(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	cfg := config.Default()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Addr = ""
	err := config.Validate(cfg)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "metrics"))

	cfg.Render.WebsocketAddr = ":8080"
	is.NoErr(config.Validate(cfg))
}

func TestValidate_UnknownMethodIsNotAnError(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	cfg := config.Default()
	cfg.Method = "rainbow"
	is.NoErr(config.Validate(cfg))
}

func TestResolveMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  wavelength.Method
		warn  bool
	}{
		{"simple", wavelength.Simple, false},
		{"octave", wavelength.Octave, false},
		{"440hz", wavelength.FourForty, false},
		{"2", wavelength.Octave, false},
		{"rainbow", wavelength.Simple, true},
		{"", wavelength.Simple, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			is := is.New(t)

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			is.Equal(config.ResolveMethod(tt.input, logger), tt.want)
			is.Equal(strings.Contains(buf.String(), "unknown mapping method"), tt.warn)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "colorfreq.yaml")
	is.NoErr(os.WriteFile(path, []byte("representation: normalized\n"), 0o600))

	cfg, err := config.Load(path)
	is.NoErr(err)
	is.Equal(cfg.ColorRepresentation(), chroma.Normalized)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "config: open"))
}

func TestLogLevel_IsValid(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	for _, l := range []config.LogLevel{config.LogDebug, config.LogInfo, config.LogWarn, config.LogError} {
		is.True(l.IsValid())
	}
	is.True(!config.LogLevel("trace").IsValid())
	is.Equal(config.LogLevel("").Level(), slog.LevelInfo)
}
