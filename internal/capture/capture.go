// SPDX-License-Identifier: EPL-2.0

// Package capture runs an external recorder process and exposes its raw PCM
// output as an audio source.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/colorfreq/audio"
)

// DefaultCommand records mono s16le at 44.1 kHz through ALSA.
const DefaultCommand = "arecord -q -t raw -f S16_LE -c 1 -r 44100"

// Recorder is a running recorder process. Its stdout must carry interleaved
// signed 16-bit little-endian PCM.
type Recorder struct {
	name   string
	cmd    *exec.Cmd
	src    *audio.RawSource
	logger *slog.Logger

	stopping  atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

var _ audio.Source = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*options)

type options struct {
	logger *slog.Logger
	stderr io.Writer
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStderr forwards the recorder's stderr to w. It is discarded otherwise.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// Start launches command, split on whitespace with single or double quotes
// grouping words. The process is killed when ctx ends or Close is called.
func Start(ctx context.Context, command string, sampleRate, channels int, opts ...Option) (*Recorder, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	args, err := SplitCommand(command)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stderr = o.stderr
	cmd.WaitDelay = time.Second

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("recorder %s: stdout pipe: %w", args[0], err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("recorder %s: start: %w", args[0], err)
	}

	o.logger.Info("recorder started", "command", args[0], "pid", cmd.Process.Pid,
		"sample_rate", sampleRate, "channels", channels)

	return &Recorder{
		name:   args[0],
		cmd:    cmd,
		src:    audio.NewRawSource(stdout, sampleRate, channels),
		logger: o.logger,
	}, nil
}

func (r *Recorder) SampleRate() int { return r.src.SampleRate() }
func (r *Recorder) Channels() int   { return r.src.Channels() }
func (r *Recorder) BufSize() int    { return r.src.BufSize() }

// ReadSamples reads PCM from the recorder. Once Close has been called any
// read failure is reported as io.EOF.
func (r *Recorder) ReadSamples(dst []float32) (int, error) {
	n, err := r.src.ReadSamples(dst)
	if err != nil && !errors.Is(err, io.EOF) && r.stopping.Load() {
		return n, io.EOF
	}
	return n, err
}

// Close kills the recorder and waits for it to exit. A recorder that had
// already exited with a failure is reported.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		r.stopping.Store(true)

		killErr := r.cmd.Process.Kill()
		waitErr := r.cmd.Wait()
		if errors.Is(killErr, os.ErrProcessDone) && waitErr != nil {
			r.closeErr = fmt.Errorf("recorder %s: %w", r.name, waitErr)
		}
		r.logger.Info("recorder stopped", "command", r.name)
	})
	return r.closeErr
}

// SplitCommand breaks a command line into words. Quotes group words and are
// removed; there is no escaping.
func SplitCommand(s string) ([]string, error) {
	var (
		args  []string
		word  strings.Builder
		quote rune
		in    bool
	)
	for _, c := range s {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
				continue
			}
			word.WriteRune(c)
		case c == '\'' || c == '"':
			quote, in = c, true
		case c == ' ' || c == '\t' || c == '\n':
			if in {
				args = append(args, word.String())
				word.Reset()
				in = false
			}
		default:
			word.WriteRune(c)
			in = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnterminatedQuote, s)
	}
	if in {
		args = append(args, word.String())
	}
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	return args, nil
}
