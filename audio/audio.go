// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Source is a pull-based stream of interleaved float32 samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels per frame, 1 for mono.
	Channels() int
	// ReadSamples fills dst and returns the number of float32 values written.
	// A return of 0 with io.EOF ends the stream. Readers treat 0 with a nil
	// error the same way.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the read size the source prefers.
	BufSize() int
	Close() error
}

// Decoder builds a Source from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys ("wav", "mp3", ...) to decoders.
type Registry struct {
	mu      sync.RWMutex
	codecs  map[string]Decoder
	aliases map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:  make(map[string]Decoder),
		aliases: make(map[string]string),
	}
}

// Register binds d to format and to any extra file extensions.
// Keys are case-insensitive.
func (r *Registry) Register(format string, d Decoder, extensions ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeFormat(format)
	r.codecs[key] = d
	for _, ext := range extensions {
		r.aliases[normalizeFormat(ext)] = key
	}
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := normalizeFormat(format)
	if alias, ok := r.aliases[key]; ok {
		key = alias
	}
	d, ok := r.codecs[key]
	return d, ok
}

// Formats lists the registered format keys in order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Decode runs the decoder registered for format over rd.
func (r *Registry) Decode(format string, rd io.Reader) (Source, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := d.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return src, nil
}

// Open decodes the file at path, choosing the decoder by extension.
// Closing the returned Source closes the file.
func (r *Registry) Open(path string) (Source, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if _, ok := r.Get(format); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}

	src, err := r.Decode(format, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &fileSource{Source: src, f: f}, nil
}

func normalizeFormat(s string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
}

type fileSource struct {
	Source
	f *os.File
}

func (s *fileSource) Close() error {
	srcErr := s.Source.Close()
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close audio file: %w", err)
	}
	return srcErr
}
