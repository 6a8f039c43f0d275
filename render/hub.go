// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.opentelemetry.io/otel/metric"

	"github.com/ik5/colorfreq/pipeline"
)

//go:embed index.html
var indexHTML []byte

// Message is the JSON form of a reading sent to websocket clients.
type Message struct {
	Frequency  float64  `json:"frequency_hz"`
	Wavelength float64  `json:"wavelength_nm"`
	RGB        [3]uint8 `json:"rgb"`
	Hex        string   `json:"hex"`
}

// NewMessage converts a reading to its wire form.
func NewMessage(r pipeline.Reading) Message {
	red, green, blue := r.Color.Bytes()
	return Message{
		Frequency:  r.Frequency,
		Wavelength: r.Wavelength,
		RGB:        [3]uint8{red, green, blue},
		Hex:        r.Color.Hex(),
	}
}

// Hub broadcasts readings to websocket clients. Every client has its own
// mailbox, so a slow browser only skips readings and never stalls Display.
type Hub struct {
	logger       *slog.Logger
	writeTimeout time.Duration

	viewers metric.Int64UpDownCounter

	mu      sync.Mutex
	clients map[*Mailbox]struct{}
	last    *pipeline.Reading
	closed  bool
}

// HubOption configures a Hub.
type HubOption func(*Hub)

func WithHubLogger(l *slog.Logger) HubOption {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithWriteTimeout bounds each websocket write. The default is 5s.
func WithWriteTimeout(d time.Duration) HubOption {
	return func(h *Hub) {
		if d > 0 {
			h.writeTimeout = d
		}
	}
}

// WithViewers tracks connected clients on c.
func WithViewers(c metric.Int64UpDownCounter) HubOption {
	return func(h *Hub) { h.viewers = c }
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		logger:       slog.Default(),
		writeTimeout: 5 * time.Second,
		clients:      make(map[*Mailbox]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Display queues r for every connected client.
func (h *Hub) Display(_ context.Context, r pipeline.Reading) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = &r
	for mb := range h.clients {
		mb.Put(r)
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close ends every client stream with a normal closure. Clients that
// connect afterwards are closed at once.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for mb := range h.clients {
		mb.Close()
	}
	return nil
}

// Handler serves the viewer page on / and the stream on /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})
	mux.Handle("GET /ws", h)
	return mux
}

// ServeHTTP upgrades the request and streams readings until the client
// leaves or the request context ends.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket accept failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.CloseNow()

	// Clients only listen; CloseRead handles their control frames.
	ctx := conn.CloseRead(r.Context())

	mb := h.subscribe()
	defer h.unsubscribe(mb)

	h.logger.Debug("websocket client connected", "remote", r.RemoteAddr)
	for {
		reading, err := mb.Get(ctx)
		if err != nil {
			break
		}
		if err := h.write(ctx, conn, reading); err != nil {
			if !errors.Is(err, context.Canceled) {
				h.logger.Debug("websocket write failed", "remote", r.RemoteAddr, "err", err)
			}
			return
		}
	}
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) write(ctx context.Context, conn *websocket.Conn, r pipeline.Reading) error {
	ctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, NewMessage(r))
}

func (h *Hub) subscribe() *Mailbox {
	mb := NewMailbox()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		mb.Close()
		return mb
	}
	h.clients[mb] = struct{}{}
	if h.last != nil {
		mb.Put(*h.last)
	}
	if h.viewers != nil {
		h.viewers.Add(context.Background(), 1)
	}
	return mb
}

func (h *Hub) unsubscribe(mb *Mailbox) {
	h.mu.Lock()
	if _, ok := h.clients[mb]; ok && h.viewers != nil {
		h.viewers.Add(context.Background(), -1)
	}
	delete(h.clients, mb)
	h.mu.Unlock()
	mb.Close()
}
