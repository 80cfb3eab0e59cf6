package gesture

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorilla/websocket"
)

// frame is the wire format the hand tracker sends, one JSON message
// per observation.
type frame struct {
	Open     bool    `json:"open"`
	Openness float64 `json:"openness"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Source accepts hand-tracker observations over a websocket and keeps
// only the most recent one. The frame loop polls Latest at its own
// rate; samples arriving faster than the frame rate are overwritten,
// never queued.
type Source struct {
	addr     string
	upgrader websocket.Upgrader
	srv      *http.Server
	latest   atomic.Pointer[Sample]
}

// NewSource creates a source listening on addr once started.
func NewSource(addr string) *Source {
	return &Source{
		addr: addr,
		upgrader: websocket.Upgrader{
			// The tracker page is served from anywhere during development.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Start binds the listener and begins serving tracker connections.
// A bind failure is returned once; the caller falls back to the idle
// gesture state and keeps rendering.
func (s *Source) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("gesture source listen on %s: %w", s.addr, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/gesture", s.handleTracker)
	s.srv = &http.Server{Handler: mux}

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("gesture source stopped", "error", err)
		}
	}()

	slog.Info("gesture source listening", "addr", s.addr)
	return nil
}

func (s *Source) handleTracker(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("gesture tracker upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	slog.Info("gesture tracker connected", "remote", conn.RemoteAddr().String())
	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			slog.Info("gesture tracker disconnected", "remote", conn.RemoteAddr().String())
			return
		}
		sample := Sample{
			Open:     f.Open,
			Openness: clamp01(float32(f.Openness)),
			Position: mgl32.Vec2{clamp01(float32(f.X)), clamp01(float32(f.Y))},
		}
		s.latest.Store(&sample)
	}
}

// Latest returns the most recent tracker sample, or false if no
// tracker has reported yet.
func (s *Source) Latest() (Sample, bool) {
	p := s.latest.Load()
	if p == nil {
		return Sample{}, false
	}
	return *p, true
}

// Close shuts the listener down.
func (s *Source) Close() error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Close()
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
