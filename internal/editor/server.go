package editor

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/zeusync/behave/internal/core/observability/log"
	"github.com/zeusync/behave/internal/core/observability/metrics"
	"github.com/zeusync/behave/internal/core/system"
)

// Server exposes the world's component library and entities to an external
// editor over a websocket. Every request that touches the world is executed on
// the simulation goroutine through World.Do.
type Server struct {
	world    *system.World
	log      log.Log
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader
	timeout  time.Duration

	mu       sync.Mutex
	sessions map[string]*websocket.Conn
	http     *http.Server
}

type Option func(*Server)

func WithLogger(l log.Log) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics counts requests and serves the registry on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithRequestTimeout bounds how long a request waits for the simulation loop.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func New(world *system.World, opts ...Option) *Server {
	s := &Server{
		world: world,
		log:   log.NewNop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		timeout:  2 * time.Second,
		sessions: make(map[string]*websocket.Conn),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler serving the /ws endpoint, and /metrics
// when metrics are configured.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down and
// closes open sessions.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	if s.http != nil {
		s.mu.Unlock()
		_ = ln.Close()
		return ErrServerRunning
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	s.http = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("editor listening", log.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.closeSessions()
	s.log.Info("editor stopped")
	return err
}

// Sessions returns the number of connected editors.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", log.Error(err))
		return
	}

	id := uuid.NewString()
	logger := s.log.With(log.String("session", id), log.String("remote", conn.RemoteAddr().String()))
	s.mu.Lock()
	s.sessions[id] = conn
	s.mu.Unlock()
	logger.Info("editor connected")

	defer func() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		_ = conn.Close()
		logger.Info("editor disconnected")
	}()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if !isDecodeError(err) {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logger.Warn("read failed", log.Error(err))
				}
				return
			}
			if werr := conn.WriteJSON(Response{Error: err.Error(), Code: CodeBadRequest}); werr != nil {
				return
			}
			continue
		}

		resp := s.handle(r.Context(), req)
		s.metrics.ObserveRequest(req.Op, resp.Code)
		if !resp.OK {
			logger.Debug("request failed", log.String("op", req.Op), log.String("error", resp.Error))
		}
		if err := conn.WriteJSON(resp); err != nil {
			logger.Warn("write failed", log.Error(err))
			return
		}
	}
}

// isDecodeError reports whether a ReadJSON failure came from the payload
// rather than the connection.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func (s *Server) closeSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, conn := range s.sessions {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "editor shutting down"),
			time.Now().Add(time.Second))
		_ = conn.Close()
		delete(s.sessions, id)
	}
}
