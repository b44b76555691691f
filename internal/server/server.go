// Package server implements the TCP request handler. Each accepted
// connection carries exactly one exchange: a single bounded read, one parsed
// request line, one dispatched route, one written response, then close. There
// is no keep-alive, pipelining, or chunked encoding.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"time"

	"github.com/chybatronik/goServiceKit/internal/config"
	"github.com/chybatronik/goServiceKit/internal/health"
	"github.com/chybatronik/goServiceKit/internal/logging"
	"github.com/chybatronik/goServiceKit/internal/metrics"
	"github.com/chybatronik/goServiceKit/internal/processing"
	"github.com/chybatronik/goServiceKit/internal/ratelimit"
	"github.com/chybatronik/goServiceKit/pkg/errors"
)

// readBufferSize bounds the single read per connection. Requests larger than
// this, or split across reads, arrive truncated; an accepted limitation.
const readBufferSize = 4096

// Server owns the accept loop and the per-connection state machine. The rate
// limiters, metrics collector, and health checker are shared by every
// connection goroutine.
type Server struct {
	cfg      *config.Config
	log      *logging.Logger
	metrics  *metrics.Collector
	health   *health.Checker
	limiter  *ratelimit.FixedWindow
	visitors *ratelimit.Visitors
	slots    chan struct{}
	started  time.Time
}

// New wires a server from its shared singletons. Rate limiters are built
// from the security section when rate limiting is enabled; the connection
// cap comes from server.max_connections.
func New(cfg *config.Config, log *logging.Logger, collector *metrics.Collector, checker *health.Checker) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log,
		metrics: collector,
		health:  checker,
		started: time.Now(),
	}

	if cfg.Security.RateLimitingEnabled && cfg.Security.RateLimitRPM > 0 {
		s.limiter = ratelimit.NewFixedWindow(cfg.Security.RateLimitRPM, time.Minute)
		// Per-client guard: the minute budget as a sustained per-second rate,
		// with a small burst so interactive clients are not penalized.
		s.visitors = ratelimit.NewVisitors(float64(cfg.Security.RateLimitRPM)/60.0, 10)
	}

	if cfg.Server.MaxConnections > 0 {
		s.slots = make(chan struct{}, cfg.Server.MaxConnections)
	}

	return s
}

// ListenAndServe binds the configured address and serves until the context
// is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := s.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WrapNetwork("failed to bind "+addr, err)
	}

	s.log.Startup("server listening", "addr", ln.Addr().String())
	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln until the context is cancelled or the
// listener is closed. Accept failures are logged and never stop the loop.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer func() {
		if s.visitors != nil {
			s.visitors.Stop()
		}
	}()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || stderrors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Error("failed to accept connection", logging.FieldError, err.Error())
			continue
		}

		go s.handleConn(conn)
	}
}

// handleConn runs one exchange. Failures are logged at the severity their
// taxonomy kind implies and never escalate past this connection.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	connID := processing.RandomToken(8)
	remote := conn.RemoteAddr().String()
	log := s.log.WithConnID(connID)
	log.Debug("connection accepted", logging.FieldRemote, remote)

	if s.slots != nil {
		select {
		case s.slots <- struct{}{}:
			defer func() { <-s.slots }()
		default:
			s.metrics.IncrementCounter("connections_rejected_total", 1)
			s.writeResponse(conn, log, 503, contentTypeJSON,
				mustJSON(errorBody{Error: "server at capacity", Status: "error"}))
			return
		}
	}

	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		readErr := errors.WrapNetwork("failed to read from socket", err)
		log.LogAt(readErr.Severity().SlogLevel(), "connection read failed",
			logging.FieldError, readErr.Error())
		return
	}
	raw := string(buf[:n])

	method, path, err := parseRequestLine(raw)
	if err != nil {
		// Malformed request line: abort without writing a response
		s.metrics.IncrementCounter("invalid_requests_total", 1)
		sev := errors.SeverityWarning
		if kind, ok := errors.KindOf(err); ok {
			sev = kind.Severity()
		}
		log.LogAt(sev.SlogLevel(), "request parse failed",
			logging.FieldError, err.Error(), logging.FieldRemote, remote)
		return
	}

	start := time.Now()
	s.metrics.IncrementCounter("requests_total", 1)

	if !s.admit(remote) {
		s.metrics.IncrementCounter("rate_limited_total", 1)
		s.respond(conn, log, method, path, start, 429, contentTypeJSON,
			mustJSON(errorBody{Error: "too many requests", Status: "error"}))
		return
	}

	status, contentType, body := s.route(log, method, path, raw)
	s.respond(conn, log, method, path, start, status, contentType, body)
}

// admit applies the global fixed window first, then the per-client bucket.
func (s *Server) admit(remote string) bool {
	if s.limiter == nil {
		return true
	}
	if !s.limiter.IsAllowed() {
		return false
	}
	if s.visitors != nil && !s.visitors.Allow(remoteIP(remote)) {
		return false
	}
	return true
}

// respond writes the single response, records metrics, and logs the exchange.
func (s *Server) respond(conn net.Conn, log *logging.Logger, method, path string, start time.Time, status int, contentType, body string) {
	s.writeResponse(conn, log, status, contentType, body)
	s.metrics.IncrementCounter(statusCounterName(status), 1)
	log.Request(method, path, status, time.Since(start).Milliseconds())
}

func remoteIP(remote string) string {
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		return remote
	}
	return host
}
