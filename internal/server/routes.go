package server

import (
	"encoding/json"
	"time"

	"github.com/chybatronik/goServiceKit/internal/logging"
	"github.com/chybatronik/goServiceKit/internal/processing"
	"github.com/chybatronik/goServiceKit/pkg/errors"
)

const (
	contentTypeHTML = "text/html"
	contentTypeJSON = "application/json"

	greetingPage = "<h1>Hello from goServiceKit!</h1><p>Server is running.</p>"
	notFoundPage = "<h1>404 Not Found</h1><p>The requested resource was not found.</p>"
)

// healthBody is the /health response shape.
type healthBody struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// processBody is the /process success response shape.
type processBody struct {
	Result string `json:"result"`
	Status string `json:"status"`
}

// errorBody is the generic error response shape.
type errorBody struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// route dispatches on the exact (method, path) pair. Everything unmatched is
// a 404.
func (s *Server) route(log *logging.Logger, method, path, raw string) (status int, contentType, body string) {
	switch {
	case method == "GET" && path == "/":
		return 200, contentTypeHTML, greetingPage

	case method == "GET" && path == "/health":
		return s.handleHealth(log)

	case method == "POST" && path == "/process":
		return s.handleProcess(extractBody(raw))

	case method == "GET" && path == "/metrics":
		return s.handleMetrics(log)

	default:
		return 404, contentTypeHTML, notFoundPage
	}
}

// handleHealth runs the registered probes in order. The first failure makes
// the service unhealthy; its message is the only internal detail exposed.
func (s *Server) handleHealth(log *logging.Logger) (int, string, string) {
	now := time.Now().Unix()

	if err := s.health.Check(); err != nil {
		log.HealthCheck("failed", logging.FieldError, err.Error())
		return 503, contentTypeJSON, mustJSON(healthBody{
			Status:    logging.StatusUnhealthy,
			Error:     err.Error(),
			Timestamp: now,
		})
	}

	return 200, contentTypeJSON, mustJSON(healthBody{
		Status:    logging.StatusHealthy,
		Timestamp: now,
	})
}

func (s *Server) handleProcess(input string) (int, string, string) {
	result, err := processing.ProcessData(input)
	if err != nil {
		return 400, contentTypeJSON, mustJSON(errorBody{
			Error:  err.Error(),
			Status: "error",
		})
	}

	return 200, contentTypeJSON, mustJSON(processBody{
		Result: result,
		Status: "success",
	})
}

func (s *Server) handleMetrics(log *logging.Logger) (int, string, string) {
	s.metrics.SetGauge("uptime_seconds", time.Since(s.started).Seconds())

	body, err := s.metrics.SnapshotJSON()
	if err != nil {
		kind, _ := errors.KindOf(err)
		log.LogAt(kind.Severity().SlogLevel(), "metrics snapshot failed",
			logging.FieldError, err.Error())
		return 500, contentTypeJSON, mustJSON(errorBody{
			Error:  "failed to serialize metrics",
			Status: "error",
		})
	}

	return 200, contentTypeJSON, body
}

// mustJSON marshals response bodies built from plain structs; a failure here
// is a programming error.
func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
