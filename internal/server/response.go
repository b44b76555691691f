package server

import (
	"fmt"
	"net"

	"github.com/chybatronik/goServiceKit/internal/logging"
)

// statusText covers every status the handler produces.
func statusText(status int) string {
	switch status {
	case 200:
		return "OK"
	case 400:
		return "Bad Request"
	case 404:
		return "Not Found"
	case 429:
		return "Too Many Requests"
	case 500:
		return "Internal Server Error"
	case 503:
		return "Service Unavailable"
	default:
		return "Unknown"
	}
}

// statusCounterName maps a status code onto its response counter.
func statusCounterName(status int) string {
	return fmt.Sprintf("responses_%d_total", status)
}

// buildResponse renders the single response: status line, Content-Type,
// Content-Length, Connection: close, body.
func buildResponse(status int, contentType, body string) string {
	return fmt.Sprintf(
		"HTTP/1.1 %d %s\r\nContent-Type: %s\r\nContent-Length: %d\r\nConnection: close\r\n\r\n%s",
		status, statusText(status), contentType, len(body), body,
	)
}

// writeResponse sends the response; write failures are logged and otherwise
// dropped since the connection closes either way.
func (s *Server) writeResponse(conn net.Conn, log *logging.Logger, status int, contentType, body string) {
	if _, err := conn.Write([]byte(buildResponse(status, contentType, body))); err != nil {
		log.Error("failed to write response", logging.FieldError, err.Error())
	}
}
