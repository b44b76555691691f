package server

import (
	"strings"

	"github.com/chybatronik/goServiceKit/pkg/errors"
)

// parseRequestLine extracts METHOD and PATH from the first line of the raw
// request. Anything after the second field (the protocol version) is ignored.
func parseRequestLine(raw string) (method, path string, err error) {
	firstLine := raw
	if idx := strings.IndexAny(raw, "\r\n"); idx >= 0 {
		firstLine = raw[:idx]
	}

	fields := strings.Fields(firstLine)
	if len(fields) == 0 {
		return "", "", errors.NewInvalidInput("empty request")
	}
	if len(fields) < 2 {
		return "", "", errors.NewInvalidInput("invalid request line")
	}

	return fields[0], fields[1], nil
}

// extractBody returns the bytes after the first blank line separating headers
// from body, or an empty string when no separator exists.
func extractBody(raw string) string {
	if idx := strings.Index(raw, "\r\n\r\n"); idx >= 0 {
		return raw[idx+4:]
	}
	if idx := strings.Index(raw, "\n\n"); idx >= 0 {
		return raw[idx+2:]
	}
	return ""
}
