package database

import (
	"errors"
	"net"
	"strings"
)

// Connection error substrings seen from pgx and the network stack.
var connectionErrorPatterns = []string{
	"connection",
	"connect",
	"timeout",
	"network",
	"unreachable",
	"refused",
	"failed to connect",
}

// isConnectionError checks if err is a connection-level failure rather than
// a database-level one.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range connectionErrorPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
