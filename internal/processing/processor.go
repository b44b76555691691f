// Package processing implements the data transform served by POST /process
// and the process subcommand.
package processing

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/chybatronik/goServiceKit/pkg/errors"
)

// ProcessData uppercases the input and prefixes it with "Processed: ". Input
// is NFC-normalized first so combining sequences uppercase correctly. Empty
// input is rejected.
func ProcessData(input string) (string, error) {
	if input == "" {
		return "", errors.NewInvalidInput("input cannot be empty")
	}

	normalized := norm.NFC.String(input)
	return "Processed: " + strings.ToUpper(normalized), nil
}

// RandomToken returns a hex token of n random bytes, used as per-connection
// identifiers in logs.
func RandomToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unreachable; keep logs usable anyway
		return "token-unavailable"
	}
	return hex.EncodeToString(b)
}
