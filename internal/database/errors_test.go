package database

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chybatronik/goServiceKit/pkg/errors"
)

func TestMapError_Nil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}

func TestMapError_ConnectionFailure(t *testing.T) {
	err := MapError(fmt.Errorf("dial tcp 127.0.0.1:5432: connection refused"))

	kind, ok := errors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errors.KindNetwork, kind)
	assert.True(t, kind.IsRecoverable())
}

func TestMapError_QueryFailure(t *testing.T) {
	err := MapError(stderrors.New("syntax error at or near SELECT"))

	kind, ok := errors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errors.KindDatabase, kind)
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		msg      string
		expected bool
	}{
		{"connection refused", true},
		{"failed to connect to server", true},
		{"i/o timeout", true},
		{"host unreachable", true},
		{"duplicate key value violates unique constraint", false},
		{"relation does not exist", false},
	}

	for _, tt := range tests {
		got := isConnectionError(stderrors.New(tt.msg))
		assert.Equal(t, tt.expected, got, "message %q", tt.msg)
	}
}
