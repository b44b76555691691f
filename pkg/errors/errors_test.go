package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityClassification(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected Severity
	}{
		{"invalid input is a warning", KindInvalidInput, SeverityWarning},
		{"config is a warning", KindConfig, SeverityWarning},
		{"auth is an error", KindAuth, SeverityError},
		{"permission is an error", KindPermission, SeverityError},
		{"not found is info", KindNotFound, SeverityInfo},
		{"network is an error", KindNetwork, SeverityError},
		{"database is an error", KindDatabase, SeverityError},
		{"io is an error", KindIO, SeverityError},
		{"serialization is critical", KindSerialization, SeverityCritical},
		{"internal is critical", KindInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.Severity())
		})
	}
}

func TestIsRecoverable(t *testing.T) {
	recoverable := []Kind{KindNetwork, KindDatabase, KindIO}
	for _, k := range recoverable {
		assert.True(t, k.IsRecoverable(), "kind %v should be recoverable", k)
	}

	unrecoverable := []Kind{
		KindInvalidInput, KindConfig, KindSerialization,
		KindAuth, KindPermission, KindNotFound, KindInternal,
	}
	for _, k := range unrecoverable {
		assert.False(t, k.IsRecoverable(), "kind %v should not be recoverable", k)
	}
}

func TestErrorRendering(t *testing.T) {
	err := NewInvalidInput("input cannot be empty")
	assert.Equal(t, "invalid input: input cannot be empty", err.Error())

	wrapped := WrapIO(fmt.Errorf("open config.json: no such file"))
	assert.Equal(t, "io error: open config.json: no such file", wrapped.Error())

	both := WrapDatabase("ping failed", fmt.Errorf("connection refused"))
	assert.Equal(t, "database error: ping failed: connection refused", both.Error())
}

func TestWrappingPreservesCause(t *testing.T) {
	cause := fs.ErrNotExist
	err := WrapIO(cause)

	require.NotNil(t, err)
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.Equal(t, cause, err.Unwrap())
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, WrapIO(nil))
	assert.Nil(t, WrapSerialization(nil))
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewNotFound("no such route"))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindNetwork))

	_, ok = KindOf(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestSeveritySlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, SeverityInfo.SlogLevel())
	assert.Equal(t, slog.LevelWarn, SeverityWarning.SlogLevel())
	assert.Equal(t, slog.LevelError, SeverityError.SlogLevel())
	assert.Equal(t, slog.LevelError, SeverityCritical.SlogLevel())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "WARN", SeverityWarning.String())
	assert.Equal(t, "ERROR", SeverityError.String())
	assert.Equal(t, "CRITICAL", SeverityCritical.String())
}
