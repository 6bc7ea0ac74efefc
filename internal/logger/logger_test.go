package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestWarnCarriesCodeAndField(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Warn("invalid-unit", "content", "bad unit")

	entry := decode(t, buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "invalid-unit", entry["code"])
	assert.Equal(t, "content", entry["field"])
	assert.Equal(t, "bad unit", entry["message"])
}

func TestWarnOmitsEmptyFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Warn("", "", "plain")

	entry := decode(t, buf)
	assert.NotContains(t, entry, "code")
	assert.NotContains(t, entry, "field")
}

func TestDebugRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestErrorWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"stage": "properties"}).Error(errors.New("boom"), "fallback")

	entry := decode(t, buf)
	assert.Equal(t, "properties", entry["stage"])
	assert.Equal(t, "boom", entry["error"])
}

func TestInvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("x")
		log.Debug("x")
		log.Warn("c", "f", "x")
		log.Error(errors.New("x"), "x")
		assert.Nil(t, log.With("k", "v"))
		assert.Nil(t, log.WithFields(map[string]any{"k": "v"}))
	})
}
