package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.InfoLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	log.Info("dispatched", "oid", "1.2.3", "outcome", "typed")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "dispatched", entries[0]["msg"])
	assert.Equal(t, "1.2.3", entries[0]["oid"])
	assert.Equal(t, "typed", entries[0]["outcome"])
	assert.Contains(t, entries[0], "ts")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "warn", Format: "json"}, &buf)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error("shown too")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "error", entries[1]["level"])
}

func TestLogger_WithFieldsAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)

	log := base.WithRequestID("req-1").WithFields("component", "registry", 42, "dropped", "dangling")
	log.Info("registered", "oid", "1.2.3")
	base.Info("plain")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.Equal(t, "registry", entries[0]["component"])
	assert.NotContains(t, entries[0], "dangling")
	assert.NotContains(t, entries[1], "request_id")
	assert.NotContains(t, entries[1], "component")
}

func TestLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "info", Format: "text"}, &buf)

	log.Info("registered", "oid", "1.2.3")

	out := buf.String()
	assert.Contains(t, out, "registered")
	assert.Contains(t, out, "oid=1.2.3")
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing")
	log.WithFields("a", 1).WithRequestID("x").Error("still nothing")
}

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
