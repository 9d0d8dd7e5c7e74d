package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "error message")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")
	assert.True(t, IsDebug())
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.With(F("command", "ls")).Info("executed")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "executed", line["msg"])
	assert.Equal(t, "ls", line["command"])
	assert.Equal(t, "info", line["level"])
}

func TestPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithOutput(&buf))
	defer Configure()

	Info("loaded %d entries", 3)
	assert.Contains(t, buf.String(), "loaded 3 entries")
	buf.Reset()

	Warn("reload failed", "boom")
	assert.Contains(t, buf.String(), "reload failed: boom")
	buf.Reset()

	LogWithFields(F("path", "/projects")).Error("lookup failed")
	assert.Contains(t, buf.String(), "path=/projects")
	assert.Contains(t, buf.String(), "lookup failed")
	buf.Reset()

	SetOutput(&bytes.Buffer{})
	Info("elsewhere")
	assert.Empty(t, buf.String())
}
