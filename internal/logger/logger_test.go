package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"widget": "email", "pass": "render"})
	log.Info("render complete")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "render complete", entry["message"])
	require.Equal(t, "email", entry["widget"])
	require.Equal(t, "render", entry["pass"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithComponent("Input")
	log.Error(errors.New("boom"), "release failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "release failed", entry["message"])
	require.Equal(t, "Input", entry["component"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilLoggerIsSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Debug("ignored")
		log.Warn("ignored")
		log.Error(errors.New("x"), "ignored")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
		require.Nil(t, log.WithComponent("Input"))
	})
}

func TestLoggerLevelAliases(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "Warning", Writer: buf})
	require.NoError(t, err)
	log.Info("dropped")
	log.Warn("kept")
	require.Contains(t, buf.String(), "kept")
	require.NotContains(t, buf.String(), "dropped")

	buf.Reset()
	log, err = New(Options{Level: "off", Writer: buf})
	require.NoError(t, err)
	log.Error(errors.New("boom"), "dropped")
	require.Empty(t, buf.String())
}

func TestLoggerHumanReadableWithoutColor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: true, NoColor: true, Writer: buf})
	require.NoError(t, err)

	log.WithFields(Fields{"side": "left"}).Debug("unsupported adornment ignored")
	out := buf.String()
	require.Contains(t, out, "unsupported adornment ignored")
	require.Contains(t, out, "side=left")
	require.NotContains(t, out, "\x1b[")
}
