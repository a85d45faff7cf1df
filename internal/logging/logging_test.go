package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffIX/PoserLib/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	var buf bytes.Buffer
	j, err := logging.ParseFormat("JSON", &buf)
	require.NoError(t, err)
	assert.True(t, j)
	j, err = logging.ParseFormat("text", &buf)
	require.NoError(t, err)
	assert.False(t, j)
	_, err = logging.ParseFormat("xml", &buf)
	assert.Error(t, err)

	// A buffer is never a terminal, so auto selects JSON.
	j, err = logging.ParseFormat("auto", &buf)
	require.NoError(t, err)
	assert.True(t, j)
	j, err = logging.ParseFormat("", &buf)
	require.NoError(t, err)
	assert.True(t, j)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, logging.IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, logging.IsTerminal(f))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: slog.LevelWarn, JSON: true, Writer: &buf, Component: "dialdump"})
	log.Info("hidden")
	log.Warn("shown", slog.Int("index", 2))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"component":"dialdump"`)
	assert.Contains(t, out, `"index":2`)

	logging.Discard().Error("nowhere")
}
