package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/logging"
)

func TestLogger_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, logging.Info)

	l.Info("engine ready",
		logging.Field{Key: "builtins", Value: 13},
	)

	out := buf.String()
	assert.Contains(t, out, `"message":"engine ready"`)
	assert.Contains(t, out, `"builtins":13`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestLogger_LevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, logging.Error)

	l.Debug("hidden")
	l.Info("also hidden")
	assert.Empty(t, buf.String())

	l.Error("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, logging.Debug).
		WithFields(logging.Field{Key: "suite", Value: "core"})

	l.Debug("evaluated")

	assert.Contains(t, buf.String(), `"suite":"core"`)
}

func TestDiscard_DropsEverything(t *testing.T) {
	l := logging.Discard()

	// Must not panic or write anywhere.
	l.Debug("x")
	l.Info("y")
	l.Error("z")
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, name := range []string{
		"silent", "error", "info", "debug",
	} {
		var l logging.Level
		require.NoError(t, l.UnmarshalText([]byte(name)))
		assert.Equal(t, name, l.String())
	}

	var l logging.Level
	assert.Error(t, l.UnmarshalText([]byte("loud")))
	assert.Equal(t, "", logging.Level(42).String())
}
