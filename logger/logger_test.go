package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Info("default subsystem")

	ctx := With(t.Context(), "chunk_size", 2)
	Get(ctx).Debug("with values")

	Get(WithMuted(t.Context(), true)).Error("never written")
	Get(WithMuted(ctx, false)).Debug("unmuted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first, second map[string]any

	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "test", first["subsystem"])
	assert.Equal(t, "default subsystem", first["msg"])
	assert.Equal(t, "test", second["subsystem"])
	assert.Equal(t, "with values", second["msg"])
	assert.InDelta(t, 2, second["chunk_size"], 0)
}

func TestLoggerText(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{Subsystem: "text", Output: &buf})

	Get(nil, context.Background()).Debug("below min level")
	Get().Info("hello")

	assert.NotContains(t, buf.String(), "below min level")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "subsystem=text")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: " warn ", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "info+2", expected: slog.LevelInfo + 2},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}
