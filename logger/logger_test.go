package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/amp-labs/amp-quicksort/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))

		out = append(out, entry)
	}

	return out
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("default subsystem")

	ctx := WithSubsystem(t.Context(), "overridden")
	Get(ctx).Info("overridden subsystem")

	ctx = With(t.Context(), "run_id", "abc")
	ctx = With(ctx, "elements", 6)
	Get(ctx).Info("with values")

	Get(WithMuted(t.Context(), true)).Info("never printed")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 3)

	assert.Equal(t, "test", entries[0]["subsystem"])
	assert.Equal(t, GetPodName(), entries[0]["pod"])
	assert.Equal(t, "overridden", entries[1]["subsystem"])
	assert.Equal(t, "abc", entries[2]["run_id"])
	assert.InDelta(t, 6, entries[2]["elements"], 0)
}

func TestLegacy(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem:   "test",
		JSON:        true,
		MinLevel:    slog.LevelDebug,
		LegacyLevel: slog.LevelWarn,
		Output:      &buf,
	})

	log.Println("legacy line")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "legacy line", entries[0]["msg"])
}

func TestMinLevel(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		MinLevel: slog.LevelWarn,
		Output:   &buf,
	})

	Get().Info("filtered")
	Get().Warn("kept")

	assert.NotContains(t, buf.String(), "filtered")
	assert.Contains(t, buf.String(), "kept")
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := LoadOptions(t.Context(), "app")
		require.NoError(t, err)

		assert.Equal(t, "app", opts.Subsystem)
		assert.Equal(t, slog.LevelInfo, opts.MinLevel)
		assert.Equal(t, os.Stderr, opts.Output)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
		ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "debug")
		ctx = envutil.WithEnvOverride(ctx, "LOG_OUTPUT", "stdout")

		opts, err := LoadOptions(ctx, "app")
		require.NoError(t, err)

		assert.True(t, opts.JSON)
		assert.Equal(t, slog.LevelDebug, opts.MinLevel)
		assert.Equal(t, os.Stdout, opts.Output)
	})

	t.Run("invalid output", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "/var/log/app.log")

		_, err := LoadOptions(ctx, "app")
		require.ErrorIs(t, err, ErrInvalidLogOutput)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "LOG_LEVEL", "chatty")

		_, err := LoadOptions(ctx, "app")
		require.ErrorIs(t, err, envutil.ErrInvalidLogLevel)
	})
}

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "false")

	logger, err := ConfigureLogging(ctx, "configured", WithOutput(&buf), WithJSON(true))
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.Equal(t, "configured", GetSubsystem(t.Context()))

	Get().Info("hello")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "configured", entries[0]["subsystem"])
}
