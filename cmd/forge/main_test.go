package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-forge/internal/config"
)

func TestRunProcessesCommands(t *testing.T) {
	cfg := config.Default()
	cfg.Forge.Seed = 3
	cfg.Metrics.Addr = ""

	in := strings.NewReader("help\n# comment\n\ngenerate 10 magic ring p1\nsmelt\nquit\ngenerate 1\n")
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, run(context.Background(), cfg, logger, in, &out))

	dec := json.NewDecoder(&out)
	var responses []map[string]any
	for dec.More() {
		var r map[string]any
		require.NoError(t, dec.Decode(&r))
		responses = append(responses, r)
	}

	require.Len(t, responses, 3)
	assert.Equal(t, true, responses[0]["success"])
	assert.Equal(t, true, responses[1]["success"])
	assert.Equal(t, false, responses[2]["success"])
	assert.Equal(t, "invalid_argument", responses[2]["reason"])
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger := newLogger(config.LogConfig{Level: "chatty", Format: "json"})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
