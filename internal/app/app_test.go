package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pointerrss/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run_StopsOnCancelledContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.New()
	cfg.Server.Address = "127.0.0.1:0"
	require.NoError(t, cfg.Validate())

	a, err := New(cfg, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, a.Run(ctx))
}

func TestApp_Run_ListenError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.New()
	cfg.Server.Address = "256.0.0.1:99999"

	a, err := New(cfg, logger)
	require.NoError(t, err)

	err = a.Run(context.Background())
	assert.ErrorContains(t, err, "failed to create listener")
}
