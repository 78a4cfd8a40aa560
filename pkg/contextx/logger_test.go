package contextx_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"crm_pipeline/pkg/contextx"
)

func TestLoggerFromContext(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	logger, err := contextx.LoggerFromContext(ctx)
	rq.Nil(logger)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "logger: no value in context")

	scoped := slog.New(slog.DiscardHandler).With(slog.String("app-name", "crm-pipeline"))
	ctx = contextx.WithLogger(ctx, scoped)

	logger, err = contextx.LoggerFromContext(ctx)
	rq.NoError(err)
	rq.Same(scoped, logger)
}

func TestLoggerFromContextOrDefault(t *testing.T) {
	rq := require.New(t)

	rq.Same(slog.Default(), contextx.LoggerFromContextOrDefault(context.Background()))

	scoped := slog.New(slog.DiscardHandler)
	ctx := contextx.WithLogger(context.Background(), scoped)

	rq.Same(scoped, contextx.LoggerFromContextOrDefault(ctx))
}
