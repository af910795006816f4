package sideeffect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun_FailureIsLoggedAndContained(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	res := Run(context.Background(), logger, "mark_unpinned", func(context.Context) error {
		return errors.New("db down")
	}, zap.String("cid", "bafy"))

	require.False(t, res.OK())
	require.Equal(t, "mark_unpinned", res.Name)
	require.EqualError(t, res.Err, "db down")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "Best-effort side effect failed", entries[0].Message)
	require.Equal(t, "bafy", entries[0].ContextMap()["cid"])
}

func TestRun_Success(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	res := Run(context.Background(), zap.New(core), "noop", func(context.Context) error { return nil })

	require.True(t, res.OK())
	require.Zero(t, logs.Len())
}
