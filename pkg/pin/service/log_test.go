package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/pin"
	"github.com/chainsafe/nft-launchpad-api/pkg/pin/service/mocks"
)

func TestLogService_LevelByErrorCategory(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level zapcore.Level
		msg   string
	}{
		{"success", nil, zapcore.InfoLevel, "Unpin completed"},
		{"client error", apperrors.BadRequestError(nil, "invalid cid"), zapcore.WarnLevel, "Unpin rejected"},
		{"upstream error", apperrors.UpstreamError(errors.New("pinata returned 502"), ""), zapcore.ErrorLevel, "Unpin failed"},
		{"unclassified error", errors.New("boom"), zapcore.ErrorLevel, "Unpin failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			inner := mocks.NewService(t)
			inner.EXPECT().Unpin(mock.Anything, mock.Anything).Return(&pin.UnpinResult{Success: true}, tt.err)

			_, _ = NewLog(inner, zap.New(core)).Unpin(context.Background(), &pin.UnpinRequest{CID: testCID})

			entries := logs.FilterMessage(tt.msg).All()
			require.Len(t, entries, 1)
			require.Equal(t, tt.level, entries[0].Level)
			require.Equal(t, serviceName, entries[0].ContextMap()["service"])
		})
	}
}
