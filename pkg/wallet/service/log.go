package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/wallet"
)

const serviceName = "WalletService"

// logService wraps Service with automatic logging of all method calls.
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the wallet Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Provision(ctx context.Context, userID string) (res *wallet.Provisioned, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Provision"),
			zap.String("user_id", userID),
			zap.Duration("duration", time.Since(start)),
		}
		if res != nil {
			fields = append(fields, zap.String("wallet", res.Wallet), zap.Bool("existing", res.Existing))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
			if apperrors.IsInternalError(err) {
				ls.logger.Error("Provision failed", fields...)
				return
			}
			ls.logger.Warn("Provision rejected", fields...)
			return
		}
		ls.logger.Info("Provision completed", fields...)
	}()
	return ls.svc.Provision(ctx, userID)
}
