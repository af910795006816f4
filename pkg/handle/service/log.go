package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/nft-launchpad-api/pkg/handle"
)

const serviceName = "HandleService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the handle Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Resolve(ctx context.Context, rawHandle string) (res *handle.Resolution, err error) {
	start := time.Now()
	ls.logger.Debug("Resolve started",
		zap.String("service", serviceName),
		zap.String("method", "Resolve"),
		zap.String("handle", rawHandle),
	)

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Resolve"),
			zap.String("handle", rawHandle),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Warn("Resolve failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("Resolve completed", append(fields,
			zap.String("address", res.Address),
			zap.String("matched_by", res.MatchedBy),
		)...)
	}()

	return ls.svc.Resolve(ctx, rawHandle)
}

func (ls *logService) LookupDirectory(ctx context.Context, rawHandle string) (entry *handle.DirectoryEntry, err error) {
	start := time.Now()
	ls.logger.Debug("LookupDirectory started",
		zap.String("service", serviceName),
		zap.String("method", "LookupDirectory"),
		zap.String("handle", rawHandle),
	)

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "LookupDirectory"),
			zap.String("handle", rawHandle),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Warn("LookupDirectory failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("LookupDirectory completed", append(fields, zap.String("address", entry.Address))...)
	}()

	return ls.svc.LookupDirectory(ctx, rawHandle)
}
