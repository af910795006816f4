package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/pin"
)

const serviceName = "PinService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the pin Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		fields = append(fields, zap.Error(err))
		if apperrors.IsInternalError(err) {
			ls.logger.Error(method+" failed", fields...)
			return
		}
		ls.logger.Warn(method+" rejected", fields...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

func (ls *logService) Track(ctx context.Context, req *pin.TrackRequest) (t *pin.Tracking, err error) {
	start := time.Now()
	defer func() {
		ls.done("Track", start, err,
			zap.String("wallet", req.WalletAddress),
			zap.String("collection", req.CollectionAddress),
			zap.String("images_cid", req.ImagesCID),
			zap.String("metadata_cid", req.MetadataCID),
		)
	}()
	return ls.svc.Track(ctx, req)
}

func (ls *logService) Update(ctx context.Context, req *pin.UpdateRequest) (t *pin.Tracking, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("wallet", req.WalletAddress),
			zap.String("collection", req.CollectionAddress),
		}
		if t != nil {
			fields = append(fields, zap.Int64("tracking_id", t.ID))
		}
		ls.done("Update", start, err, fields...)
	}()
	return ls.svc.Update(ctx, req)
}

func (ls *logService) Unpin(ctx context.Context, req *pin.UnpinRequest) (res *pin.UnpinResult, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("cid", req.CID), zap.String("wallet", req.WalletAddress)}
		if res != nil {
			fields = append(fields, zap.Bool("already_unpinned", res.AlreadyUnpinned))
		}
		ls.done("Unpin", start, err, fields...)
	}()
	return ls.svc.Unpin(ctx, req)
}

func (ls *logService) ListPins(ctx context.Context, walletAddress, nameFilter string) (res *pin.ListResult, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("wallet", walletAddress), zap.String("name_filter", nameFilter)}
		if res != nil {
			fields = append(fields, zap.Int("pins", len(res.Pins)), zap.Int("tracked", len(res.Tracked)))
		}
		ls.done("ListPins", start, err, fields...)
	}()
	return ls.svc.ListPins(ctx, walletAddress, nameFilter)
}
