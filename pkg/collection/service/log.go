package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/collection"
)

const serviceName = "CollectionService"

// logService wraps Service with automatic logging of all method calls.
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the collection Service.
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

func (ls *logService) GetAvatar(ctx context.Context, collectionAddress string) (avatar *string, err error) {
	start := time.Now()
	defer func() {
		ls.done("GetAvatar", start, err, zap.String("collection", collectionAddress), zap.Bool("found", avatar != nil))
	}()
	return ls.svc.GetAvatar(ctx, collectionAddress)
}

func (ls *logService) SetAvatar(ctx context.Context, req *collection.SetAvatarRequest) (a *collection.Avatar, err error) {
	start := time.Now()
	defer func() {
		ls.done("SetAvatar", start, err,
			zap.String("collection", req.CollectionAddress),
			zap.Bool("from_cid", req.AvatarURL == "" && req.IPFSCID != ""),
		)
	}()
	return ls.svc.SetAvatar(ctx, req)
}

func (ls *logService) CollectionImage(ctx context.Context, address, network string) (img *collection.Image, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("collection", address), zap.String("network", network)}
		if img != nil {
			fields = append(fields, zap.String("source", img.Source))
		}
		ls.done("CollectionImage", start, err, fields...)
	}()
	return ls.svc.CollectionImage(ctx, address, network)
}

func (ls *logService) RegisterContract(ctx context.Context, req *collection.RegisterContractRequest) (c *collection.Contract, err error) {
	start := time.Now()
	defer func() {
		ls.done("RegisterContract", start, err,
			zap.String("wallet", req.WalletAddress),
			zap.String("contract", req.ContractAddress),
			zap.Stringer("mint_price", req.MintPrice),
		)
	}()
	return ls.svc.RegisterContract(ctx, req)
}

func (ls *logService) UpdateCID(ctx context.Context, req *collection.UpdateCIDRequest) (res *collection.UpdateCIDResult, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("wallet", req.WalletAddress),
			zap.String("contract", req.ContractAddress),
		}
		if res != nil {
			fields = append(fields,
				zap.Bool("draft_updated", res.Updated.Draft),
				zap.Bool("tracking_updated", res.Updated.Tracking),
				zap.Strings("failed", res.Failed),
			)
		}
		ls.done("UpdateCID", start, err, fields...)
	}()
	return ls.svc.UpdateCID(ctx, req)
}

func (ls *logService) FeaturedArtists(ctx context.Context) (res *collection.Featured, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{}
		if res != nil {
			fields = append(fields,
				zap.Int("artists", len(res.PermissionList)),
				zap.Int("creations", len(res.Creations)),
			)
		}
		ls.done("FeaturedArtists", start, err, fields...)
	}()
	return ls.svc.FeaturedArtists(ctx)
}
