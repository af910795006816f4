package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/draft"
)

const serviceName = "DraftService"

// logService wraps Service with automatic logging of all method calls.
// Chunk payloads are never logged, only their size.
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the draft Service.
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

func (ls *logService) Save(ctx context.Context, req *draft.SaveRequest) (d *draft.Draft, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("wallet", req.WalletAddress),
			zap.Int("current_step", req.CurrentStep),
			zap.Int("staged_files", len(req.StagedFiles)),
		}
		if d != nil {
			fields = append(fields, zap.Stringer("draft_id", d.ID))
		}
		ls.done("Save", start, err, fields...)
	}()
	return ls.svc.Save(ctx, req)
}

func (ls *logService) Get(ctx context.Context, walletAddress string) (d *draft.Draft, err error) {
	start := time.Now()
	defer func() {
		ls.done("Get", start, err, zap.String("wallet", walletAddress), zap.Bool("found", d != nil))
	}()
	return ls.svc.Get(ctx, walletAddress)
}

func (ls *logService) Exists(ctx context.Context, walletAddress string) (exists bool, err error) {
	start := time.Now()
	defer func() {
		ls.done("Exists", start, err, zap.String("wallet", walletAddress), zap.Bool("exists", exists))
	}()
	return ls.svc.Exists(ctx, walletAddress)
}

func (ls *logService) Delete(ctx context.Context, walletAddress string) (err error) {
	start := time.Now()
	defer func() {
		ls.done("Delete", start, err, zap.String("wallet", walletAddress))
	}()
	return ls.svc.Delete(ctx, walletAddress)
}

func (ls *logService) UploadChunk(ctx context.Context, req *draft.ChunkUploadRequest) (err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("draft_id", req.DraftID),
			zap.Int("chunk_bytes", len(req.ChunkData)),
		}
		if req.FileIndex != nil {
			fields = append(fields, zap.Int("file_index", *req.FileIndex))
		}
		if req.ChunkIndex != nil {
			fields = append(fields, zap.Int("chunk_index", *req.ChunkIndex))
		}
		ls.done("UploadChunk", start, err, fields...)
	}()
	return ls.svc.UploadChunk(ctx, req)
}

func (ls *logService) ListChunks(ctx context.Context, draftID string, fileIndex int) (list *draft.ChunkList, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("draft_id", draftID), zap.Int("file_index", fileIndex)}
		if list != nil {
			fields = append(fields, zap.Int("chunks", len(list.Chunks)))
		}
		ls.done("ListChunks", start, err, fields...)
	}()
	return ls.svc.ListChunks(ctx, draftID, fileIndex)
}
