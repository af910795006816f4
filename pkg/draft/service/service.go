package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/auth"
	"github.com/chainsafe/nft-launchpad-api/pkg/draft"
	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
)

// Store is the narrow data-access interface for the draft service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	SaveDraft(ctx context.Context, d *draft.Draft) (*draft.Draft, error)
	GetDraft(ctx context.Context, walletAddress string) (*draft.Draft, error)
	DraftExists(ctx context.Context, walletAddress string) (bool, error)
	DeleteDraft(ctx context.Context, walletAddress string) error
	UpsertChunk(ctx context.Context, c *draft.Chunk) error
	ListChunkIndexes(ctx context.Context, draftID uuid.UUID, fileIndex int) ([]int, error)
}

// Service defines the draft persistence operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Save(ctx context.Context, req *draft.SaveRequest) (*draft.Draft, error)
	Get(ctx context.Context, walletAddress string) (*draft.Draft, error)
	Exists(ctx context.Context, walletAddress string) (bool, error)
	Delete(ctx context.Context, walletAddress string) error
	UploadChunk(ctx context.Context, req *draft.ChunkUploadRequest) error
	ListChunks(ctx context.Context, draftID string, fileIndex int) (*draft.ChunkList, error)
}

type draftService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new draft service
func NewService(store Store, logger *zap.Logger) Service {
	return &draftService{
		store:  store,
		logger: logger,
	}
}

// Save replaces the wallet's draft with the submitted snapshot.
func (s *draftService) Save(ctx context.Context, req *draft.SaveRequest) (*draft.Draft, error) {
	wallet, err := walletKey(req.WalletAddress)
	if err != nil {
		return nil, err
	}
	if req.ImagesCID, err = ipfs.NormalizeCID(req.ImagesCID); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid cid")
	}
	if req.MetadataCID, err = ipfs.NormalizeCID(req.MetadataCID); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid cid")
	}

	saved, err := s.store.SaveDraft(ctx, req.ToDraft(wallet))
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}
	return saved, nil
}

// Get returns the wallet's draft, or nil when it has none.
func (s *draftService) Get(ctx context.Context, walletAddress string) (*draft.Draft, error) {
	wallet, err := walletKey(walletAddress)
	if err != nil {
		return nil, err
	}

	d, err := s.store.GetDraft(ctx, wallet)
	if err != nil {
		if errors.Is(err, draft.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.UpstreamError(err, "")
	}
	return d, nil
}

func (s *draftService) Exists(ctx context.Context, walletAddress string) (bool, error) {
	wallet, err := walletKey(walletAddress)
	if err != nil {
		return false, err
	}

	exists, err := s.store.DraftExists(ctx, wallet)
	if err != nil {
		return false, apperrors.UpstreamError(err, "")
	}
	return exists, nil
}

func (s *draftService) Delete(ctx context.Context, walletAddress string) error {
	wallet, err := walletKey(walletAddress)
	if err != nil {
		return err
	}

	if err := s.store.DeleteDraft(ctx, wallet); err != nil {
		return apperrors.UpstreamError(err, "")
	}
	return nil
}

// UploadChunk stores one chunk. Uploading the same (draft, file, chunk)
// triple again overwrites the stored data.
func (s *draftService) UploadChunk(ctx context.Context, req *draft.ChunkUploadRequest) error {
	id, err := parseDraftID(req.DraftID)
	if err != nil {
		return err
	}
	if req.FileIndex == nil || req.ChunkIndex == nil {
		return apperrors.BadRequestError(nil, "fileIndex and chunkIndex are required")
	}

	err = s.store.UpsertChunk(ctx, &draft.Chunk{
		DraftID:    id,
		FileIndex:  *req.FileIndex,
		ChunkIndex: *req.ChunkIndex,
		Data:       req.ChunkData,
	})
	if err != nil {
		if errors.Is(err, draft.ErrChunkDraftNotFound) {
			return apperrors.ResourceNotFoundError(err, "draft not found")
		}
		return apperrors.UpstreamError(err, "")
	}
	return nil
}

// ListChunks reports the chunk indexes stored for one file so an interrupted
// upload can resume.
func (s *draftService) ListChunks(ctx context.Context, draftID string, fileIndex int) (*draft.ChunkList, error) {
	id, err := parseDraftID(draftID)
	if err != nil {
		return nil, err
	}
	if fileIndex < 0 {
		return nil, apperrors.BadRequestError(nil, "fileIndex is invalid")
	}

	indexes, err := s.store.ListChunkIndexes(ctx, id, fileIndex)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}
	return &draft.ChunkList{DraftID: id.String(), FileIndex: fileIndex, Chunks: indexes}, nil
}

// walletKey validates a wallet address and returns its storage key.
func walletKey(address string) (string, error) {
	if address == "" {
		return "", apperrors.BadRequestError(nil, "wallet is required")
	}
	if !auth.ValidateEVMAddress(address) {
		return "", apperrors.BadRequestError(fmt.Errorf("invalid wallet address %q", address), "wallet is invalid")
	}
	return auth.NormalizeAddress(address), nil
}

func parseDraftID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, apperrors.BadRequestError(nil, "draftId is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.BadRequestError(err, "draftId is invalid")
	}
	return id, nil
}
