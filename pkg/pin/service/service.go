package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/app/sideeffect"
	"github.com/chainsafe/nft-launchpad-api/pkg/auth"
	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
	"github.com/chainsafe/nft-launchpad-api/pkg/pin"
	"github.com/chainsafe/nft-launchpad-api/pkg/pinata"
)

// Store is the narrow data-access interface for pin tracking.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateTracking(ctx context.Context, t *pin.Tracking) (*pin.Tracking, error)
	UpdateLatestTracking(ctx context.Context, walletAddress, collectionAddress string, upd ipfs.CIDUpdate) (*pin.Tracking, error)
	MarkUnpinned(ctx context.Context, cid, walletAddress string) (int64, error)
	ListActive(ctx context.Context, walletAddress string) ([]*pin.Tracking, error)
}

// Pinner is the pin service API.
//
//go:generate mockery --name Pinner --output mocks --outpkg mocks --filename mock_pinner.go --with-expecter
type Pinner interface {
	Unpin(ctx context.Context, cid string) error
	PinList(ctx context.Context, nameFilter string) (*pinata.PinList, error)
}

// Service defines pin tracking operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Track(ctx context.Context, req *pin.TrackRequest) (*pin.Tracking, error)
	Update(ctx context.Context, req *pin.UpdateRequest) (*pin.Tracking, error)
	Unpin(ctx context.Context, req *pin.UnpinRequest) (*pin.UnpinResult, error)
	ListPins(ctx context.Context, walletAddress, nameFilter string) (*pin.ListResult, error)
}

type pinService struct {
	store  Store
	pinner Pinner
	logger *zap.Logger
}

// NewService creates a new pin tracking service
func NewService(store Store, pinner Pinner, logger *zap.Logger) Service {
	return &pinService{
		store:  store,
		pinner: pinner,
		logger: logger,
	}
}

// Track inserts a new active tracking row.
func (s *pinService) Track(ctx context.Context, req *pin.TrackRequest) (*pin.Tracking, error) {
	wallet, err := address("wallet", req.WalletAddress)
	if err != nil {
		return nil, err
	}
	var collection string
	if req.CollectionAddress != "" {
		if collection, err = address("collectionAddress", req.CollectionAddress); err != nil {
			return nil, err
		}
	}
	imagesCID, err := ipfs.NormalizeCID(req.ImagesCID)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid cid")
	}
	metadataCID, err := ipfs.NormalizeCID(req.MetadataCID)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid cid")
	}
	if imagesCID == "" && metadataCID == "" {
		return nil, apperrors.BadRequestError(nil, "imagesCid or metadataCid is required")
	}

	t, err := s.store.CreateTracking(ctx, &pin.Tracking{
		WalletAddress:     wallet,
		CollectionAddress: collection,
		ImagesCID:         imagesCID,
		MetadataCID:       metadataCID,
		BaseURI:           req.BaseURI,
		Status:            pin.StatusActive,
	})
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}
	return t, nil
}

// Update corrects the CIDs of the most recent row for the wallet and collection.
func (s *pinService) Update(ctx context.Context, req *pin.UpdateRequest) (*pin.Tracking, error) {
	wallet, err := address("wallet", req.WalletAddress)
	if err != nil {
		return nil, err
	}
	collection, err := address("collectionAddress", req.CollectionAddress)
	if err != nil {
		return nil, err
	}
	upd := req.CIDUpdate()
	if upd.IsEmpty() {
		return nil, apperrors.BadRequestError(nil, "newImagesCid, newMetadataCid or newBaseUri is required")
	}
	if upd, err = upd.Normalize(); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid cid")
	}

	t, err := s.store.UpdateLatestTracking(ctx, wallet, collection, upd)
	if err != nil {
		if errors.Is(err, pin.ErrTrackingNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "tracking record not found")
		}
		return nil, apperrors.UpstreamError(err, "")
	}
	return t, nil
}

// Unpin releases the CID at the pin service. A CID that is not pinned counts
// as success. Retiring the matching tracking rows is best-effort.
func (s *pinService) Unpin(ctx context.Context, req *pin.UnpinRequest) (*pin.UnpinResult, error) {
	cid := strings.TrimSpace(req.CID)
	if err := ipfs.ValidateCID(cid); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid cid")
	}
	var wallet string
	if req.WalletAddress != "" {
		var err error
		if wallet, err = address("wallet", req.WalletAddress); err != nil {
			return nil, err
		}
	}

	res := &pin.UnpinResult{Success: true, CID: cid}
	if err := s.pinner.Unpin(ctx, cid); err != nil {
		if !errors.Is(err, pinata.ErrNotPinned) {
			return nil, apperrors.UpstreamError(err, "")
		}
		res.AlreadyUnpinned = true
	}

	sideeffect.Run(ctx, s.logger, "mark_tracking_unpinned", func(ctx context.Context) error {
		n, err := s.store.MarkUnpinned(ctx, cid, wallet)
		if err == nil {
			s.logger.Debug("Tracking rows retired", zap.String("cid", cid), zap.Int64("rows", n))
		}
		return err
	}, zap.String("cid", cid), zap.String("wallet", wallet))

	return res, nil
}

// ListPins returns the provider's pinned set and, when a wallet is given,
// that wallet's active tracking rows.
func (s *pinService) ListPins(ctx context.Context, walletAddress, nameFilter string) (*pin.ListResult, error) {
	var wallet string
	if walletAddress != "" {
		var err error
		if wallet, err = address("wallet", walletAddress); err != nil {
			return nil, err
		}
	}

	list, err := s.pinner.PinList(ctx, nameFilter)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}

	res := &pin.ListResult{
		Pins:    list.Rows,
		Count:   list.Count,
		Tracked: []*pin.Tracking{},
	}
	if wallet == "" {
		return res, nil
	}

	tracked, err := s.store.ListActive(ctx, wallet)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}
	if tracked != nil {
		res.Tracked = tracked
	}
	return res, nil
}

// address validates an EVM address field and returns its storage key.
func address(field, value string) (string, error) {
	if value == "" {
		return "", apperrors.BadRequestError(nil, field+" is required")
	}
	if !auth.ValidateEVMAddress(value) {
		return "", apperrors.BadRequestError(fmt.Errorf("invalid address %q", value), field+" is invalid")
	}
	return auth.NormalizeAddress(value), nil
}
