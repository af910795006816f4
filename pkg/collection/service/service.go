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
	"github.com/chainsafe/nft-launchpad-api/pkg/collection"
	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
	"github.com/chainsafe/nft-launchpad-api/pkg/pin"
	"github.com/chainsafe/nft-launchpad-api/pkg/zapper"
)

// Store is the narrow data-access interface for collection metadata.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetAvatar(ctx context.Context, collectionAddress string) (*collection.Avatar, error)
	UpsertAvatar(ctx context.Context, a *collection.Avatar) (*collection.Avatar, error)
	CreateContract(ctx context.Context, c *collection.Contract) (*collection.Contract, error)
	UpdateContractCIDs(ctx context.Context, walletAddress, contractAddress string, upd ipfs.CIDUpdate) (bool, error)
	ListFeaturedArtists(ctx context.Context) ([]*collection.Artist, error)
	ListContractsByCreators(ctx context.Context, wallets []string, limit int) ([]*collection.Contract, error)
}

// DraftUpdater mirrors CID changes onto the wallet's launch draft.
//
//go:generate mockery --name DraftUpdater --output mocks --outpkg mocks --filename mock_draft_updater.go --with-expecter
type DraftUpdater interface {
	UpdateDraftCIDs(ctx context.Context, walletAddress string, upd ipfs.CIDUpdate) (bool, error)
}

// TrackingUpdater mirrors CID changes onto the latest pin tracking row.
//
//go:generate mockery --name TrackingUpdater --output mocks --outpkg mocks --filename mock_tracking_updater.go --with-expecter
type TrackingUpdater interface {
	UpdateLatestTracking(ctx context.Context, walletAddress, collectionAddress string, upd ipfs.CIDUpdate) (*pin.Tracking, error)
}

// ImageSource looks up collection images in the portfolio API.
//
//go:generate mockery --name ImageSource --output mocks --outpkg mocks --filename mock_image_source.go --with-expecter
type ImageSource interface {
	CollectionImage(ctx context.Context, address, network string) (*zapper.CollectionImage, error)
}

// Service defines collection metadata operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetAvatar(ctx context.Context, collectionAddress string) (*string, error)
	SetAvatar(ctx context.Context, req *collection.SetAvatarRequest) (*collection.Avatar, error)
	CollectionImage(ctx context.Context, address, network string) (*collection.Image, error)
	RegisterContract(ctx context.Context, req *collection.RegisterContractRequest) (*collection.Contract, error)
	UpdateCID(ctx context.Context, req *collection.UpdateCIDRequest) (*collection.UpdateCIDResult, error)
	FeaturedArtists(ctx context.Context) (*collection.Featured, error)
}

// Config holds the collection service settings.
type Config struct {
	// GatewayURL prefixes CIDs when building avatar URLs.
	GatewayURL string
	// CreationsLimit caps the contracts returned with the featured artists.
	CreationsLimit int
}

type collectionService struct {
	store    Store
	drafts   DraftUpdater
	tracking TrackingUpdater
	images   ImageSource
	cfg      Config
	logger   *zap.Logger
}

// NewService creates a new collection metadata service
func NewService(
	store Store,
	drafts DraftUpdater,
	tracking TrackingUpdater,
	images ImageSource,
	cfg Config,
	logger *zap.Logger,
) Service {
	if cfg.CreationsLimit <= 0 {
		cfg.CreationsLimit = 50
	}
	return &collectionService{
		store:    store,
		drafts:   drafts,
		tracking: tracking,
		images:   images,
		cfg:      cfg,
		logger:   logger,
	}
}

// GetAvatar resolves the avatar URL. A stored URL wins over the gateway URL
// derived from a stored CID. Nil means no avatar is known.
func (s *collectionService) GetAvatar(ctx context.Context, collectionAddress string) (*string, error) {
	addr, err := address("address", collectionAddress)
	if err != nil {
		return nil, err
	}

	a, err := s.store.GetAvatar(ctx, addr)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}
	switch {
	case a == nil:
		return nil, nil
	case a.AvatarURL != "":
		return &a.AvatarURL, nil
	case a.IPFSCID != "":
		u := ipfs.GatewayURL(s.cfg.GatewayURL, a.IPFSCID)
		return &u, nil
	default:
		return nil, nil
	}
}

// SetAvatar upserts the avatar. A URL is synthesized from the CID at write
// time when none is given, and both are stored.
func (s *collectionService) SetAvatar(ctx context.Context, req *collection.SetAvatarRequest) (*collection.Avatar, error) {
	addr, err := address("collectionAddress", req.CollectionAddress)
	if err != nil {
		return nil, err
	}
	var creator string
	if req.CreatorWallet != "" {
		if creator, err = address("creatorWallet", req.CreatorWallet); err != nil {
			return nil, err
		}
	}
	avatarURL := strings.TrimSpace(req.AvatarURL)
	cid := strings.TrimSpace(req.IPFSCID)
	if avatarURL == "" && cid == "" {
		return nil, apperrors.BadRequestError(nil, "avatarUrl or ipfsCid is required")
	}
	if cid != "" {
		if err := ipfs.ValidateCID(cid); err != nil {
			return nil, apperrors.BadRequestError(err, "invalid cid")
		}
		if avatarURL == "" {
			avatarURL = ipfs.GatewayURL(s.cfg.GatewayURL, cid)
		}
	}

	a, err := s.store.UpsertAvatar(ctx, &collection.Avatar{
		CollectionAddress: addr,
		AvatarURL:         avatarURL,
		IPFSCID:           cid,
		CreatorWallet:     creator,
	})
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}
	return a, nil
}

// CollectionImage queries the portfolio API. It never reads or writes the
// avatar table.
func (s *collectionService) CollectionImage(ctx context.Context, collectionAddress, network string) (*collection.Image, error) {
	addr, err := address("address", collectionAddress)
	if err != nil {
		return nil, err
	}
	network = strings.ToLower(strings.TrimSpace(network))
	if network == "" {
		return nil, apperrors.BadRequestError(nil, "network is required")
	}

	img, err := s.images.CollectionImage(ctx, addr, network)
	if err != nil {
		if errors.Is(err, zapper.ErrUnsupportedNetwork) {
			return nil, apperrors.BadRequestError(err, "unsupported network: "+network)
		}
		return nil, apperrors.UpstreamError(err, "")
	}
	if img == nil {
		return nil, apperrors.WithDetails(
			apperrors.ResourceNotFoundError(nil, "no image found for collection"),
			map[string]any{"address": addr, "network": network},
		)
	}
	return &collection.Image{Success: true, Image: img.URL, Source: img.Source}, nil
}

// RegisterContract records a deployed contract so its CIDs can be corrected
// and it can appear among featured creations.
func (s *collectionService) RegisterContract(ctx context.Context, req *collection.RegisterContractRequest) (*collection.Contract, error) {
	wallet, err := address("wallet", req.WalletAddress)
	if err != nil {
		return nil, err
	}
	contract, err := address("contractAddress", req.ContractAddress)
	if err != nil {
		return nil, err
	}
	if req.MintPrice.IsNegative() {
		return nil, apperrors.BadRequestError(nil, "mintPrice must not be negative")
	}
	imagesCID, err := ipfs.NormalizeCID(req.ImagesCID)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid cid")
	}
	metadataCID, err := ipfs.NormalizeCID(req.MetadataCID)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid cid")
	}

	c, err := s.store.CreateContract(ctx, &collection.Contract{
		ContractAddress: contract,
		CreatorWallet:   wallet,
		Name:            strings.TrimSpace(req.Name),
		Symbol:          strings.TrimSpace(req.Symbol),
		Network:         strings.ToLower(strings.TrimSpace(req.Network)),
		ImagesCID:       imagesCID,
		MetadataCID:     metadataCID,
		BaseURI:         req.BaseURI,
		MintPrice:       req.MintPrice,
	})
	if err != nil {
		if errors.Is(err, collection.ErrContractExists) {
			return nil, apperrors.BadRequestError(err, "contract already registered")
		}
		return nil, apperrors.UpstreamError(err, "")
	}
	return c, nil
}

// UpdateCID rewrites the contract record, then mirrors the change onto the
// wallet's draft and latest tracking row. The mirrors are not transactional
// with the contract write; their failures are reported, not returned.
func (s *collectionService) UpdateCID(ctx context.Context, req *collection.UpdateCIDRequest) (*collection.UpdateCIDResult, error) {
	wallet, err := address("wallet", req.WalletAddress)
	if err != nil {
		return nil, err
	}
	contract, err := address("contractAddress", req.ContractAddress)
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

	ok, err := s.store.UpdateContractCIDs(ctx, wallet, contract, upd)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}
	if !ok {
		return nil, apperrors.WithDetails(
			apperrors.ResourceNotFoundError(collection.ErrContractNotFound, "contract not found for wallet"),
			map[string]any{"contractAddress": contract},
		)
	}

	res := &collection.UpdateCIDResult{
		Success: true,
		Updated: collection.UpdatedTargets{Contract: true},
		Failed:  []string{},
	}
	fields := []zap.Field{zap.String("wallet", wallet), zap.String("contract", contract)}

	draftRes := sideeffect.Run(ctx, s.logger, "update_draft_cids", func(ctx context.Context) error {
		updated, err := s.drafts.UpdateDraftCIDs(ctx, wallet, upd)
		res.Updated.Draft = updated
		return err
	}, fields...)
	if !draftRes.OK() {
		res.Failed = append(res.Failed, collection.TargetDraft)
	}

	trackingRes := sideeffect.Run(ctx, s.logger, "update_tracking_cids", func(ctx context.Context) error {
		_, err := s.tracking.UpdateLatestTracking(ctx, wallet, contract, upd)
		if errors.Is(err, pin.ErrTrackingNotFound) {
			return nil
		}
		res.Updated.Tracking = err == nil
		return err
	}, fields...)
	if !trackingRes.OK() {
		res.Failed = append(res.Failed, collection.TargetTracking)
	}

	res.Message = "CID updated"
	if len(res.Failed) > 0 {
		res.Message = fmt.Sprintf("CID updated on contract; failed to update %s", strings.Join(res.Failed, ", "))
	}
	return res, nil
}

// FeaturedArtists returns the featured permission list and the newest
// contracts those artists created.
func (s *collectionService) FeaturedArtists(ctx context.Context) (*collection.Featured, error) {
	artists, err := s.store.ListFeaturedArtists(ctx)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}

	wallets := make([]string, len(artists))
	for i, a := range artists {
		wallets[i] = a.WalletAddress
	}
	creations := []*collection.Contract{}
	if len(wallets) > 0 {
		if creations, err = s.store.ListContractsByCreators(ctx, wallets, s.cfg.CreationsLimit); err != nil {
			return nil, apperrors.UpstreamError(err, "")
		}
	}

	if artists == nil {
		artists = []*collection.Artist{}
	}
	if creations == nil {
		creations = []*collection.Contract{}
	}
	return &collection.Featured{
		Success:        true,
		PermissionList: artists,
		Creations:      creations,
	}, nil
}

// address validates an EVM address field and returns its storage key.
func address(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", apperrors.BadRequestError(nil, field+" is required")
	}
	if !auth.ValidateEVMAddress(value) {
		return "", apperrors.BadRequestError(fmt.Errorf("invalid address %q", value), field+" is invalid")
	}
	return auth.NormalizeAddress(value), nil
}
