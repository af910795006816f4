package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/handle"
	"github.com/chainsafe/nft-launchpad-api/pkg/privy"
)

var (
	ErrHandleRequired = errors.New("handle is required")
	ErrHandleNotFound = errors.New("no wallet found for handle")
)

// Store is the narrow profile lookup interface used by the resolution strategies.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	FindByHandleOrUsername(ctx context.Context, h string) (*handle.Profile, error)
	FindByHandle(ctx context.Context, h string) (*handle.Profile, error)
	FindContaining(ctx context.Context, h string) (*handle.Profile, error)
}

// Directory searches the wallet provider's user directory.
//
//go:generate mockery --name Directory --output mocks --outpkg mocks --filename mock_directory.go --with-expecter
type Directory interface {
	SearchUsers(ctx context.Context, term string) ([]privy.User, error)
}

// Service resolves social handles to wallet addresses.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Resolve(ctx context.Context, rawHandle string) (*handle.Resolution, error)
	LookupDirectory(ctx context.Context, rawHandle string) (*handle.DirectoryEntry, error)
}

type handleService struct {
	store      Store
	directory  Directory
	strategies []Strategy
	logger     *zap.Logger
}

// NewService creates a handle service running the default strategy chain.
func NewService(store Store, directory Directory, logger *zap.Logger) Service {
	return NewServiceWithStrategies(store, directory, DefaultStrategies(), logger)
}

// NewServiceWithStrategies creates a handle service with a custom strategy chain.
func NewServiceWithStrategies(store Store, directory Directory, strategies []Strategy, logger *zap.Logger) Service {
	return &handleService{
		store:      store,
		directory:  directory,
		strategies: strategies,
		logger:     logger,
	}
}

// Resolve tries each strategy in order and stops at the first row found.
// A row without a wallet address ends the search as not found.
func (s *handleService) Resolve(ctx context.Context, rawHandle string) (*handle.Resolution, error) {
	h := handle.Normalize(rawHandle)
	if h == "" {
		return nil, apperrors.BadRequestError(ErrHandleRequired, "handle is required")
	}

	for _, st := range s.strategies {
		p, err := st.Find(ctx, s.store, h)
		if err != nil {
			return nil, apperrors.UpstreamError(fmt.Errorf("%s lookup: %w", st.Name, err), "")
		}
		if p == nil {
			continue
		}
		if p.WalletAddress == "" {
			s.logger.Debug("Profile matched without wallet",
				zap.String("handle", h),
				zap.String("strategy", st.Name),
				zap.Int64("profile_id", p.ID))
			return nil, notFound(h)
		}
		return &handle.Resolution{
			Address:   p.WalletAddress,
			Handle:    h,
			Searched:  h,
			MatchedBy: st.Name,
		}, nil
	}

	return nil, notFound(h)
}

// LookupDirectory resolves a handle through the provider's user search. The
// search is fuzzy, so the linked X username must match exactly.
func (s *handleService) LookupDirectory(ctx context.Context, rawHandle string) (*handle.DirectoryEntry, error) {
	h := handle.Normalize(rawHandle)
	if h == "" {
		return nil, apperrors.BadRequestError(ErrHandleRequired, "handle is required")
	}

	users, err := s.directory.SearchUsers(ctx, h)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}

	for i := range users {
		u := &users[i]
		if !u.HasTwitterHandle(h) {
			continue
		}
		wallet, ok := u.EmbeddedWallet()
		if !ok {
			continue
		}
		tw, _ := u.TwitterAccount()
		displayName := tw.Name
		if displayName == "" {
			displayName = tw.Username
		}
		return &handle.DirectoryEntry{
			Handle:      h,
			Address:     wallet.Address,
			DisplayName: displayName,
		}, nil
	}

	return nil, notFound(h)
}

func notFound(h string) error {
	return apperrors.WithDetails(
		apperrors.ResourceNotFoundError(ErrHandleNotFound, "no wallet found for handle"),
		map[string]any{"searched": h},
	)
}
