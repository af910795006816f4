package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/privy"
	"github.com/chainsafe/nft-launchpad-api/pkg/wallet"
)

// idempotencyNamespace scopes idempotency keys derived from user ids.
var idempotencyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://launchpad/wallet-create"))

// Provider is the wallet-custody API.
//
//go:generate mockery --name Provider --output mocks --outpkg mocks --filename mock_provider.go --with-expecter
type Provider interface {
	GetUser(ctx context.Context, userID string) (*privy.User, error)
	CreateWallet(ctx context.Context, userID, idempotencyKey string) (*privy.Wallet, error)
}

// Service defines wallet provisioning operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Provision(ctx context.Context, userID string) (*wallet.Provisioned, error)
}

type walletService struct {
	provider Provider
	logger   *zap.Logger
}

// NewService creates a new wallet provisioning service
func NewService(provider Provider, logger *zap.Logger) Service {
	return &walletService{
		provider: provider,
		logger:   logger,
	}
}

// Provision returns the user's embedded wallet, creating one when none is
// linked. Concurrent first calls for the same user share an idempotency key
// so the provider creates a single wallet.
func (s *walletService) Provision(ctx context.Context, userID string) (*wallet.Provisioned, error) {
	if userID == "" {
		return nil, apperrors.UnAuthorizedError(nil, "missing user identity")
	}

	user, err := s.provider.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, privy.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		}
		return nil, apperrors.UpstreamError(err, "")
	}

	if acc, ok := user.EmbeddedWallet(); ok {
		return &wallet.Provisioned{
			Success:  true,
			Wallet:   acc.Address,
			WalletID: acc.WalletID,
			Existing: true,
		}, nil
	}

	w, err := s.provider.CreateWallet(ctx, userID, IdempotencyKey(userID))
	if err != nil {
		return nil, apperrors.UpstreamError(err, "")
	}
	s.logger.Info("Wallet created", zap.String("user_id", userID), zap.String("wallet", w.Address))

	return &wallet.Provisioned{
		Success:  true,
		Wallet:   w.Address,
		WalletID: w.ID,
		Existing: false,
	}, nil
}

// IdempotencyKey derives the wallet creation key for a user. It is stable
// across calls and processes.
func IdempotencyKey(userID string) string {
	return uuid.NewSHA1(idempotencyNamespace, []byte(userID)).String()
}
