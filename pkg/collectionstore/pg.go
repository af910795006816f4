// Package collectionstore persists collection avatars, contract records and
// artist permissions in PostgreSQL.
package collectionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/nft-launchpad-api/pkg/collection"
	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
)

const sqlStateUniqueViolation = "23505"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the collection store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// GetAvatar returns the avatar for the collection, or nil if none is stored.
func (s *pgStore) GetAvatar(ctx context.Context, collectionAddress string) (*collection.Avatar, error) {
	dao := new(AvatarDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("collection_address = ?", collectionAddress).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get avatar: %w", err)
	}
	return toAvatar(dao), nil
}

// UpsertAvatar stores the avatar, replacing any previous one.
func (s *pgStore) UpsertAvatar(ctx context.Context, a *collection.Avatar) (*collection.Avatar, error) {
	dao := toAvatarDao(a)
	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (collection_address) DO UPDATE").
		Set("avatar_url = EXCLUDED.avatar_url").
		Set("ipfs_cid = EXCLUDED.ipfs_cid").
		Set("creator_wallet = EXCLUDED.creator_wallet").
		Set("updated_at = NOW()").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert avatar: %w", err)
	}
	return toAvatar(dao), nil
}

// CreateContract records a deployed collection contract.
func (s *pgStore) CreateContract(ctx context.Context, c *collection.Contract) (*collection.Contract, error) {
	dao := toContractDao(c)
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == sqlStateUniqueViolation {
			return nil, collection.ErrContractExists
		}
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}
	return toContract(dao), nil
}

// UpdateContractCIDs applies upd to the contract owned by walletAddress.
// It reports false when no such contract exists.
func (s *pgStore) UpdateContractCIDs(
	ctx context.Context,
	walletAddress string,
	contractAddress string,
	upd ipfs.CIDUpdate,
) (bool, error) {
	if upd.IsEmpty() {
		return false, nil
	}

	q := s.db.NewUpdate().
		Model((*ContractDao)(nil)).
		Where("contract_address = ?", contractAddress).
		Where("creator_wallet = ?", walletAddress).
		Set("updated_at = NOW()")
	for col, val := range upd.Columns() {
		q = q.Set("? = ?", bun.Ident(col), val)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update contract cids: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// UpsertArtist creates or replaces a permission list row.
func (s *pgStore) UpsertArtist(ctx context.Context, a *collection.Artist) (*collection.Artist, error) {
	dao := toArtistDao(a)
	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (wallet_address) DO UPDATE").
		Set("x_handle = EXCLUDED.x_handle").
		Set("display_name = EXCLUDED.display_name").
		Set("featured = EXCLUDED.featured").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert artist: %w", err)
	}
	return toArtist(dao), nil
}

// ListFeaturedArtists returns permission list rows flagged as featured, oldest first.
func (s *pgStore) ListFeaturedArtists(ctx context.Context) ([]*collection.Artist, error) {
	var daos []ArtistDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("featured = TRUE").
		OrderExpr("created_at ASC, wallet_address ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured artists: %w", err)
	}

	out := make([]*collection.Artist, len(daos))
	for i := range daos {
		out[i] = toArtist(&daos[i])
	}
	return out, nil
}

// ListContractsByCreators returns contracts created by any of the wallets,
// newest first, capped at limit.
func (s *pgStore) ListContractsByCreators(ctx context.Context, wallets []string, limit int) ([]*collection.Contract, error) {
	if len(wallets) == 0 {
		return []*collection.Contract{}, nil
	}

	var daos []ContractDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("creator_wallet IN (?)", bun.In(wallets)).
		OrderExpr("created_at DESC, contract_address ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	out := make([]*collection.Contract, len(daos))
	for i := range daos {
		out[i] = toContract(&daos[i])
	}
	return out, nil
}
