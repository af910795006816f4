// Package pinstore persists IPFS pin tracking rows in PostgreSQL.
package pinstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
	"github.com/chainsafe/nft-launchpad-api/pkg/pin"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the pin tracking store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// CreateTracking always inserts; several rows per wallet and collection are expected.
func (s *pgStore) CreateTracking(ctx context.Context, t *pin.Tracking) (*pin.Tracking, error) {
	dao := toTrackingDao(t)
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracking: %w", err)
	}
	return toTracking(dao), nil
}

// UpdateLatestTracking applies upd to the most recent row for the wallet and
// collection and returns the updated row.
func (s *pgStore) UpdateLatestTracking(
	ctx context.Context,
	walletAddress string,
	collectionAddress string,
	upd ipfs.CIDUpdate,
) (*pin.Tracking, error) {
	latest := s.db.NewSelect().
		TableExpr("collection_ipfs_tracking").
		Column("id").
		Where("wallet_address = ?", walletAddress).
		Where("collection_address = ?", collectionAddress).
		OrderExpr("created_at DESC, id DESC").
		Limit(1)

	dao := new(TrackingDao)
	q := s.db.NewUpdate().
		Model(dao).
		Where("cit.id = (?)", latest).
		Set("updated_at = NOW()")
	for col, val := range upd.Columns() {
		q = q.Set("? = ?", bun.Ident(col), val)
	}

	res, err := q.Returning("*").Exec(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pin.ErrTrackingNotFound
		}
		return nil, fmt.Errorf("failed to update tracking: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, pin.ErrTrackingNotFound
	}
	return toTracking(dao), nil
}

// MarkUnpinned flips every row referencing cid as images or metadata CID to
// unpinned. An empty walletAddress matches rows of any wallet.
func (s *pgStore) MarkUnpinned(ctx context.Context, cid, walletAddress string) (int64, error) {
	q := s.db.NewUpdate().
		Model((*TrackingDao)(nil)).
		Set("status = ?", string(pin.StatusUnpinned)).
		Set("updated_at = NOW()").
		WhereGroup(" AND ", func(q *bun.UpdateQuery) *bun.UpdateQuery {
			return q.Where("images_cid = ?", cid).WhereOr("metadata_cid = ?", cid)
		})
	if walletAddress != "" {
		q = q.Where("wallet_address = ?", walletAddress)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark tracking unpinned: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// ListActive returns the wallet's active rows, newest first.
func (s *pgStore) ListActive(ctx context.Context, walletAddress string) ([]*pin.Tracking, error) {
	var daos []TrackingDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("wallet_address = ?", walletAddress).
		Where("status = ?", string(pin.StatusActive)).
		OrderExpr("created_at DESC, id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking: %w", err)
	}

	out := make([]*pin.Tracking, len(daos))
	for i := range daos {
		out[i] = toTracking(&daos[i])
	}
	return out, nil
}
