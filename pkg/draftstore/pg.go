// Package draftstore persists launch drafts and their file chunks in PostgreSQL.
package draftstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/nft-launchpad-api/pkg/draft"
	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
)

const sqlStateForeignKeyViolation = "23503"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the draft store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// SaveDraft inserts or fully replaces the draft of d.WalletAddress.
// The row id and created_at survive replacement.
func (s *pgStore) SaveDraft(ctx context.Context, d *draft.Draft) (*draft.Draft, error) {
	dao := toDraftDao(d)
	if dao.ID == uuid.Nil {
		dao.ID = uuid.New()
	}

	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (wallet_address) DO UPDATE").
		Set("collection_name = EXCLUDED.collection_name").
		Set("description = EXCLUDED.description").
		Set("upload_mode = EXCLUDED.upload_mode").
		Set("launch_config = EXCLUDED.launch_config").
		Set("current_step = EXCLUDED.current_step").
		Set("staged_files = EXCLUDED.staged_files").
		Set("status = EXCLUDED.status").
		Set("images_cid = EXCLUDED.images_cid").
		Set("metadata_cid = EXCLUDED.metadata_cid").
		Set("base_uri = EXCLUDED.base_uri").
		Set("updated_at = NOW()").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return toDraft(dao), nil
}

func (s *pgStore) GetDraft(ctx context.Context, walletAddress string) (*draft.Draft, error) {
	dao := new(DraftDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("wallet_address = ?", walletAddress).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, draft.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return toDraft(dao), nil
}

func (s *pgStore) DraftExists(ctx context.Context, walletAddress string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*DraftDao)(nil)).
		Where("wallet_address = ?", walletAddress).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check draft exists: %w", err)
	}
	return exists, nil
}

// DeleteDraft removes the wallet's draft; its chunks go with it through the
// cascading foreign key. Deleting a missing draft is not an error.
func (s *pgStore) DeleteDraft(ctx context.Context, walletAddress string) error {
	_, err := s.db.NewDelete().
		Model((*DraftDao)(nil)).
		Where("wallet_address = ?", walletAddress).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// UpdateDraftCIDs sets the supplied IPFS fields on the wallet's draft and
// reports whether a draft was updated.
func (s *pgStore) UpdateDraftCIDs(ctx context.Context, walletAddress string, upd ipfs.CIDUpdate) (bool, error) {
	if upd.IsEmpty() {
		return false, nil
	}

	q := s.db.NewUpdate().
		Model((*DraftDao)(nil)).
		Where("wallet_address = ?", walletAddress).
		Set("updated_at = NOW()")
	for col, val := range upd.Columns() {
		q = q.Set("? = ?", bun.Ident(col), val)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update draft cids: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// UpsertChunk stores a chunk; re-uploading the same triple overwrites its data.
func (s *pgStore) UpsertChunk(ctx context.Context, c *draft.Chunk) error {
	_, err := s.db.NewInsert().
		Model(toChunkDao(c)).
		On("CONFLICT (draft_id, file_index, chunk_index) DO UPDATE").
		Set("chunk_data = EXCLUDED.chunk_data").
		Set("updated_at = NOW()").
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == sqlStateForeignKeyViolation {
			return draft.ErrChunkDraftNotFound
		}
		return fmt.Errorf("failed to upsert chunk: %w", err)
	}
	return nil
}

// ListChunkIndexes returns the stored chunk indexes of one file, ascending.
func (s *pgStore) ListChunkIndexes(ctx context.Context, draftID uuid.UUID, fileIndex int) ([]int, error) {
	indexes := make([]int, 0)
	err := s.db.NewSelect().
		Model((*ChunkDao)(nil)).
		Column("chunk_index").
		Where("draft_id = ?", draftID).
		Where("file_index = ?", fileIndex).
		Order("chunk_index ASC").
		Scan(ctx, &indexes)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunks: %w", err)
	}
	return indexes, nil
}
