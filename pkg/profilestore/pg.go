// Package profilestore reads user profiles for handle resolution.
package profilestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/chainsafe/nft-launchpad-api/pkg/handle"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the profile store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// CreateProfile inserts a profile row.
func (s *pgStore) CreateProfile(ctx context.Context, p *handle.Profile) error {
	dao := toProfileDao(p)
	if _, err := s.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	p.ID = dao.ID
	return nil
}

// FindByHandleOrUsername matches x_handle or username exactly, ignoring case.
func (s *pgStore) FindByHandleOrUsername(ctx context.Context, h string) (*handle.Profile, error) {
	return s.findOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("LOWER(up.x_handle) = ?", h).WhereOr("LOWER(up.username) = ?", h)
		})
	})
}

// FindByHandle matches x_handle exactly, ignoring case.
func (s *pgStore) FindByHandle(ctx context.Context, h string) (*handle.Profile, error) {
	return s.findOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("LOWER(up.x_handle) = ?", h)
	})
}

// FindContaining matches x_handle or username containing h, ignoring case.
// LIKE metacharacters in h are matched literally.
func (s *pgStore) FindContaining(ctx context.Context, h string) (*handle.Profile, error) {
	pattern := "%" + likeEscaper.Replace(h) + "%"
	return s.findOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("up.x_handle ILIKE ?", pattern).WhereOr("up.username ILIKE ?", pattern)
		})
	})
}

// findOne returns the oldest matching row, or nil when there is none.
func (s *pgStore) findOne(ctx context.Context, where func(*bun.SelectQuery) *bun.SelectQuery) (*handle.Profile, error) {
	dao := new(ProfileDao)
	err := where(s.db.NewSelect().Model(dao)).
		OrderExpr("up.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	return toProfile(dao), nil
}
