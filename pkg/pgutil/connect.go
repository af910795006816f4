// Package pgutil opens bun connections to the hosted Postgres database.
package pgutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/nft-launchpad-api/pkg/config"
)

const pingTimeout = 10 * time.Second

// ConnectDB creates a connection to the configured database and verifies it with a ping.
func ConnectDB(cfg *config.DatabaseConfig) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(connectorOptions(cfg)...))
	db := bun.NewDB(sqldb, pgdialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database, err)
	}

	return db, nil
}

// connectorOptions prefers the DSN (Supabase connection string) when present.
// Discrete fields go through functional options so special characters in the
// password need no escaping.
func connectorOptions(cfg *config.DatabaseConfig) []pgdriver.Option {
	if cfg.URL != "" {
		return []pgdriver.Option{pgdriver.WithDSN(cfg.URL)}
	}
	return []pgdriver.Option{
		pgdriver.WithNetwork("tcp"),
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Database),
		pgdriver.WithInsecure(cfg.SSLMode == "disable"),
	}
}
