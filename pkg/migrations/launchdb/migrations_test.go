package launchdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/nft-launchpad-api/pkg/pgutil"
)

func TestLaunchDBMigrations_Apply(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, Migrations)
	require.NoError(t, migrator.Init(ctx))

	group, err := migrator.Migrate(ctx)
	require.NoError(t, err)
	require.False(t, group.IsZero(), "expected migrations to run")

	for _, table := range []string{
		"user_profiles",
		"launch_drafts",
		"draft_file_chunks",
		"collection_ipfs_tracking",
		"collection_avatars",
		"collection_contracts",
		"artist_permissions",
		"bun_migrations",
	} {
		pgutil.AssertTableExists(t, db, table)
	}

	for _, idx := range []string{
		"idx_user_profiles_wallet_address",
		"idx_user_profiles_lower_x_handle",
		"idx_user_profiles_lower_username",
		"idx_draft_file_chunks_draft_id",
		"idx_collection_ipfs_tracking_wallet_address",
		"idx_collection_contracts_creator_wallet",
		"idx_artist_permissions_featured",
	} {
		pgutil.AssertIndexExists(t, db, idx)
	}
}

func TestLaunchDBMigrations_Rollback(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	group, err := migrator.Rollback(ctx)
	require.NoError(t, err)
	require.False(t, group.IsZero())

	exists, err := db.NewSelect().
		TableExpr("information_schema.tables").
		Where("table_name = ?", "launch_drafts").
		Exists(ctx)
	require.NoError(t, err)
	require.False(t, exists)
}
