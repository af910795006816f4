package launchdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/nft-launchpad-api/pkg/pgutil/migrations"
	"github.com/chainsafe/nft-launchpad-api/pkg/profilestore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating user_profiles table...")
		if err := mghelper.CreateSchema(ctx, db, &profilestore.ProfileDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &profilestore.ProfileDao{}, "wallet_address"); err != nil {
			return err
		}
		// Handle lookups compare lowercased values.
		for _, col := range []string{"x_handle", "username"} {
			_, err := db.NewCreateIndex().
				Model((*profilestore.ProfileDao)(nil)).
				Index("idx_user_profiles_lower_" + col).
				ColumnExpr("LOWER(?)", bun.Ident(col)).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping user_profiles table...")
		return mghelper.DropTables(ctx, db, &profilestore.ProfileDao{})
	})
}
