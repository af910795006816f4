package launchdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/nft-launchpad-api/pkg/pgutil/migrations"
	"github.com/chainsafe/nft-launchpad-api/pkg/pinstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating collection_ipfs_tracking table...")
		if err := mghelper.CreateSchema(ctx, db, &pinstore.TrackingDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &pinstore.TrackingDao{}, "wallet_address", "images_cid", "metadata_cid"); err != nil {
			return err
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping collection_ipfs_tracking table...")
		return mghelper.DropTables(ctx, db, &pinstore.TrackingDao{})
	})
}
