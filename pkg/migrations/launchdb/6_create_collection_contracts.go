package launchdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/nft-launchpad-api/pkg/collectionstore"
	mghelper "github.com/chainsafe/nft-launchpad-api/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating collection_contracts table...")
		if err := mghelper.CreateSchema(ctx, db, &collectionstore.ContractDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &collectionstore.ContractDao{}, "creator_wallet")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping collection_contracts table...")
		return mghelper.DropTables(ctx, db, &collectionstore.ContractDao{})
	})
}
