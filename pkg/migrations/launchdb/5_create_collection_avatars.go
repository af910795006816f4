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
		log.Println("creating collection_avatars table...")
		return mghelper.CreateSchema(ctx, db, &collectionstore.AvatarDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping collection_avatars table...")
		return mghelper.DropTables(ctx, db, &collectionstore.AvatarDao{})
	})
}
