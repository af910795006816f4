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
		log.Println("creating artist_permissions table...")
		if err := mghelper.CreateSchema(ctx, db, &collectionstore.ArtistDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &collectionstore.ArtistDao{}, "featured")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping artist_permissions table...")
		return mghelper.DropTables(ctx, db, &collectionstore.ArtistDao{})
	})
}
