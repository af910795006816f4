package launchdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/nft-launchpad-api/pkg/draftstore"
	mghelper "github.com/chainsafe/nft-launchpad-api/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating launch_drafts table...")
		return mghelper.CreateSchema(ctx, db, &draftstore.DraftDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping launch_drafts table...")
		return mghelper.DropTables(ctx, db, &draftstore.DraftDao{})
	})
}
