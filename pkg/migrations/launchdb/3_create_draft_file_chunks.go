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
		log.Println("creating draft_file_chunks table...")
		if err := mghelper.CreateSchema(ctx, db, &draftstore.ChunkDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &draftstore.ChunkDao{}, "draft_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping draft_file_chunks table...")
		return mghelper.DropTables(ctx, db, &draftstore.ChunkDao{})
	})
}
