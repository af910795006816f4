package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/nft-launchpad-api/pkg/config"
	"github.com/chainsafe/nft-launchpad-api/pkg/migrations/launchdb"
	"github.com/chainsafe/nft-launchpad-api/pkg/pgutil"
	mghelper "github.com/chainsafe/nft-launchpad-api/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	// Connect to database
	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for launchpad database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, launchdb.Migrations)

	if err := mghelper.RunMigrations(context.Background(), migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}
