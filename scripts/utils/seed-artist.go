//go:build ignore
// +build ignore

// Seed Artist Script
//
// This script adds an artist to the permission list and, when a handle is
// given, creates the matching user profile so the handle resolves to the
// artist's wallet.
//
// Usage:
//   go run scripts/utils/seed-artist.go -config config.yaml -wallet 0x... -handle alice -featured

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chainsafe/nft-launchpad-api/pkg/auth"
	"github.com/chainsafe/nft-launchpad-api/pkg/collection"
	"github.com/chainsafe/nft-launchpad-api/pkg/collectionstore"
	"github.com/chainsafe/nft-launchpad-api/pkg/config"
	"github.com/chainsafe/nft-launchpad-api/pkg/handle"
	"github.com/chainsafe/nft-launchpad-api/pkg/pgutil"
	"github.com/chainsafe/nft-launchpad-api/pkg/profilestore"
)

var (
	configPath  = flag.String("config", "config.yaml", "Path to config file")
	wallet      = flag.String("wallet", "", "Artist wallet address")
	xHandle     = flag.String("handle", "", "Artist X handle (optional)")
	displayName = flag.String("name", "", "Display name (optional)")
	featured    = flag.Bool("featured", false, "Show the artist in the featured list")
)

func main() {
	flag.Parse()

	if !auth.ValidateEVMAddress(*wallet) {
		fmt.Printf("ERROR: -wallet must be a 0x-prefixed address, got %q\n", *wallet)
		os.Exit(1)
	}
	addr := auth.NormalizeAddress(*wallet)
	h := handle.Normalize(*xHandle)

	cfg, err := config.LoadAPIServer(*configPath)
	if err != nil {
		fmt.Printf("ERROR: Failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(">>> Connecting to database...")
	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		fmt.Printf("ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	fmt.Println("    ✓ Connected")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	artist, err := collectionstore.NewStore(db).UpsertArtist(ctx, &collection.Artist{
		WalletAddress: addr,
		XHandle:       h,
		DisplayName:   *displayName,
		Featured:      *featured,
	})
	if err != nil {
		fmt.Printf("ERROR: Failed to save artist: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("    ✓ Artist %s saved (featured=%t)\n", artist.WalletAddress, artist.Featured)

	if h == "" {
		return
	}
	err = profilestore.NewStore(db).CreateProfile(ctx, &handle.Profile{
		WalletAddress: addr,
		Username:      h,
		XHandle:       h,
		DisplayName:   *displayName,
	})
	if err != nil {
		fmt.Printf("ERROR: Failed to create profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("    ✓ Profile @%s -> %s created\n", h, addr)
}
