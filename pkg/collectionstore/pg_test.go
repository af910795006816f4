package collectionstore

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/nft-launchpad-api/pkg/collection"
	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
	"github.com/chainsafe/nft-launchpad-api/pkg/pgutil"
	mghelper "github.com/chainsafe/nft-launchpad-api/pkg/pgutil/migrations"
)

const (
	walletA   = "0x1111111111111111111111111111111111111111"
	walletB   = "0x2222222222222222222222222222222222222222"
	contractX = "0x3333333333333333333333333333333333333333"
	contractY = "0x4444444444444444444444444444444444444444"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db := pgutil.SetupTestDB(t)
	require.NoError(t, mghelper.CreateSchema(ctx, db, &AvatarDao{}, &ContractDao{}, &ArtistDao{}))

	return ctx, NewStore(db)
}

func TestCollectionPGStore_Avatar(t *testing.T) {
	ctx, s := setupStore(t)

	got, err := s.GetAvatar(ctx, contractX)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = s.UpsertAvatar(ctx, &collection.Avatar{
		CollectionAddress: contractX,
		AvatarURL:         "https://img/1.png",
		CreatorWallet:     walletA,
	})
	require.NoError(t, err)

	// Last writer wins, including clearing fields.
	saved, err := s.UpsertAvatar(ctx, &collection.Avatar{
		CollectionAddress: contractX,
		IPFSCID:           "QmAvatar",
	})
	require.NoError(t, err)
	require.Equal(t, "QmAvatar", saved.IPFSCID)

	got, err = s.GetAvatar(ctx, contractX)
	require.NoError(t, err)
	require.Empty(t, got.AvatarURL)
	require.Empty(t, got.CreatorWallet)
	require.Equal(t, "QmAvatar", got.IPFSCID)

	pgutil.AssertRowCount(t, s.db, "collection_avatars", 1)
}

func TestCollectionPGStore_UpdateContractCIDs(t *testing.T) {
	ctx, s := setupStore(t)

	created, err := s.CreateContract(ctx, &collection.Contract{
		ContractAddress: contractX,
		CreatorWallet:   walletA,
		Name:            "Apes",
		MetadataCID:     "QmOld",
		MintPrice:       decimal.RequireFromString("0.015"),
	})
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("0.015").Equal(created.MintPrice))

	base := "ipfs://QmNew/"
	ok, err := s.UpdateContractCIDs(ctx, walletB, contractX, ipfs.CIDUpdate{BaseURI: &base})
	require.NoError(t, err)
	require.False(t, ok, "only the creator may update")

	ok, err = s.UpdateContractCIDs(ctx, walletA, contractX, ipfs.CIDUpdate{BaseURI: &base})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.UpdateContractCIDs(ctx, walletA, contractX, ipfs.CIDUpdate{})
	require.NoError(t, err)
	require.False(t, ok)

	list, err := s.ListContractsByCreators(ctx, []string{walletA}, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, base, list[0].BaseURI)
	require.Equal(t, "QmOld", list[0].MetadataCID)
}

func TestCollectionPGStore_CreateContract_Duplicate(t *testing.T) {
	ctx, s := setupStore(t)

	_, err := s.CreateContract(ctx, &collection.Contract{ContractAddress: contractX, CreatorWallet: walletA, Name: "Apes"})
	require.NoError(t, err)

	_, err = s.CreateContract(ctx, &collection.Contract{ContractAddress: contractX, CreatorWallet: walletB, Name: "Copy"})
	require.ErrorIs(t, err, collection.ErrContractExists)

	pgutil.AssertRowCount(t, s.db, "collection_contracts", 1)
}

func TestCollectionPGStore_Featured(t *testing.T) {
	ctx, s := setupStore(t)

	_, err := s.UpsertArtist(ctx, &collection.Artist{WalletAddress: walletA, XHandle: "alice", Featured: true})
	require.NoError(t, err)
	_, err = s.UpsertArtist(ctx, &collection.Artist{WalletAddress: walletB, XHandle: "bob"})
	require.NoError(t, err)

	artists, err := s.ListFeaturedArtists(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	require.Equal(t, walletA, artists[0].WalletAddress)

	_, err = s.CreateContract(ctx, &collection.Contract{ContractAddress: contractX, CreatorWallet: walletA, Name: "First"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = s.CreateContract(ctx, &collection.Contract{ContractAddress: contractY, CreatorWallet: walletA, Name: "Second"})
	require.NoError(t, err)

	list, err := s.ListContractsByCreators(ctx, []string{walletA, walletB}, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Second", list[0].Name)

	empty, err := s.ListContractsByCreators(ctx, nil, 10)
	require.NoError(t, err)
	require.Empty(t, empty)
}
