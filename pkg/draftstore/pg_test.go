package draftstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/nft-launchpad-api/pkg/draft"
	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
	"github.com/chainsafe/nft-launchpad-api/pkg/pgutil"
	mghelper "github.com/chainsafe/nft-launchpad-api/pkg/pgutil/migrations"
)

const wallet = "0x1111111111111111111111111111111111111111"

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db := pgutil.SetupTestDB(t)
	require.NoError(t, mghelper.CreateSchema(ctx, db, &DraftDao{}, &ChunkDao{}))

	return ctx, NewStore(db)
}

func snapshot(name string, step int) *draft.Draft {
	return (&draft.SaveRequest{
		CollectionName: name,
		Description:    "desc " + name,
		UploadMode:     draft.UploadModePrebuilt,
		LaunchConfig:   map[string]any{"mintPrice": "0.01", "supply": float64(100)},
		CurrentStep:    step,
		StagedFiles:    []draft.StagedFile{{Name: "a.png", Size: 10, Type: "image/png", TotalChunks: 2}},
		ImagesCID:      "QmImages",
	}).ToDraft(wallet)
}

func TestDraftPGStore_SaveIsFullReplace(t *testing.T) {
	ctx, s := setupStore(t)

	first, err := s.SaveDraft(ctx, snapshot("first", 1))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)

	time.Sleep(10 * time.Millisecond)

	second := (&draft.SaveRequest{CollectionName: "second", CurrentStep: 3}).ToDraft(wallet)
	saved, err := s.SaveDraft(ctx, second)
	require.NoError(t, err)
	require.Equal(t, first.ID, saved.ID)
	require.Equal(t, first.CreatedAt.Unix(), saved.CreatedAt.Unix())
	require.True(t, saved.UpdatedAt.After(first.UpdatedAt))

	got, err := s.GetDraft(ctx, wallet)
	require.NoError(t, err)
	require.Equal(t, "second", got.CollectionName)
	require.Equal(t, 3, got.CurrentStep)
	// Omitted fields are not carried over from the first save.
	require.Empty(t, got.Description)
	require.Empty(t, got.ImagesCID)
	require.Nil(t, got.LaunchConfig)
	require.Empty(t, got.StagedFiles)
	require.Equal(t, draft.UploadModeImages, got.UploadMode)
	require.Equal(t, draft.StatusDraft, got.Status)

	pgutil.AssertRowCount(t, s.db, "launch_drafts", 1)
}

func TestDraftPGStore_SaveSamePayloadTwice(t *testing.T) {
	ctx, s := setupStore(t)

	_, err := s.SaveDraft(ctx, snapshot("same", 2))
	require.NoError(t, err)
	_, err = s.SaveDraft(ctx, snapshot("same", 2))
	require.NoError(t, err)

	pgutil.AssertRowCount(t, s.db, "launch_drafts", 1)

	got, err := s.GetDraft(ctx, wallet)
	require.NoError(t, err)
	require.Equal(t, "same", got.CollectionName)
	require.Equal(t, "0.01", got.LaunchConfig["mintPrice"])
	require.Len(t, got.StagedFiles, 1)
	require.Equal(t, 2, got.StagedFiles[0].TotalChunks)
}

func TestDraftPGStore_GetExistsDelete(t *testing.T) {
	ctx, s := setupStore(t)

	_, err := s.GetDraft(ctx, wallet)
	require.True(t, errors.Is(err, draft.ErrNotFound))

	exists, err := s.DraftExists(ctx, wallet)
	require.NoError(t, err)
	require.False(t, exists)

	d, err := s.SaveDraft(ctx, snapshot("x", 0))
	require.NoError(t, err)
	require.NoError(t, s.UpsertChunk(ctx, &draft.Chunk{DraftID: d.ID, FileIndex: 0, ChunkIndex: 0, Data: "AAAA"}))

	exists, err = s.DraftExists(ctx, wallet)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, s.DeleteDraft(ctx, wallet))
	require.NoError(t, s.DeleteDraft(ctx, wallet))

	pgutil.AssertRowCount(t, s.db, "launch_drafts", 0)
	pgutil.AssertRowCount(t, s.db, "draft_file_chunks", 0)
}

func TestDraftPGStore_UpsertChunkOverwrites(t *testing.T) {
	ctx, s := setupStore(t)

	d, err := s.SaveDraft(ctx, snapshot("chunks", 0))
	require.NoError(t, err)

	require.NoError(t, s.UpsertChunk(ctx, &draft.Chunk{DraftID: d.ID, FileIndex: 0, ChunkIndex: 1, Data: "first"}))
	require.NoError(t, s.UpsertChunk(ctx, &draft.Chunk{DraftID: d.ID, FileIndex: 0, ChunkIndex: 1, Data: "second"}))
	require.NoError(t, s.UpsertChunk(ctx, &draft.Chunk{DraftID: d.ID, FileIndex: 0, ChunkIndex: 0, Data: "zero"}))
	require.NoError(t, s.UpsertChunk(ctx, &draft.Chunk{DraftID: d.ID, FileIndex: 1, ChunkIndex: 0, Data: "other"}))

	pgutil.AssertRowCount(t, s.db, "draft_file_chunks", 3)

	var data string
	err = s.db.NewSelect().Model((*ChunkDao)(nil)).Column("chunk_data").
		Where("draft_id = ? AND file_index = 0 AND chunk_index = 1", d.ID).
		Scan(ctx, &data)
	require.NoError(t, err)
	require.Equal(t, "second", data)

	idx, err := s.ListChunkIndexes(ctx, d.ID, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, idx)

	idx, err = s.ListChunkIndexes(ctx, d.ID, 7)
	require.NoError(t, err)
	require.Empty(t, idx)
}

func TestDraftPGStore_UpsertChunkUnknownDraft(t *testing.T) {
	ctx, s := setupStore(t)

	err := s.UpsertChunk(ctx, &draft.Chunk{DraftID: uuid.New(), FileIndex: 0, ChunkIndex: 0, Data: "x"})
	require.ErrorIs(t, err, draft.ErrChunkDraftNotFound)
}

func TestDraftPGStore_UpdateDraftCIDs(t *testing.T) {
	ctx, s := setupStore(t)

	ok, err := s.UpdateDraftCIDs(ctx, wallet, ipfs.CIDUpdate{})
	require.NoError(t, err)
	require.False(t, ok)

	meta := "QmMeta"
	ok, err = s.UpdateDraftCIDs(ctx, wallet, ipfs.CIDUpdate{MetadataCID: &meta})
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.SaveDraft(ctx, snapshot("cid", 4))
	require.NoError(t, err)

	ok, err = s.UpdateDraftCIDs(ctx, wallet, ipfs.CIDUpdate{MetadataCID: &meta})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.GetDraft(ctx, wallet)
	require.NoError(t, err)
	require.Equal(t, "QmMeta", got.MetadataCID)
	require.Equal(t, "QmImages", got.ImagesCID)
}
