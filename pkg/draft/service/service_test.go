package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/draft"
	"github.com/chainsafe/nft-launchpad-api/pkg/draft/service/mocks"
)

const (
	mixedCaseWallet = "0x52908400098527886E0F7030069857D2E4169EE7"
	lowerWallet     = "0x52908400098527886e0f7030069857d2e4169ee7"
)

func intPtr(i int) *int { return &i }

func TestSave_NormalizesWalletAndReplaces(t *testing.T) {
	store := mocks.NewStore(t)
	svc := NewService(store, zap.NewNop())

	id := uuid.New()
	store.EXPECT().
		SaveDraft(mock.Anything, mock.MatchedBy(func(d *draft.Draft) bool {
			return d.WalletAddress == lowerWallet &&
				d.CollectionName == "Apes" &&
				d.Description == "" &&
				d.UploadMode == draft.UploadModeImages &&
				d.Status == draft.StatusDraft
		})).
		RunAndReturn(func(_ context.Context, d *draft.Draft) (*draft.Draft, error) {
			d.ID = id
			return d, nil
		})

	saved, err := svc.Save(context.Background(), &draft.SaveRequest{
		WalletAddress:  mixedCaseWallet,
		CollectionName: "Apes",
	})
	require.NoError(t, err)
	require.Equal(t, id, saved.ID)
}

func TestSave_Validation(t *testing.T) {
	svc := NewService(mocks.NewStore(t), zap.NewNop())

	_, err := svc.Save(context.Background(), &draft.SaveRequest{WalletAddress: "0x123"})
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	_, err = svc.Save(context.Background(), &draft.SaveRequest{WalletAddress: lowerWallet, ImagesCID: "nope"})
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestGet_AbsentDraftIsNil(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().GetDraft(mock.Anything, lowerWallet).Return(nil, draft.ErrNotFound)
	svc := NewService(store, zap.NewNop())

	d, err := svc.Get(context.Background(), mixedCaseWallet)
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestGet_StoreFailure(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().GetDraft(mock.Anything, lowerWallet).Return(nil, errors.New("timeout"))
	svc := NewService(store, zap.NewNop())

	_, err := svc.Get(context.Background(), lowerWallet)
	require.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
}

func TestExists_NoDraft(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().DraftExists(mock.Anything, lowerWallet).Return(false, nil)
	svc := NewService(store, zap.NewNop())

	exists, err := svc.Exists(context.Background(), lowerWallet)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestDelete(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().DeleteDraft(mock.Anything, lowerWallet).Return(nil)
	svc := NewService(store, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), mixedCaseWallet))
}

func TestUploadChunk(t *testing.T) {
	id := uuid.New()
	store := mocks.NewStore(t)
	store.EXPECT().UpsertChunk(mock.Anything, &draft.Chunk{DraftID: id, FileIndex: 1, ChunkIndex: 2, Data: "AAAA"}).Return(nil)
	svc := NewService(store, zap.NewNop())

	err := svc.UploadChunk(context.Background(), &draft.ChunkUploadRequest{
		DraftID: id.String(), FileIndex: intPtr(1), ChunkIndex: intPtr(2), ChunkData: "AAAA",
	})
	require.NoError(t, err)
}

func TestUploadChunk_UnknownDraft(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().UpsertChunk(mock.Anything, mock.Anything).Return(draft.ErrChunkDraftNotFound)
	svc := NewService(store, zap.NewNop())

	err := svc.UploadChunk(context.Background(), &draft.ChunkUploadRequest{
		DraftID: uuid.NewString(), FileIndex: intPtr(0), ChunkIndex: intPtr(0), ChunkData: "x",
	})
	require.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}

func TestUploadChunk_InvalidDraftID(t *testing.T) {
	svc := NewService(mocks.NewStore(t), zap.NewNop())

	err := svc.UploadChunk(context.Background(), &draft.ChunkUploadRequest{
		DraftID: "not-a-uuid", FileIndex: intPtr(0), ChunkIndex: intPtr(0), ChunkData: "x",
	})
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestListChunks(t *testing.T) {
	id := uuid.New()
	store := mocks.NewStore(t)
	store.EXPECT().ListChunkIndexes(mock.Anything, id, 0).Return([]int{0, 1, 3}, nil)
	svc := NewService(store, zap.NewNop())

	list, err := svc.ListChunks(context.Background(), id.String(), 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3}, list.Chunks)
	require.Equal(t, id.String(), list.DraftID)
}
