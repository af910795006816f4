package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/ipfs"
	"github.com/chainsafe/nft-launchpad-api/pkg/pin"
	"github.com/chainsafe/nft-launchpad-api/pkg/pin/service/mocks"
	"github.com/chainsafe/nft-launchpad-api/pkg/pinata"
)

const (
	testWallet     = "0x52908400098527886e0f7030069857d2e4169ee7"
	testCollection = "0x3333333333333333333333333333333333333333"
	testCID        = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
)

func newTestService(t *testing.T, logger *zap.Logger) (Service, *mocks.Store, *mocks.Pinner) {
	t.Helper()
	store := mocks.NewStore(t)
	pinner := mocks.NewPinner(t)
	if logger == nil {
		logger = zap.NewNop()
	}
	return NewService(store, pinner, logger), store, pinner
}

func TestTrack(t *testing.T) {
	svc, store, _ := newTestService(t, nil)
	store.EXPECT().
		CreateTracking(mock.Anything, &pin.Tracking{
			WalletAddress:     testWallet,
			CollectionAddress: testCollection,
			MetadataCID:       testCID,
			Status:            pin.StatusActive,
		}).
		Return(&pin.Tracking{ID: 7, WalletAddress: testWallet, Status: pin.StatusActive}, nil)

	tr, err := svc.Track(context.Background(), &pin.TrackRequest{
		WalletAddress:     "0x52908400098527886E0F7030069857D2E4169EE7",
		CollectionAddress: testCollection,
		MetadataCID:       testCID,
	})
	require.NoError(t, err)
	require.EqualValues(t, 7, tr.ID)
}

func TestTrack_StoresTrimmedCIDs(t *testing.T) {
	svc, store, _ := newTestService(t, nil)
	store.EXPECT().
		CreateTracking(mock.Anything, &pin.Tracking{
			WalletAddress: testWallet,
			ImagesCID:     testCID,
			MetadataCID:   testCID,
			Status:        pin.StatusActive,
		}).
		Return(&pin.Tracking{ID: 8}, nil)

	_, err := svc.Track(context.Background(), &pin.TrackRequest{
		WalletAddress: testWallet,
		ImagesCID:     " " + testCID,
		MetadataCID:   testCID + "\n",
	})
	require.NoError(t, err)
}

func TestTrack_Validation(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	tests := []struct {
		name string
		req  pin.TrackRequest
		msg  string
	}{
		{"no cid", pin.TrackRequest{WalletAddress: testWallet}, "imagesCid or metadataCid is required"},
		{"blank cid", pin.TrackRequest{WalletAddress: testWallet, ImagesCID: "   "}, "imagesCid or metadataCid is required"},
		{"bad cid", pin.TrackRequest{WalletAddress: testWallet, ImagesCID: "nope"}, "invalid cid"},
		{"bad wallet", pin.TrackRequest{WalletAddress: "0xzz", ImagesCID: testCID}, "wallet is invalid"},
		{"bad collection", pin.TrackRequest{WalletAddress: testWallet, CollectionAddress: "abc", ImagesCID: testCID}, "collectionAddress is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Track(context.Background(), &tt.req)
			var svcErr *apperrors.ServiceError
			require.ErrorAs(t, err, &svcErr)
			require.Equal(t, apperrors.CategoryDataError, svcErr.Category)
			require.Equal(t, tt.msg, svcErr.Message)
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc, store, _ := newTestService(t, nil)
	meta := testCID
	store.EXPECT().
		UpdateLatestTracking(mock.Anything, testWallet, testCollection, ipfs.CIDUpdate{MetadataCID: &meta}).
		Return(nil, pin.ErrTrackingNotFound)

	_, err := svc.Update(context.Background(), &pin.UpdateRequest{
		WalletAddress: testWallet, CollectionAddress: testCollection, NewMetadataCID: &meta,
	})
	require.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}

func TestUpdate_NothingToChange(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.Update(context.Background(), &pin.UpdateRequest{WalletAddress: testWallet, CollectionAddress: testCollection})
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestUnpin_NotPinnedIsSuccess(t *testing.T) {
	svc, store, pinner := newTestService(t, nil)
	pinner.EXPECT().Unpin(mock.Anything, testCID).Return(pinata.ErrNotPinned)
	store.EXPECT().MarkUnpinned(mock.Anything, testCID, "").Return(int64(0), nil)

	res, err := svc.Unpin(context.Background(), &pin.UnpinRequest{CID: testCID})
	require.NoError(t, err)
	require.Equal(t, &pin.UnpinResult{Success: true, CID: testCID, AlreadyUnpinned: true}, res)
}

func TestUnpin_TrimsCID(t *testing.T) {
	svc, store, pinner := newTestService(t, nil)
	pinner.EXPECT().Unpin(mock.Anything, testCID).Return(nil)
	store.EXPECT().MarkUnpinned(mock.Anything, testCID, testWallet).Return(int64(1), nil)

	res, err := svc.Unpin(context.Background(), &pin.UnpinRequest{CID: "  " + testCID + " ", WalletAddress: testWallet})
	require.NoError(t, err)
	require.Equal(t, testCID, res.CID)
}

func TestUnpin_TrackingFailureIsSwallowed(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc, store, pinner := newTestService(t, zap.New(core))
	pinner.EXPECT().Unpin(mock.Anything, testCID).Return(nil)
	store.EXPECT().MarkUnpinned(mock.Anything, testCID, testWallet).Return(int64(0), errors.New("db down"))

	res, err := svc.Unpin(context.Background(), &pin.UnpinRequest{CID: testCID, WalletAddress: testWallet})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.False(t, res.AlreadyUnpinned)
	require.Equal(t, 1, logs.FilterMessage("Best-effort side effect failed").Len())
}

func TestUnpin_ProviderFailure(t *testing.T) {
	svc, _, pinner := newTestService(t, nil)
	pinner.EXPECT().Unpin(mock.Anything, testCID).Return(errors.New("pinata returned 401: Invalid API key provided"))

	_, err := svc.Unpin(context.Background(), &pin.UnpinRequest{CID: testCID})
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, apperrors.CategoryDependencyFailure, svcErr.Category)
	require.Equal(t, "pinata returned 401: Invalid API key provided", svcErr.Message)
}

func TestListPins_WithoutWallet(t *testing.T) {
	svc, _, pinner := newTestService(t, nil)
	pinner.EXPECT().PinList(mock.Anything, "").Return(&pinata.PinList{
		Count: 1,
		Rows:  []pinata.Pin{{ID: "p1", CID: testCID}},
	}, nil)

	res, err := svc.ListPins(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, res.Pins, 1)
	require.Equal(t, 1, res.Count)
	require.NotNil(t, res.Tracked)
	require.Empty(t, res.Tracked)
}

func TestListPins_WithWallet(t *testing.T) {
	svc, store, pinner := newTestService(t, nil)
	pinner.EXPECT().PinList(mock.Anything, "apes").Return(&pinata.PinList{Rows: []pinata.Pin{}}, nil)
	store.EXPECT().ListActive(mock.Anything, testWallet).Return([]*pin.Tracking{{ID: 1}, {ID: 2}}, nil)

	res, err := svc.ListPins(context.Background(), testWallet, "apes")
	require.NoError(t, err)
	require.Empty(t, res.Pins)
	require.Len(t, res.Tracked, 2)
}
