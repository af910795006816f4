package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/handle"
	"github.com/chainsafe/nft-launchpad-api/pkg/handle/service/mocks"
	"github.com/chainsafe/nft-launchpad-api/pkg/privy"
)

func newTestService(t *testing.T) (Service, *mocks.Store, *mocks.Directory) {
	t.Helper()
	store := mocks.NewStore(t)
	dir := mocks.NewDirectory(t)
	return NewService(store, dir, zap.NewNop()), store, dir
}

func TestResolve_ExactMatch(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.EXPECT().FindByHandleOrUsername(mock.Anything, "alice").
		Return(&handle.Profile{WalletAddress: "0xABC", XHandle: "alice"}, nil)

	res, err := svc.Resolve(context.Background(), "@Alice")
	require.NoError(t, err)
	require.Equal(t, "0xABC", res.Address)
	require.Equal(t, "alice", res.Handle)
	require.Equal(t, "alice", res.Searched)
	require.Equal(t, StrategyExactAny, res.MatchedBy)
}

func TestResolve_SigilDoesNotChangeResult(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.EXPECT().FindByHandleOrUsername(mock.Anything, "bob").
		Return(&handle.Profile{WalletAddress: "0xB0B"}, nil).Times(2)

	withSigil, err := svc.Resolve(context.Background(), "@bob")
	require.NoError(t, err)
	plain, err := svc.Resolve(context.Background(), "bob")
	require.NoError(t, err)
	require.Equal(t, plain, withSigil)
}

func TestResolve_FallsThroughStrategies(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.EXPECT().FindByHandleOrUsername(mock.Anything, "ali").Return(nil, nil)
	store.EXPECT().FindByHandle(mock.Anything, "ali").Return(nil, nil)
	store.EXPECT().FindContaining(mock.Anything, "ali").
		Return(&handle.Profile{WalletAddress: "0xABC", XHandle: "alice"}, nil)

	res, err := svc.Resolve(context.Background(), "ali")
	require.NoError(t, err)
	require.Equal(t, "0xABC", res.Address)
	require.Equal(t, StrategyContainsAny, res.MatchedBy)
}

func TestResolve_RowWithoutWallet_IsNotFound(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.EXPECT().FindByHandleOrUsername(mock.Anything, "ghost").
		Return(&handle.Profile{XHandle: "ghost"}, nil)

	_, err := svc.Resolve(context.Background(), "ghost")
	require.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))

	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, "ghost", svcErr.Details["searched"])
}

func TestResolve_NoMatch(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.EXPECT().FindByHandleOrUsername(mock.Anything, "nobody").Return(nil, nil)
	store.EXPECT().FindByHandle(mock.Anything, "nobody").Return(nil, nil)
	store.EXPECT().FindContaining(mock.Anything, "nobody").Return(nil, nil)

	_, err := svc.Resolve(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrHandleNotFound)
	require.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}

func TestResolve_StoreFailure(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.EXPECT().FindByHandleOrUsername(mock.Anything, "alice").
		Return(nil, errors.New("connection refused"))

	_, err := svc.Resolve(context.Background(), "alice")
	require.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
	require.Contains(t, err.Error(), "connection refused")
}

func TestResolve_EmptyHandle(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Resolve(context.Background(), " @ ")
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestResolve_CustomStrategies(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().FindByHandle(mock.Anything, "alice").
		Return(&handle.Profile{WalletAddress: "0xABC"}, nil)

	only := []Strategy{DefaultStrategies()[1]}
	svc := NewServiceWithStrategies(store, mocks.NewDirectory(t), only, zap.NewNop())

	res, err := svc.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, StrategyExactHandle, res.MatchedBy)
}

func directoryUser(id, handleName, name, wallet string) privy.User {
	accounts := []privy.LinkedAccount{{Type: privy.AccountTypeTwitter, Username: handleName, Name: name}}
	if wallet != "" {
		accounts = append(accounts, privy.LinkedAccount{
			Type:             privy.AccountTypeWallet,
			WalletClientType: privy.WalletClientPrivy,
			Address:          wallet,
		})
	}
	return privy.User{ID: id, LinkedAccounts: accounts}
}

func TestLookupDirectory_PicksExactHandle(t *testing.T) {
	svc, _, dir := newTestService(t)
	dir.EXPECT().SearchUsers(mock.Anything, "alice").Return([]privy.User{
		directoryUser("u1", "alice_fan", "Fan", "0x111"),
		directoryUser("u2", "Alice", "Alice A", "0x222"),
	}, nil)

	entry, err := svc.LookupDirectory(context.Background(), "@alice")
	require.NoError(t, err)
	require.Equal(t, &handle.DirectoryEntry{Handle: "alice", Address: "0x222", DisplayName: "Alice A"}, entry)
}

func TestLookupDirectory_MatchWithoutWallet(t *testing.T) {
	svc, _, dir := newTestService(t)
	dir.EXPECT().SearchUsers(mock.Anything, "alice").Return([]privy.User{
		directoryUser("u1", "alice", "Alice", ""),
	}, nil)

	_, err := svc.LookupDirectory(context.Background(), "alice")
	require.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}

func TestLookupDirectory_ProviderFailure(t *testing.T) {
	svc, _, dir := newTestService(t)
	dir.EXPECT().SearchUsers(mock.Anything, "alice").Return(nil, errors.New("privy returned 503: unavailable"))

	_, err := svc.LookupDirectory(context.Background(), "alice")
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, apperrors.CategoryDependencyFailure, svcErr.Category)
	require.Equal(t, "privy returned 503: unavailable", svcErr.Message)
}
