package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/nft-launchpad-api/pkg/auth"
	"github.com/chainsafe/nft-launchpad-api/pkg/collection"
	collectionmocks "github.com/chainsafe/nft-launchpad-api/pkg/collection/service/mocks"
	"github.com/chainsafe/nft-launchpad-api/pkg/config"
	draftmocks "github.com/chainsafe/nft-launchpad-api/pkg/draft/service/mocks"
	handlemocks "github.com/chainsafe/nft-launchpad-api/pkg/handle/service/mocks"
	pinmocks "github.com/chainsafe/nft-launchpad-api/pkg/pin/service/mocks"
	walletmocks "github.com/chainsafe/nft-launchpad-api/pkg/wallet/service/mocks"
)

type rejectAll struct{}

func (rejectAll) ValidateToken(context.Context, string) (*auth.Claims, error) {
	return nil, errors.New("rejected")
}

func newTestRouter(t *testing.T) (http.Handler, *collectionmocks.Service, *draftmocks.Service) {
	t.Helper()
	collections := collectionmocks.NewService(t)
	drafts := draftmocks.NewService(t)

	s := NewServer(&config.APIServerConfig{
		Server: config.ServerConfig{RequestTimeout: 5 * time.Second, ChunkBodyLimit: 1024},
	})
	r := s.setupRouter(&services{
		handles:     handlemocks.NewService(t),
		drafts:      drafts,
		pins:        pinmocks.NewService(t),
		collections: collections,
		wallets:     walletmocks.NewService(t),
		verifier:    rejectAll{},
	}, zap.NewNop())
	return r, collections, drafts
}

func TestRouter_Health(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestRouter_MetricsExposed(t *testing.T) {
	r, collections, _ := newTestRouter(t)
	collections.EXPECT().FeaturedArtists(mock.Anything).Return(&collection.Featured{Success: true}, nil)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/featured-artists", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `route="/api/featured-artists"`))
}

func TestRouter_DraftExists(t *testing.T) {
	r, _, drafts := newTestRouter(t)
	const wallet = "0x52908400098527886e0f7030069857d2e4169ee7"
	drafts.EXPECT().Exists(mock.Anything, wallet).Return(false, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/drafts/exists?wallet="+wallet, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"exists":false}`, rec.Body.String())
}

func TestRouter_WalletRequiresAuth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/wallet/create", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRun_NilConfig(t *testing.T) {
	require.Error(t, NewServer(nil).Run())
}
