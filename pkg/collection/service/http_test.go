package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	"github.com/chainsafe/nft-launchpad-api/pkg/collection"
	"github.com/chainsafe/nft-launchpad-api/pkg/collection/service/mocks"
)

func newCollectionTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func serve(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, bytes.NewBufferString(body)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return rec, got
}

func TestCollectionHTTP_GetAvatar(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetAvatar(mock.Anything, testContract).Return(ptr("https://img/a.png"), nil)

	rec, got := serve(t, newCollectionTestServer(svc), http.MethodGet, "/api/avatar?address="+testContract, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]any{"avatar": "https://img/a.png"}, got)
}

func TestCollectionHTTP_GetAvatar_Null(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetAvatar(mock.Anything, testContract).Return(nil, nil)

	rec, got := serve(t, newCollectionTestServer(svc), http.MethodGet, "/api/avatar?address="+testContract, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, got, "avatar")
	require.Nil(t, got["avatar"])
}

func TestCollectionHTTP_GetAvatar_MissingAddress(t *testing.T) {
	rec, got := serve(t, newCollectionTestServer(mocks.NewService(t)), http.MethodGet, "/api/avatar", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "address is required", got["error"])
}

func TestCollectionHTTP_SetAvatar(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		SetAvatar(mock.Anything, &collection.SetAvatarRequest{CollectionAddress: testContract, IPFSCID: testCID}).
		Return(&collection.Avatar{CollectionAddress: testContract, AvatarURL: testGateway + testCID, IPFSCID: testCID}, nil)

	body := `{"collectionAddress":"` + testContract + `","ipfsCid":"` + testCID + `"}`
	rec, got := serve(t, newCollectionTestServer(svc), http.MethodPost, "/api/avatar", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, got["success"])
	require.Equal(t, testGateway+testCID, got["data"].(map[string]any)["avatarUrl"])
}

func TestCollectionHTTP_CollectionImage(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().CollectionImage(mock.Anything, testContract, "base").
		Return(&collection.Image{Success: true, Image: "https://cdn/logo.png", Source: "logo"}, nil)

	rec, got := serve(t, newCollectionTestServer(svc), http.MethodGet,
		"/api/collection-image?address="+testContract+"&network=base", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]any{"success": true, "image": "https://cdn/logo.png", "source": "logo"}, got)
}

func TestCollectionHTTP_CollectionImage_MissingNetwork(t *testing.T) {
	rec, got := serve(t, newCollectionTestServer(mocks.NewService(t)), http.MethodGet,
		"/api/collection-image?address="+testContract, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "network is required", got["error"])
}

func TestCollectionHTTP_RegisterContract(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		RegisterContract(mock.Anything, mock.MatchedBy(func(req *collection.RegisterContractRequest) bool {
			return req.Name == "Apes" && req.MintPrice.String() == "0.05"
		})).
		Return(&collection.Contract{ContractAddress: testContract, Name: "Apes"}, nil)

	body := `{"wallet":"` + testWallet + `","contractAddress":"` + testContract + `","name":"Apes","mintPrice":"0.05"}`
	rec, got := serve(t, newCollectionTestServer(svc), http.MethodPost, "/api/collections", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, true, got["success"])
}

func TestCollectionHTTP_UpdateCID(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().UpdateCID(mock.Anything, mock.Anything).Return(&collection.UpdateCIDResult{
		Success: true,
		Message: "CID updated on contract; failed to update tracking",
		Updated: collection.UpdatedTargets{Contract: true, Draft: true},
		Failed:  []string{collection.TargetTracking},
	}, nil)

	body := `{"wallet":"` + testWallet + `","contractAddress":"` + testContract + `","newBaseUri":"ipfs://x/"}`
	rec, got := serve(t, newCollectionTestServer(svc), http.MethodPut, "/api/collections/cid", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]any{"contract": true, "draft": true, "tracking": false}, got["updated"])
	require.Equal(t, []any{"tracking"}, got["failed"])
}

func TestCollectionHTTP_UpdateCID_NotFound(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().UpdateCID(mock.Anything, mock.Anything).
		Return(nil, apperrors.ResourceNotFoundError(nil, "contract not found for wallet"))

	body := `{"wallet":"` + testWallet + `","contractAddress":"` + testContract + `","newBaseUri":"ipfs://x/"}`
	rec, got := serve(t, newCollectionTestServer(svc), http.MethodPut, "/api/collections/cid", body)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "contract not found for wallet", got["error"])
}

func TestCollectionHTTP_FeaturedArtists(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().FeaturedArtists(mock.Anything).Return(&collection.Featured{
		Success:        true,
		PermissionList: []*collection.Artist{},
		Creations:      []*collection.Contract{},
	}, nil)

	rec, got := serve(t, newCollectionTestServer(svc), http.MethodGet, "/api/featured-artists", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]any{"success": true, "permissionList": []any{}, "creations": []any{}}, got)
}
