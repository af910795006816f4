package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/nft-launchpad-api/pkg/draft"
	"github.com/chainsafe/nft-launchpad-api/pkg/draft/service/mocks"
)

const testChunkLimit = 256

func newDraftTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, testChunkLimit, zap.NewNop())
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return rec, got
}

func TestDraftHTTP_GetAbsent_ReturnsNullDraft(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Get(mock.Anything, lowerWallet).Return(nil, nil)

	rec, got := doRequest(t, newDraftTestServer(svc), http.MethodGet, "/api/drafts?wallet="+lowerWallet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, got, "draft")
	require.Nil(t, got["draft"])
}

func TestDraftHTTP_Exists_False(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Exists(mock.Anything, lowerWallet).Return(false, nil)

	rec, got := doRequest(t, newDraftTestServer(svc), http.MethodGet, "/api/drafts/exists?wallet="+lowerWallet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]any{"exists": false}, got)
}

func TestDraftHTTP_Exists_MissingWallet(t *testing.T) {
	rec, got := doRequest(t, newDraftTestServer(mocks.NewService(t)), http.MethodGet, "/api/drafts/exists", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "wallet is required", got["error"])
}

func TestDraftHTTP_Save(t *testing.T) {
	svc := mocks.NewService(t)
	id := uuid.New()
	svc.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(req *draft.SaveRequest) bool {
			return req.WalletAddress == lowerWallet && req.CurrentStep == 2 && req.UploadMode == draft.UploadModePrebuilt
		})).
		Return(&draft.Draft{ID: id, WalletAddress: lowerWallet, CurrentStep: 2}, nil)

	body := `{"wallet":"` + lowerWallet + `","uploadMode":"prebuilt","currentStep":2,"launchConfig":{"supply":10}}`
	rec, got := doRequest(t, newDraftTestServer(svc), http.MethodPost, "/api/drafts", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, got["success"])
	require.Equal(t, id.String(), got["draft"].(map[string]any)["id"])
}

func TestDraftHTTP_Save_InvalidUploadMode(t *testing.T) {
	body := `{"wallet":"` + lowerWallet + `","uploadMode":"zip"}`
	rec, got := doRequest(t, newDraftTestServer(mocks.NewService(t)), http.MethodPost, "/api/drafts", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "uploadMode must be one of [images prebuilt]", got["error"])
}

func TestDraftHTTP_Delete(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Delete(mock.Anything, lowerWallet).Return(nil)

	rec, got := doRequest(t, newDraftTestServer(svc), http.MethodDelete, "/api/drafts?wallet="+lowerWallet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, got["success"])
}

func TestDraftHTTP_UploadChunk(t *testing.T) {
	svc := mocks.NewService(t)
	id := uuid.NewString()
	svc.EXPECT().
		UploadChunk(mock.Anything, mock.MatchedBy(func(req *draft.ChunkUploadRequest) bool {
			return req.DraftID == id && *req.FileIndex == 0 && *req.ChunkIndex == 3 && req.ChunkData == "QUJD"
		})).
		Return(nil)

	body := `{"draftId":"` + id + `","fileIndex":0,"chunkIndex":3,"chunkData":"QUJD"}`
	rec, got := doRequest(t, newDraftTestServer(svc), http.MethodPost, "/api/drafts/chunks", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, got["success"])
}

func TestDraftHTTP_UploadChunk_MissingIndex(t *testing.T) {
	body := `{"draftId":"` + uuid.NewString() + `","fileIndex":0,"chunkData":"QUJD"}`
	rec, got := doRequest(t, newDraftTestServer(mocks.NewService(t)), http.MethodPost, "/api/drafts/chunks", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "chunkIndex is required", got["error"])
}

// chunkBody builds an upload body whose total size is exactly size bytes.
func chunkBody(t *testing.T, draftID string, size int) string {
	t.Helper()
	prefix := `{"draftId":"` + draftID + `","fileIndex":0,"chunkIndex":0,"chunkData":"`
	suffix := `"}`
	pad := size - len(prefix) - len(suffix)
	require.Positive(t, pad)
	return prefix + strings.Repeat("A", pad) + suffix
}

func TestDraftHTTP_UploadChunk_AtLimit(t *testing.T) {
	svc := mocks.NewService(t)
	id := uuid.NewString()
	svc.EXPECT().UploadChunk(mock.Anything, mock.Anything).Return(nil)

	body := chunkBody(t, id, testChunkLimit)
	require.Len(t, body, testChunkLimit)
	rec, got := doRequest(t, newDraftTestServer(svc), http.MethodPost, "/api/drafts/chunks", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, got["success"])
}

func TestDraftHTTP_UploadChunk_BodyTooLarge(t *testing.T) {
	body := chunkBody(t, uuid.NewString(), testChunkLimit+1)
	rec, got := doRequest(t, newDraftTestServer(mocks.NewService(t)), http.MethodPost, "/api/drafts/chunks", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "request body exceeds 256 bytes", got["error"])
}

func TestDraftHTTP_ListChunks(t *testing.T) {
	svc := mocks.NewService(t)
	id := uuid.NewString()
	svc.EXPECT().ListChunks(mock.Anything, id, 2).Return(&draft.ChunkList{DraftID: id, FileIndex: 2, Chunks: []int{0, 1}}, nil)

	rec, got := doRequest(t, newDraftTestServer(svc), http.MethodGet, "/api/drafts/chunks?draftId="+id+"&fileIndex=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []any{float64(0), float64(1)}, got["chunks"])
}
