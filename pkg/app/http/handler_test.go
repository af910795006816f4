package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
)

func TestHandleError_ServiceErrorWithDetails(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return apperrors.WithDetails(
			apperrors.ResourceNotFoundError(nil, "handle not found"),
			map[string]any{"searched": "alice"},
		)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "handle not found", got["error"])
	require.Equal(t, "alice", got["searched"])
	require.EqualValues(t, http.StatusNotFound, got["code"])
}

func TestHandleError_UnknownError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return errors.New("raw failure")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Internal Server Error")
	require.NotContains(t, rec.Body.String(), "raw failure")
}

type decodeTarget struct {
	Wallet string `json:"wallet" validate:"required"`
	Mode   string `json:"uploadMode" validate:"omitempty,oneof=images prebuilt"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		limit   int64
		wantMsg string
	}{
		{name: "valid", body: `{"wallet":"0xabc","uploadMode":"images"}`},
		{name: "invalid json", body: `{bad`, wantMsg: "invalid JSON"},
		{name: "missing field", body: `{}`, wantMsg: "wallet is required"},
		{name: "bad enum", body: `{"wallet":"0x1","uploadMode":"zip"}`, wantMsg: "uploadMode must be one of [images prebuilt]"},
		{name: "too large", body: `{"wallet":"0x0000000000"}`, limit: 8, wantMsg: "request body exceeds 8 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			var dst decodeTarget
			err := DecodeJSON(req, &dst, tt.limit)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			var svcErr *apperrors.ServiceError
			require.ErrorAs(t, err, &svcErr)
			require.Equal(t, apperrors.CategoryDataError, svcErr.Category)
			require.Equal(t, tt.wantMsg, svcErr.Message)
		})
	}
}

func TestQueryParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?handle=%20alice%20", nil)
	v, err := QueryParam(req, "handle")
	require.NoError(t, err)
	require.Equal(t, "alice", v)

	_, err = QueryParam(req, "wallet")
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}
