package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/nft-launchpad-api/pkg/auth"
	"github.com/chainsafe/nft-launchpad-api/pkg/wallet"
	"github.com/chainsafe/nft-launchpad-api/pkg/wallet/service/mocks"
)

type stubVerifier map[string]string

func (s stubVerifier) ValidateToken(_ context.Context, token string) (*auth.Claims, error) {
	sub, ok := s[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: sub}}, nil
}

func newWalletTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, stubVerifier{"good": testUserID}, zap.NewNop())
	return r
}

func post(t *testing.T, h http.Handler, authz string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/wallet/create", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return rec, got
}

func TestWalletHTTP_Create(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Provision(mock.Anything, testUserID).
		Return(&wallet.Provisioned{Success: true, Wallet: testAddress, Existing: true}, nil)

	rec, got := post(t, newWalletTestServer(svc), "Bearer good")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, got["success"])
	require.Equal(t, testAddress, got["wallet"])
	require.Equal(t, true, got["existing"])
}

func TestWalletHTTP_Unauthorized(t *testing.T) {
	tests := []struct {
		name  string
		authz string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic good"},
		{"invalid token", "Bearer bad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The service mock has no expectations: any call fails the test.
			rec, got := post(t, newWalletTestServer(mocks.NewService(t)), tt.authz)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.EqualValues(t, http.StatusUnauthorized, got["code"])
		})
	}
}
