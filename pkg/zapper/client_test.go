package zapper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCollection = "0x52908400098527886e0f7030069857d2e4169ee7"

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(&Config{APIKey: "zkey", GraphQLURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestClient_CollectionImage(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		wantURL    string
		wantSource string
		wantNil    bool
		wantErr    bool
	}{
		{
			name:       "logo preferred",
			response:   `{"data":{"nftCollectionV2":{"medias":{"logo":{"original":"https://img/logo.png"},"banner":{"original":"https://img/banner.png"}}}}}`,
			wantURL:    "https://img/logo.png",
			wantSource: SourceLogo,
		},
		{
			name:       "banner fallback",
			response:   `{"data":{"nftCollectionV2":{"medias":{"logo":null,"banner":{"original":"https://img/banner.png"}}}}}`,
			wantURL:    "https://img/banner.png",
			wantSource: SourceBanner,
		},
		{
			name:     "no media",
			response: `{"data":{"nftCollectionV2":{"medias":{}}}}`,
			wantNil:  true,
		},
		{
			name:     "unknown collection",
			response: `{"data":{"nftCollectionV2":null}}`,
			wantNil:  true,
		},
		{
			name:     "graphql error",
			response: `{"errors":[{"message":"rate limited"}]}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "zkey", r.Header.Get("x-zapper-api-key"))
				var req graphQLRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				require.Equal(t, testCollection, req.Variables["collectionAddress"])
				require.EqualValues(t, 8453, req.Variables["chainId"])
				_, _ = w.Write([]byte(tt.response))
			})

			img, err := c.CollectionImage(context.Background(), testCollection, "base")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				require.Nil(t, img)
				return
			}
			require.Equal(t, tt.wantURL, img.URL)
			require.Equal(t, tt.wantSource, img.Source)
		})
	}
}

func TestClient_CollectionImage_UnsupportedNetwork(t *testing.T) {
	c := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := c.CollectionImage(context.Background(), testCollection, "solana")
	require.ErrorIs(t, err, ErrUnsupportedNetwork)
}
