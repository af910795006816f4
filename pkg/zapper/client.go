// Package zapper is a thin client for the portfolio GraphQL API, used to look
// up collection imagery by contract address.
package zapper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	maxErrBodyBytes = 4096

	headerAPIKey = "x-zapper-api-key"

	collectionImageQuery = `query NftCollectionImage($collectionAddress: String!, $chainId: Int!) {
  nftCollectionV2(collectionAddress: $collectionAddress, chainId: $chainId) {
    address
    name
    medias {
      logo { original }
      banner { original }
    }
  }
}`
)

// ErrUnsupportedNetwork is returned for network names without a known chain id.
var ErrUnsupportedNetwork = errors.New("unsupported network")

// Zapper defines the portfolio API operations used by the service layer.
type Zapper interface {
	CollectionImage(ctx context.Context, address, network string) (*CollectionImage, error)
}

var _ Zapper = (*Client)(nil)

// Client implements the Zapper interface over HTTP.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a new zapper client.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid zapper config: %w", err)
	}
	s := applyOptions(opts)
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, httpClient: s.httpClient, logger: s.logger}, nil
}

// CollectionImage returns the collection logo, or its banner when no logo is set.
// A nil image with a nil error means the collection has neither.
func (c *Client) CollectionImage(ctx context.Context, address, network string) (*CollectionImage, error) {
	chainID, ok := ChainID(network)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, network)
	}

	body, err := json.Marshal(graphQLRequest{
		Query: collectionImageQuery,
		Variables: map[string]any{
			"collectionAddress": address,
			"chainId":           chainID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GraphQLURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("call zapper: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
		return nil, fmt.Errorf("zapper returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out collectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode zapper response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("zapper graphql error: %s", out.Errors[0].Message)
	}

	coll := out.Data.NFTCollectionV2
	if coll == nil {
		return nil, nil
	}
	if m := coll.Medias.Logo; m != nil && m.Original != "" {
		return &CollectionImage{URL: m.Original, Source: SourceLogo}, nil
	}
	if m := coll.Medias.Banner; m != nil && m.Original != "" {
		return &CollectionImage{URL: m.Original, Source: SourceBanner}, nil
	}
	return nil, nil
}
