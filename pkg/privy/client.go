// Package privy is a thin client for the wallet-custody provider REST API:
// user lookup, user directory search and server-side wallet creation.
package privy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultChainType = "ethereum"

	// Limit error-body reads so we don't accidentally slurp huge responses.
	maxErrBodyBytes = 4096

	headerAppID          = "privy-app-id"
	headerIdempotencyKey = "privy-idempotency-key"
)

// ErrUserNotFound is returned when the provider has no user with the given id.
var ErrUserNotFound = errors.New("privy user not found")

// Privy defines the provider operations used by the service layer.
type Privy interface {
	GetUser(ctx context.Context, userID string) (*User, error)
	SearchUsers(ctx context.Context, term string) ([]User, error)
	CreateWallet(ctx context.Context, userID, idempotencyKey string) (*Wallet, error)
}

var _ Privy = (*Client)(nil)

// Client implements the Privy interface over HTTP.
type Client struct {
	cfg        *Config
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a new privy client.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid privy config: %w", err)
	}
	s := applyOptions(opts)
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		httpClient: s.httpClient,
		logger:     s.logger,
	}, nil
}

// GetUser fetches a user with their linked accounts.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	status, err := c.do(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(userID), nil, nil, &user)
	if status == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchUsers queries the user directory with a free-text term.
// Matching is fuzzy on the provider side; callers must filter the result.
func (c *Client) SearchUsers(ctx context.Context, term string) ([]User, error) {
	var resp searchUsersResponse
	if _, err := c.do(ctx, http.MethodPost, "/v1/users/search", searchUsersRequest{SearchTerm: term}, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateWallet creates a wallet owned by userID with the configured key quorum
// as an additional signer. idempotencyKey lets the provider collapse concurrent
// creations for the same owner into one wallet.
func (c *Client) CreateWallet(ctx context.Context, userID, idempotencyKey string) (*Wallet, error) {
	req := createWalletRequest{
		ChainType: c.cfg.chainType(),
		Owner:     walletOwner{UserID: userID},
	}
	if c.cfg.KeyQuorumID != "" {
		req.AdditionalSigners = []additionalSigner{{SignerID: c.cfg.KeyQuorumID}}
	}

	var headers http.Header
	if idempotencyKey != "" {
		headers = http.Header{headerIdempotencyKey: []string{idempotencyKey}}
	}

	var wallet Wallet
	if _, err := c.do(ctx, http.MethodPost, "/v1/wallets", req, headers, &wallet); err != nil {
		return nil, err
	}
	if wallet.Address == "" {
		return nil, errors.New("wallet creation response missing address")
	}
	return &wallet, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, headers http.Header, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AppID, c.cfg.AppSecret)
	req.Header.Set(headerAppID, c.cfg.AppID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		for _, vv := range v {
			req.Header.Add(k, vv)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		return 0, fmt.Errorf("call privy %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, readHTTPError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode privy response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// readHTTPError prefers the provider's error message and falls back to the raw body.
func readHTTPError(resp *http.Response) error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
	if err != nil {
		return fmt.Errorf("privy returned %d and body read failed: %w", resp.StatusCode, err)
	}

	var apiErr apiError
	if json.Unmarshal(b, &apiErr) == nil {
		if apiErr.Error != "" {
			return fmt.Errorf("privy returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		if apiErr.Message != "" {
			return fmt.Errorf("privy returned %d: %s", resp.StatusCode, apiErr.Message)
		}
	}
	return fmt.Errorf("privy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
}
