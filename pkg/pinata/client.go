// Package pinata is a thin client for the IPFS pin service.
package pinata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// PinListPageSize is the fixed page size used for pin listings.
	PinListPageSize = 100

	maxErrBodyBytes = 4096

	notPinnedReason = "CURRENT_USER_HAS_NOT_PINNED_CID"
)

// ErrNotPinned is returned by Unpin when the CID is not pinned by this account.
var ErrNotPinned = errors.New("cid is not pinned")

// Pinata defines the pin service operations used by the service layer.
type Pinata interface {
	Unpin(ctx context.Context, cid string) error
	PinList(ctx context.Context, nameFilter string) (*PinList, error)
}

var _ Pinata = (*Client)(nil)

// Client implements the Pinata interface over HTTP.
type Client struct {
	cfg        *Config
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a new pinata client.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid pinata config: %w", err)
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

// Unpin releases a CID. A CID the account has not pinned yields ErrNotPinned.
func (c *Client) Unpin(ctx context.Context, cid string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/pinning/unpin/"+url.PathEscape(cid), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
	if resp.StatusCode == http.StatusNotFound || strings.Contains(string(b), notPinnedReason) {
		return ErrNotPinned
	}
	return httpError(resp.StatusCode, b)
}

// PinList returns currently pinned objects, one page of PinListPageSize rows.
// nameFilter, when set, restricts results to pins whose metadata name contains it.
func (c *Client) PinList(ctx context.Context, nameFilter string) (*PinList, error) {
	q := url.Values{}
	q.Set("status", "pinned")
	q.Set("pageLimit", strconv.Itoa(PinListPageSize))
	if nameFilter != "" {
		q.Set("metadata[name]", nameFilter)
	}

	resp, err := c.do(ctx, http.MethodGet, "/data/pinList?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
		return nil, httpError(resp.StatusCode, b)
	}

	var list PinList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode pin list: %w", err)
	}
	if list.Rows == nil {
		list.Rows = []Pin{}
	}
	return &list, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("pinata_api_key", c.cfg.APIKey)
	req.Header.Set("pinata_secret_api_key", c.cfg.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("call pinata %s: %w", method, err)
	}
	return resp, nil
}

type apiError struct {
	Error any `json:"error"`
}

// httpError surfaces the provider's error text, which may be a string or an
// object with a reason/details pair.
func httpError(status int, body []byte) error {
	var e apiError
	if json.Unmarshal(body, &e) == nil && e.Error != nil {
		switch v := e.Error.(type) {
		case string:
			return fmt.Errorf("pinata returned %d: %s", status, v)
		case map[string]any:
			if d, ok := v["details"].(string); ok && d != "" {
				return fmt.Errorf("pinata returned %d: %s", status, d)
			}
			if r, ok := v["reason"].(string); ok && r != "" {
				return fmt.Errorf("pinata returned %d: %s", status, r)
			}
		}
	}
	return fmt.Errorf("pinata returned %d: %s", status, strings.TrimSpace(string(body)))
}
