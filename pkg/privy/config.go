package privy

import (
	"errors"
	"time"
)

// Config contains the configuration required to call the wallet-custody API.
type Config struct {
	AppID     string
	AppSecret string //nolint:gosec // provider credential field name
	APIURL    string

	// KeyQuorumID is attached as an additional signer to created wallets.
	KeyQuorumID string
	ChainType   string

	Timeout time.Duration
}

func (c *Config) validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.AppID == "" || c.AppSecret == "" {
		return errors.New("app_id and app_secret are required")
	}
	if c.APIURL == "" {
		return errors.New("api_url is required")
	}
	return nil
}

func (c *Config) chainType() string {
	if c.ChainType == "" {
		return defaultChainType
	}
	return c.ChainType
}
