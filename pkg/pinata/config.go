package pinata

import (
	"errors"
	"time"
)

// Config contains the pin service credentials and endpoint.
type Config struct {
	APIKey    string
	SecretKey string //nolint:gosec // provider credential field name
	APIURL    string
	Timeout   time.Duration
}

func (c *Config) validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.APIKey == "" || c.SecretKey == "" {
		return errors.New("api_key and secret_key are required")
	}
	if c.APIURL == "" {
		return errors.New("api_url is required")
	}
	return nil
}
