package zapper

import (
	"errors"
	"time"
)

// Config contains the portfolio API credentials and endpoint.
type Config struct {
	APIKey     string
	GraphQLURL string
	Timeout    time.Duration
}

func (c *Config) validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.APIKey == "" {
		return errors.New("api_key is required")
	}
	if c.GraphQLURL == "" {
		return errors.New("graphql_url is required")
	}
	return nil
}
