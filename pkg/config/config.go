// Package config loads the API server configuration from a YAML file.
//
// Values of the form ${NAME} are expanded from the environment before
// decoding, so secrets (database password, Privy app secret, Pinata keys,
// Zapper key) never need to be committed to the file.
package config

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// APIServerConfig represents the launchpad API server configuration
type APIServerConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Privy    PrivyConfig    `yaml:"privy"`
	Pinata   PinataConfig   `yaml:"pinata"`
	Zapper   ZapperConfig   `yaml:"zapper"`
	IPFS     IPFSConfig     `yaml:"ipfs"`
	Featured FeaturedConfig `yaml:"featured"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8081" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
	// ChunkBodyLimit bounds the body of a single chunk upload request.
	ChunkBodyLimit int64 `yaml:"chunk_body_limit" default:"8388608"`
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig contains database connection settings.
// When URL is set (e.g. the Supabase pooler connection string) it takes
// precedence over the discrete fields.
type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host" validate:"required_without=URL"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"postgres"`
	SSLMode  string `yaml:"ssl_mode" default:"require" validate:"oneof=disable require verify-full"`
}

// PrivyConfig contains wallet-custody provider settings
type PrivyConfig struct {
	AppID     string `yaml:"app_id" validate:"required"`
	AppSecret string `yaml:"app_secret" validate:"required"`
	APIURL    string `yaml:"api_url" default:"https://api.privy.io" validate:"url"`
	AuthURL   string `yaml:"auth_url" default:"https://auth.privy.io" validate:"url"`
	// JWKSURL overrides the app verification key set location.
	// Defaults to <auth_url>/api/v1/apps/<app_id>/jwks.json.
	JWKSURL string `yaml:"jwks_url" validate:"omitempty,url"`
	Issuer  string `yaml:"issuer" default:"privy.io"`
	// KeyQuorumID is the co-signing key group attached to every created wallet.
	KeyQuorumID string        `yaml:"key_quorum_id" validate:"required"`
	ChainType   string        `yaml:"chain_type" default:"ethereum"`
	Timeout     time.Duration `yaml:"timeout" default:"15s"`
}

// GetJWKSURL returns the configured JWKS URL or the provider default.
func (c *PrivyConfig) GetJWKSURL() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	return fmt.Sprintf("%s/api/v1/apps/%s/jwks.json", c.AuthURL, c.AppID)
}

// PinataConfig contains IPFS pin service settings
type PinataConfig struct {
	APIKey    string        `yaml:"api_key" validate:"required"`
	SecretKey string        `yaml:"secret_key" validate:"required"`
	APIURL    string        `yaml:"api_url" default:"https://api.pinata.cloud" validate:"url"`
	Timeout   time.Duration `yaml:"timeout" default:"30s"`
}

// ZapperConfig contains portfolio API settings
type ZapperConfig struct {
	APIKey     string        `yaml:"api_key" validate:"required"`
	GraphQLURL string        `yaml:"graphql_url" default:"https://public.zapper.xyz/graphql" validate:"url"`
	Timeout    time.Duration `yaml:"timeout" default:"15s"`
}

// IPFSConfig contains IPFS gateway settings
type IPFSConfig struct {
	GatewayURL string `yaml:"gateway_url" default:"https://gateway.pinata.cloud/ipfs/" validate:"url"`
}

// FeaturedConfig bounds the featured-artists listing
type FeaturedConfig struct {
	CreationsLimit int `yaml:"creations_limit" default:"50" validate:"min=1,max=500"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
	// Environment is stamped on every entry as "env".
	Environment string `yaml:"environment" default:"development"`
}

// LoadAPIServer loads API server configuration from file
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAPIServer(raw)
}

// ParseAPIServer decodes, defaults and validates raw YAML configuration.
func ParseAPIServer(raw []byte) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	expanded := os.ExpandEnv(string(raw))
	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
