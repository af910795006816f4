package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const minimalYAML = `
database:
  url: ${TEST_DB_URL}
privy:
  app_id: app-123
  app_secret: ${TEST_PRIVY_SECRET}
  key_quorum_id: kq-1
pinata:
  api_key: pk
  secret_key: sk
zapper:
  api_key: zk
`

func TestParseAPIServer_DefaultsAndEnvExpansion(t *testing.T) {
	t.Setenv("TEST_DB_URL", "postgres://u:p@db.example.supabase.co:5432/postgres")
	t.Setenv("TEST_PRIVY_SECRET", "s3cret")

	cfg, err := ParseAPIServer([]byte(minimalYAML))
	require.NoError(t, err)

	require.Equal(t, "postgres://u:p@db.example.supabase.co:5432/postgres", cfg.Database.URL)
	require.Equal(t, "s3cret", cfg.Privy.AppSecret)

	require.Equal(t, "0.0.0.0:8081", cfg.Server.Addr())
	require.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	require.EqualValues(t, 8<<20, cfg.Server.ChunkBodyLimit)
	require.Equal(t, "https://api.pinata.cloud", cfg.Pinata.APIURL)
	require.Equal(t, "https://gateway.pinata.cloud/ipfs/", cfg.IPFS.GatewayURL)
	require.Equal(t, "privy.io", cfg.Privy.Issuer)
	require.Equal(t, "https://auth.privy.io/api/v1/apps/app-123/jwks.json", cfg.Privy.GetJWKSURL())
	require.Equal(t, 50, cfg.Featured.CreationsLimit)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "development", cfg.Logging.Environment)
}

func TestParseAPIServer_OverridesDefaults(t *testing.T) {
	raw := minimalYAML + `
server:
  port: 9000
  request_timeout: 5s
logging:
  level: debug
  format: console
`
	t.Setenv("TEST_DB_URL", "postgres://x")
	t.Setenv("TEST_PRIVY_SECRET", "s")

	cfg, err := ParseAPIServer([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestParseAPIServer_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing privy secret",
			raw: `
database: {host: localhost}
privy: {app_id: a, key_quorum_id: k}
pinata: {api_key: a, secret_key: b}
zapper: {api_key: z}
`,
		},
		{
			name: "missing database host and url",
			raw: `
privy: {app_id: a, app_secret: s, key_quorum_id: k}
pinata: {api_key: a, secret_key: b}
zapper: {api_key: z}
`,
		},
		{
			name: "unknown field",
			raw: `
database: {host: localhost, hostname: typo}
privy: {app_id: a, app_secret: s, key_quorum_id: k}
pinata: {api_key: a, secret_key: b}
zapper: {api_key: z}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAPIServer([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestLoadAPIServer_MissingFile(t *testing.T) {
	_, err := LoadAPIServer(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "failed to read config file")
}

func TestLoadAPIServer_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("TEST_DB_URL", "postgres://file")
	t.Setenv("TEST_PRIVY_SECRET", "s")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o600))

	cfg, err := LoadAPIServer(path)
	require.NoError(t, err)
	require.Equal(t, "postgres://file", cfg.Database.URL)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "warn", Format: "json", OutputPath: "stdout"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.ErrorContains(t, err, "invalid log level")
}

func TestNewLogger_JSONFields(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger(LoggingConfig{Level: "info", Format: "json", OutputPath: out, Environment: "staging"})
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("hello")
	_ = logger.Sync()

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "launchpad-api", entry["app"])
	require.Equal(t, "staging", entry["env"])
	require.Contains(t, entry, "timestamp")
}
