package privy

import (
	"net/http"

	"go.uber.org/zap"
)

// Option configures the privy client.
type Option func(*settings)

type settings struct {
	logger     *zap.Logger
	httpClient *http.Client
}

// WithLogger sets a custom logger for the privy client.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithHTTPClient sets a custom HTTP client for provider requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

func applyOptions(opts []Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
