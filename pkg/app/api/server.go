// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/chainsafe/nft-launchpad-api/internal/metrics"
	apphttp "github.com/chainsafe/nft-launchpad-api/pkg/app/http"
	"github.com/chainsafe/nft-launchpad-api/pkg/auth"
	collectionservice "github.com/chainsafe/nft-launchpad-api/pkg/collection/service"
	"github.com/chainsafe/nft-launchpad-api/pkg/collectionstore"
	"github.com/chainsafe/nft-launchpad-api/pkg/config"
	draftservice "github.com/chainsafe/nft-launchpad-api/pkg/draft/service"
	"github.com/chainsafe/nft-launchpad-api/pkg/draftstore"
	handleservice "github.com/chainsafe/nft-launchpad-api/pkg/handle/service"
	"github.com/chainsafe/nft-launchpad-api/pkg/pgutil"
	pinservice "github.com/chainsafe/nft-launchpad-api/pkg/pin/service"
	"github.com/chainsafe/nft-launchpad-api/pkg/pinata"
	"github.com/chainsafe/nft-launchpad-api/pkg/pinstore"
	"github.com/chainsafe/nft-launchpad-api/pkg/privy"
	"github.com/chainsafe/nft-launchpad-api/pkg/profilestore"
	walletservice "github.com/chainsafe/nft-launchpad-api/pkg/wallet/service"
	"github.com/chainsafe/nft-launchpad-api/pkg/zapper"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

// services bundles the logging-wrapped services mounted on the router.
type services struct {
	handles     handleservice.Service
	drafts      draftservice.Service
	pins        pinservice.Service
	collections collectionservice.Service
	wallets     walletservice.Service
	verifier    auth.TokenVerifier
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting launchpad API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	logger.Info("Connected to database", zap.String("database", cfg.Database.Database))

	svcs, err := s.buildServices(db, logger)
	if err != nil {
		return err
	}

	router := s.setupRouter(svcs, logger)
	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// buildServices constructs every provider client once and injects it into
// the services that need it.
func (s *Server) buildServices(db *bun.DB, logger *zap.Logger) (*services, error) {
	cfg := s.cfg

	privyClient, err := privy.New(&privy.Config{
		AppID:       cfg.Privy.AppID,
		AppSecret:   cfg.Privy.AppSecret,
		APIURL:      cfg.Privy.APIURL,
		KeyQuorumID: cfg.Privy.KeyQuorumID,
		ChainType:   cfg.Privy.ChainType,
		Timeout:     cfg.Privy.Timeout,
	},
		privy.WithLogger(logger),
		privy.WithHTTPClient(instrumentedClient("privy", cfg.Privy.Timeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("create privy client: %w", err)
	}

	pinataClient, err := pinata.New(&pinata.Config{
		APIKey:    cfg.Pinata.APIKey,
		SecretKey: cfg.Pinata.SecretKey,
		APIURL:    cfg.Pinata.APIURL,
		Timeout:   cfg.Pinata.Timeout,
	},
		pinata.WithLogger(logger),
		pinata.WithHTTPClient(instrumentedClient("pinata", cfg.Pinata.Timeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("create pinata client: %w", err)
	}

	zapperClient, err := zapper.New(&zapper.Config{
		APIKey:     cfg.Zapper.APIKey,
		GraphQLURL: cfg.Zapper.GraphQLURL,
		Timeout:    cfg.Zapper.Timeout,
	},
		zapper.WithLogger(logger),
		zapper.WithHTTPClient(instrumentedClient("zapper", cfg.Zapper.Timeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("create zapper client: %w", err)
	}

	verifier := auth.NewJWTValidator(
		cfg.Privy.GetJWKSURL(),
		cfg.Privy.Issuer,
		cfg.Privy.AppID,
		instrumentedClient("privy_jwks", cfg.Privy.Timeout),
	)

	profileStore := profilestore.NewStore(db)
	draftStore := draftstore.NewStore(db)
	pinStore := pinstore.NewStore(db)
	collectionStore := collectionstore.NewStore(db)

	return &services{
		handles: handleservice.NewLog(
			handleservice.NewService(profileStore, privyClient, logger), logger),
		drafts: draftservice.NewLog(
			draftservice.NewService(draftStore, logger), logger),
		pins: pinservice.NewLog(
			pinservice.NewService(pinStore, pinataClient, logger), logger),
		collections: collectionservice.NewLog(
			collectionservice.NewService(
				collectionStore,
				draftStore,
				pinStore,
				zapperClient,
				collectionservice.Config{
					GatewayURL:     cfg.IPFS.GatewayURL,
					CreationsLimit: cfg.Featured.CreationsLimit,
				},
				logger,
			), logger),
		wallets: walletservice.NewLog(
			walletservice.NewService(privyClient, logger), logger),
		verifier: verifier,
	}, nil
}

func (s *Server) setupRouter(svcs *services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	handleservice.RegisterRoutes(r, svcs.handles, logger)
	draftservice.RegisterRoutes(r, svcs.drafts, s.cfg.Server.ChunkBodyLimit, logger)
	pinservice.RegisterRoutes(r, svcs.pins, logger)
	collectionservice.RegisterRoutes(r, svcs.collections, logger)
	walletservice.RegisterRoutes(r, svcs.wallets, svcs.verifier, logger)

	return r
}

// instrumentedClient returns an HTTP client whose calls are recorded under provider.
func instrumentedClient(provider string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: metrics.InstrumentTransport(provider, http.DefaultTransport),
	}
}
