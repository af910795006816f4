package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	apphttp "github.com/chainsafe/nft-launchpad-api/pkg/app/http"
	"github.com/chainsafe/nft-launchpad-api/pkg/auth"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the wallet endpoints on the given chi router.
// Every route requires a bearer token accepted by verifier.
func RegisterRoutes(r chi.Router, service Service, verifier auth.TokenVerifier, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireBearer(verifier, logger))
		r.Post("/api/wallet/create", apphttp.HandleError(h.create))
	})
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "missing user identity")
	}

	res, err := h.service.Provision(r.Context(), userID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}
