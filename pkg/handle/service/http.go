package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/nft-launchpad-api/pkg/app/http"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the handle endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/handles/resolve", apphttp.HandleError(h.resolve))
	r.Get("/api/handles/lookup", apphttp.HandleError(h.lookup))
}

func (h *HTTP) resolve(w http.ResponseWriter, r *http.Request) error {
	raw, err := apphttp.QueryParam(r, "handle")
	if err != nil {
		return err
	}

	res, err := h.service.Resolve(r.Context(), raw)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) lookup(w http.ResponseWriter, r *http.Request) error {
	raw, err := apphttp.QueryParam(r, "handle")
	if err != nil {
		return err
	}

	entry, err := h.service.LookupDirectory(r.Context(), raw)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, entry)
	return nil
}
