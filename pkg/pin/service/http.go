package service

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/nft-launchpad-api/pkg/app/http"
	"github.com/chainsafe/nft-launchpad-api/pkg/pin"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the pin endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/pins", apphttp.HandleError(h.list))
	r.Post("/api/pins/track", apphttp.HandleError(h.track))
	r.Put("/api/pins/track", apphttp.HandleError(h.update))
	r.Post("/api/pins/unpin", apphttp.HandleError(h.unpin))
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	res, err := h.service.ListPins(r.Context(),
		strings.TrimSpace(q.Get("wallet")),
		strings.TrimSpace(q.Get("nameFilter")),
	)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) track(w http.ResponseWriter, r *http.Request) error {
	var req pin.TrackRequest
	if err := apphttp.DecodeJSON(r, &req, apphttp.DefaultBodyLimit); err != nil {
		return err
	}

	t, err := h.service.Track(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "tracking": t})
	return nil
}

func (h *HTTP) update(w http.ResponseWriter, r *http.Request) error {
	var req pin.UpdateRequest
	if err := apphttp.DecodeJSON(r, &req, apphttp.DefaultBodyLimit); err != nil {
		return err
	}

	t, err := h.service.Update(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "tracking": t})
	return nil
}

func (h *HTTP) unpin(w http.ResponseWriter, r *http.Request) error {
	var req pin.UnpinRequest
	if err := apphttp.DecodeJSON(r, &req, apphttp.DefaultBodyLimit); err != nil {
		return err
	}

	res, err := h.service.Unpin(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}
