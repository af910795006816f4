package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/nft-launchpad-api/pkg/app/http"
	"github.com/chainsafe/nft-launchpad-api/pkg/collection"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the collection metadata endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/avatar", apphttp.HandleError(h.getAvatar))
	r.Post("/api/avatar", apphttp.HandleError(h.setAvatar))
	r.Get("/api/collection-image", apphttp.HandleError(h.collectionImage))
	r.Post("/api/collections", apphttp.HandleError(h.registerContract))
	r.Put("/api/collections/cid", apphttp.HandleError(h.updateCID))
	r.Get("/api/featured-artists", apphttp.HandleError(h.featuredArtists))
}

func (h *HTTP) getAvatar(w http.ResponseWriter, r *http.Request) error {
	addr, err := apphttp.QueryParam(r, "address")
	if err != nil {
		return err
	}

	avatar, err := h.service.GetAvatar(r.Context(), addr)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"avatar": avatar})
	return nil
}

func (h *HTTP) setAvatar(w http.ResponseWriter, r *http.Request) error {
	var req collection.SetAvatarRequest
	if err := apphttp.DecodeJSON(r, &req, apphttp.DefaultBodyLimit); err != nil {
		return err
	}

	a, err := h.service.SetAvatar(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "data": a})
	return nil
}

func (h *HTTP) collectionImage(w http.ResponseWriter, r *http.Request) error {
	addr, err := apphttp.QueryParam(r, "address")
	if err != nil {
		return err
	}
	network, err := apphttp.QueryParam(r, "network")
	if err != nil {
		return err
	}

	img, err := h.service.CollectionImage(r.Context(), addr, network)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, img)
	return nil
}

func (h *HTTP) registerContract(w http.ResponseWriter, r *http.Request) error {
	var req collection.RegisterContractRequest
	if err := apphttp.DecodeJSON(r, &req, apphttp.DefaultBodyLimit); err != nil {
		return err
	}

	c, err := h.service.RegisterContract(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "contract": c})
	return nil
}

func (h *HTTP) updateCID(w http.ResponseWriter, r *http.Request) error {
	var req collection.UpdateCIDRequest
	if err := apphttp.DecodeJSON(r, &req, apphttp.DefaultBodyLimit); err != nil {
		return err
	}

	res, err := h.service.UpdateCID(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) featuredArtists(w http.ResponseWriter, r *http.Request) error {
	res, err := h.service.FeaturedArtists(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}
