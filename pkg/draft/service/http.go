package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/nft-launchpad-api/pkg/app/errors"
	apphttp "github.com/chainsafe/nft-launchpad-api/pkg/app/http"
	"github.com/chainsafe/nft-launchpad-api/pkg/draft"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service        Service
	chunkBodyLimit int64
	logger         *zap.Logger
}

// RegisterRoutes registers the draft endpoints on the given chi router.
// chunkBodyLimit bounds a single chunk upload body.
func RegisterRoutes(r chi.Router, service Service, chunkBodyLimit int64, logger *zap.Logger) {
	h := &HTTP{
		service:        service,
		chunkBodyLimit: chunkBodyLimit,
		logger:         logger,
	}

	r.Route("/api/drafts", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.get))
		r.Post("/", apphttp.HandleError(h.save))
		r.Delete("/", apphttp.HandleError(h.delete))
		r.Get("/exists", apphttp.HandleError(h.exists))
		r.Post("/chunks", apphttp.HandleError(h.uploadChunk))
		r.Get("/chunks", apphttp.HandleError(h.listChunks))
	})
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	wallet, err := apphttp.QueryParam(r, "wallet")
	if err != nil {
		return err
	}

	d, err := h.service.Get(r.Context(), wallet)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"draft": d})
	return nil
}

func (h *HTTP) save(w http.ResponseWriter, r *http.Request) error {
	var req draft.SaveRequest
	if err := apphttp.DecodeJSON(r, &req, apphttp.DefaultBodyLimit); err != nil {
		return err
	}

	d, err := h.service.Save(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "draft": d})
	return nil
}

func (h *HTTP) delete(w http.ResponseWriter, r *http.Request) error {
	wallet, err := apphttp.QueryParam(r, "wallet")
	if err != nil {
		return err
	}

	if err := h.service.Delete(r.Context(), wallet); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	return nil
}

func (h *HTTP) exists(w http.ResponseWriter, r *http.Request) error {
	wallet, err := apphttp.QueryParam(r, "wallet")
	if err != nil {
		return err
	}

	exists, err := h.service.Exists(r.Context(), wallet)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"exists": exists})
	return nil
}

func (h *HTTP) uploadChunk(w http.ResponseWriter, r *http.Request) error {
	var req draft.ChunkUploadRequest
	if err := apphttp.DecodeJSON(r, &req, h.chunkBodyLimit); err != nil {
		return err
	}

	if err := h.service.UploadChunk(r.Context(), &req); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	return nil
}

func (h *HTTP) listChunks(w http.ResponseWriter, r *http.Request) error {
	draftID, err := apphttp.QueryParam(r, "draftId")
	if err != nil {
		return err
	}
	rawIndex, err := apphttp.QueryParam(r, "fileIndex")
	if err != nil {
		return err
	}
	fileIndex, err := strconv.Atoi(rawIndex)
	if err != nil {
		return apperrors.BadRequestError(err, "fileIndex is invalid")
	}

	list, err := h.service.ListChunks(r.Context(), draftID, fileIndex)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, list)
	return nil
}
