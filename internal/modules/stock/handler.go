package stock

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tmwansa/gearparts-backend/internal/modules/part"
)

// Handler exposes stock HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/stock", func(r chi.Router) {
		r.Get("/", h.listStock)
		r.Get("/{id}", h.getStock)
		r.Put("/{id}", h.setStock)
		r.Post("/restock", h.restock)
	})
}

func (h *Handler) listStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListStock(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError,
			map[string]string{"message": "error fetching stock", "error": err.Error()})
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) getStock(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetStock(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, item)
}

func (h *Handler) setStock(w http.ResponseWriter, r *http.Request) {
	var req SetStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	item, err := h.service.SetStock(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, item)
}

func (h *Handler) restock(w http.ResponseWriter, r *http.Request) {
	var req RestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	item, err := h.service.Restock(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"message": "stock updated successfully",
		"part":    item,
	})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, part.ErrNotFound):
		respond(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	default:
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
