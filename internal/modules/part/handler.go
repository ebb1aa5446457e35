package part

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes part HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/parts", func(r chi.Router) {
		r.Get("/", h.listParts) // GET /api/v1/parts?supplier_id=...
		r.Post("/", h.createPart)
		r.Get("/{id}", h.getPart)
		r.Put("/{id}", h.updatePart)
		r.Delete("/{id}", h.deletePart)
	})
}

func (h *Handler) listParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.service.ListParts(r.Context(), r.URL.Query().Get("supplier_id"))
	if err != nil {
		respond(w, http.StatusInternalServerError,
			map[string]string{"message": "error fetching parts", "error": err.Error()})
		return
	}
	respond(w, http.StatusOK, parts)
}

func (h *Handler) createPart(w http.ResponseWriter, r *http.Request) {
	var req SavePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	p, err := h.service.CreatePart(r.Context(), req)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) getPart(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetPart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) updatePart(w http.ResponseWriter, r *http.Request) {
	var req SavePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	p, err := h.service.UpdatePart(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"message": err.Error()})
			return
		}
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deletePart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePart(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "part deleted successfully"})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		respond(w, http.StatusNotFound, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusInternalServerError,
		map[string]string{"message": "unexpected error", "error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
