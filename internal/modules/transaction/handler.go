package transaction

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes transaction HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/transactions", func(r chi.Router) {
		r.Get("/", h.listTransactions)
		r.Post("/", h.recordTransaction)
		r.Get("/{id}", h.getTransaction)
		r.Get("/order/{order_id}", h.getOrderTransaction)
		r.Put("/{id}", h.overrideStatus)
		r.Delete("/{id}", h.deleteTransaction)
	})
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.service.ListTransactions(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError,
			map[string]string{"message": "error fetching transactions", "error": err.Error()})
		return
	}
	respond(w, http.StatusOK, txns)
}

func (h *Handler) recordTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	t, err := h.service.RecordTransaction(r.Context(), req)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusCreated, t)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTransaction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) getOrderTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetOrderTransaction(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) overrideStatus(w http.ResponseWriter, r *http.Request) {
	var req OverrideStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	t, err := h.service.OverrideStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"message": err.Error()})
			return
		}
		respond(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "transaction deleted successfully"})
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
