package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Chispasgg/sakila-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type FeedbackHandler struct {
	svc *service.FeedbackService
}

func NewFeedbackHandler(s *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: s}
}

// @Summary Registrar feedback sobre una recomendación
// @Tags feedback
// @Accept json
// @Produce json
// @Param body body service.FeedbackInput true "Datos del feedback"
// @Success 201 {object} models.FeedbackDoc
// @Failure 400 {string} string "body inválido (strategy requerido)"
// @Failure 404 {string} string "cliente no existe"
// @Router /feedback [post]
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var in service.FeedbackInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Strategy == "" {
		http.Error(w, "body inválido (strategy requerido)", http.StatusBadRequest)
		return
	}

	fb, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(fb)
}

// @Summary Feedback dado por un cliente
// @Tags feedback
// @Produce json
// @Param id path int true "customerId"
// @Success 200 {array} models.FeedbackDoc
// @Failure 404 {string} string "cliente no existe"
// @Router /customers/{id}/feedback [get]
func (h *FeedbackHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customerID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	items, err := h.svc.ListByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}
