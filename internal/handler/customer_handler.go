package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Chispasgg/sakila-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(s *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: s}
}

// @Summary Historial de alquileres de un cliente
// @Tags customers
// @Produce json
// @Param id path int true "customerId"
// @Success 200 {array} models.RentalDetail
// @Failure 404 {string} string "cliente no existe"
// @Router /customers/{id}/rentals [get]
func (h *CustomerHandler) GetRentals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customerID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	rentals, err := h.svc.Rentals(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(rentals)
}
