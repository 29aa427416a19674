package handler

import (
	"encoding/json"
	"net/http"
)

// @Summary Healthcheck del servicio de recomendaciones
// @Tags health
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "sakila-api",
	})
}
