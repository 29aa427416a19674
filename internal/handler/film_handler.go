// internal/handler/film_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Chispasgg/sakila-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type FilmHandler struct {
	svc *service.FilmService
}

func NewFilmHandler(s *service.FilmService) *FilmHandler { return &FilmHandler{svc: s} }

// @Summary Get film
// @Tags films
// @Produce json
// @Param id path int true "filmId"
// @Success 200 {object} models.FilmDoc
// @Router /films/{id} [get]
func (h *FilmHandler) GetFilm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	f, err := h.svc.GetFilm(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if f == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(f)
}

// @Summary Buscar / listar películas (paginado)
// @Tags films
// @Produce json
// @Param q query string false "búsqueda por título"
// @Param category query string false "filtrar por categoría"
// @Param year_from query int false "año desde"
// @Param year_to query int false "año hasta"
// @Param limit query int false "límite"
// @Param offset query int false "offset"
// @Success 200 {array} models.FilmDoc
// @Router /films/search [get]
func (h *FilmHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	yearFrom, _ := strconv.Atoi(r.URL.Query().Get("year_from"))
	yearTo, _ := strconv.Atoi(r.URL.Query().Get("year_to"))

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	films, err := h.svc.Search(r.Context(), q, category, yearFrom, yearTo, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(films)
}

// @Summary Top películas por cantidad de alquileres
// @Tags films
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.FilmDoc
// @Router /films/top [get]
func (h *FilmHandler) Top(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	films, err := h.svc.Top(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(films)
}
