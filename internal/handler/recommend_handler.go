package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Chispasgg/sakila-api/internal/models"
	"github.com/Chispasgg/sakila-api/internal/service"
	"github.com/Chispasgg/sakila-api/internal/simclient"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// V1Recommender es la estrategia por reglas.
type V1Recommender interface {
	Recommend(ctx context.Context, customerID int, focus service.FocusV1) (*models.V1Result, error)
}

// V2Recommender es la estrategia ponderada.
type V2Recommender interface {
	Recommend(ctx context.Context, customerID int, focus string) ([]models.RecommendedFilm, error)
}

// KeywordRecommender es la estrategia por afinidad temática.
type KeywordRecommender interface {
	Recommend(ctx context.Context, customerID int) (*models.V1Result, error)
}

// SimilarityClient habla con el servicio externo de similitud.
type SimilarityClient interface {
	Recommendations(ctx context.Context, customerID int, focus string) (json.RawMessage, error)
}

type RecommendHandler struct {
	v1  V1Recommender
	v2  V2Recommender
	kw  KeywordRecommender
	sim SimilarityClient
}

func NewRecommendHandler(v1 V1Recommender, v2 V2Recommender, kw KeywordRecommender, sim SimilarityClient) *RecommendHandler {
	return &RecommendHandler{v1: v1, v2: v2, kw: kw, sim: sim}
}

// writeError mapea los errores de dominio a status HTTP.
func writeError(w http.ResponseWriter, err error) {
	var focusErr *service.InvalidFocusError
	var statusErr *simclient.StatusError

	switch {
	case errors.Is(err, service.ErrCustomerNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &focusErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, simclient.ErrUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, simclient.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &statusErr):
		http.Error(w, err.Error(), statusErr.StatusCode)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// @Summary Recomendaciones por reglas (v1)
// @Tags recommendations
// @Produce json
// @Param id path int true "customerId"
// @Param focus query string false "categories|actors|languages|ratings|directors|popularity (default: categories)"
// @Success 200 {object} models.V1Result
// @Failure 400 {string} string "focus inválido"
// @Failure 404 {string} string "cliente no existe"
// @Router /recommendations/v1/{id} [get]
func (h *RecommendHandler) GetV1(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customerID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	focus, err := service.ParseFocusV1(r.URL.Query().Get("focus"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.v1.Recommend(r.Context(), customerID, focus)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(result)
}

// @Summary Recomendaciones ponderadas (v2)
// @Tags recommendations
// @Produce json
// @Param id path int true "customerId"
// @Param focus query string false "actors|genres|language|rating (default: actors)"
// @Success 200 {array} models.RecommendedFilm
// @Failure 400 {string} string "focus inválido"
// @Failure 404 {string} string "cliente no existe"
// @Router /recommendations/v2/{id} [get]
func (h *RecommendHandler) GetV2(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customerID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	focus, err := service.ValidateFocusV2(r.URL.Query().Get("focus"))
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.v2.Recommend(r.Context(), customerID, focus)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Recomendaciones por afinidad temática (palabras clave)
// @Tags recommendations
// @Produce json
// @Param id path int true "customerId"
// @Success 200 {object} models.V1Result
// @Failure 404 {string} string "cliente no existe"
// @Router /recommendations/keywords/{id} [get]
func (h *RecommendHandler) GetKeywords(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customerID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	result, err := h.kw.Recommend(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(result)
}

// @Summary Recomendaciones por similitud semántica (servicio externo)
// @Tags recommendations
// @Produce json
// @Param id path int true "customerId"
// @Param focus query string false "focus para el servicio externo (se reenvía tal cual)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string "cliente no existe"
// @Failure 503 {string} string "servicio de similitud no disponible"
// @Router /recommendations/external/{id} [get]
func (h *RecommendHandler) GetExternal(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customerID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	focus := r.URL.Query().Get("focus")

	payload, err := h.sim.Recommendations(r.Context(), customerID, focus)
	if err != nil {
		writeError(w, err)
		return
	}
	_, _ = w.Write(payload)
}

// @Summary Valores de focus soportados
// @Tags recommendations
// @Produce json
// @Success 200 {array} string
// @Router /recommendations/focus-options [get]
func (h *RecommendHandler) FocusOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(service.FocusOptionsV1())
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones con progreso en tiempo real (WebSocket)
// @Tags recommendations
// @Produce json
// @Param id path int true "customerId"
// @Param strategy query string false "v1|v2 (default: v1)"
// @Param focus query string false "focus de la estrategia elegida"
// @Success 200 {object} map[string]interface{}
// @Router /recommendations/ws/{id} [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	customerID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	strategy := r.URL.Query().Get("strategy")
	if strategy == "" {
		strategy = "v1"
	}
	rawFocus := r.URL.Query().Get("focus")

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando cálculo…",
	})

	steps := []string{"historial de alquileres", "preferencias", "candidatas", "ranking"}
	for i, step := range steps {
		time.Sleep(200 * time.Millisecond)
		conn.WriteJSON(map[string]any{
			"type": "progress",
			"step": i + 1,
			"msg":  fmt.Sprintf("Procesando %s", step),
		})
	}

	var result any
	switch strategy {
	case "v1":
		focus, ferr := service.ParseFocusV1(rawFocus)
		if ferr == nil {
			result, err = h.v1.Recommend(r.Context(), customerID, focus)
		} else {
			err = ferr
		}
	case "v2":
		focus, ferr := service.ValidateFocusV2(rawFocus)
		if ferr == nil {
			result, err = h.v2.Recommend(r.Context(), customerID, focus)
		} else {
			err = ferr
		}
	default:
		err = fmt.Errorf("unknown strategy %q (allowed: v1, v2)", strategy)
	}
	if err != nil {
		conn.WriteJSON(map[string]any{"type": "error", "error": err.Error()})
		return
	}

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"customerId":  customerID,
		"strategy":    strategy,
		"result":      result,
		"generatedAt": time.Now(),
	})
}
