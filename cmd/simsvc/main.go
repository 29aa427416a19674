// cmd/simsvc es el servicio de similitud semántica: construye en memoria un
// modelo TF-IDF del catálogo y responde recomendaciones por similitud coseno
// al perfil del cliente. El backend principal lo consume vía HTTP.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/Chispasgg/sakila-api/internal/config"
	"github.com/Chispasgg/sakila-api/internal/db"
	"github.com/Chispasgg/sakila-api/internal/repository"
	"github.com/Chispasgg/sakila-api/internal/siml"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultLimit = 10
	// por debajo de esta cantidad de películas distintas el perfil no es
	// confiable y se responde por popularidad
	minProfileFilms = 3
)

type modelHolder struct {
	mu    sync.RWMutex
	model *siml.Model
	built time.Time
}

func (h *modelHolder) get() (*siml.Model, time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.model, h.built
}

func (h *modelHolder) set(m *siml.Model) {
	h.mu.Lock()
	h.model = m
	h.built = time.Now()
	h.mu.Unlock()
}

type simServer struct {
	holder  *modelHolder
	films   *repository.FilmRepository
	rentals *repository.RentalRepository
	custs   *repository.CustomerRepository
}

type simItem struct {
	FilmID      int     `json:"film_id"`
	Title       string  `json:"title"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

type simResult struct {
	CustomerID      int       `json:"customer_id"`
	Strategy        string    `json:"strategy"`
	Recommendations []simItem `json:"recommendations"`
	Message         string    `json:"message,omitempty"`
}

func main() {
	cfg := config.Load()
	db.InitMongo(cfg)

	srv := &simServer{
		holder:  &modelHolder{},
		films:   repository.NewFilmRepository(),
		rentals: repository.NewRentalRepository(),
		custs:   repository.NewCustomerRepository(),
	}

	if err := srv.buildModel(context.Background()); err != nil {
		log.Fatalf("[simsvc] error construyendo modelo inicial: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/status", srv.status)
	r.Get("/ml/recommendations/{id}", srv.recommendations)
	r.Post("/ml/model/reload", srv.reload)

	log.Printf("[simsvc] HTTP escuchando en :%s", cfg.SimHTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.SimHTTPPort, r))
}

func (s *simServer) buildModel(ctx context.Context) error {
	start := time.Now()
	films, err := s.films.All(ctx)
	if err != nil {
		return err
	}
	model := siml.NewModel(films)
	s.holder.set(model)
	log.Printf("[simsvc] modelo construido: %d películas en %s", model.Size(), time.Since(start))
	return nil
}

func (s *simServer) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	model, built := s.holder.get()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"films":   model.Size(),
		"builtAt": built,
	})
}

func (s *simServer) reload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := s.buildModel(r.Context()); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	model, built := s.holder.get()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "reloaded",
		"films":   model.Size(),
		"builtAt": built,
	})
}

func (s *simServer) recommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customerID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultLimit
	}

	cust, err := s.custs.FindByID(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if cust == nil {
		http.NotFound(w, r)
		return
	}

	facts, err := s.rentals.HistoryFacts(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	watchedSet := make(map[int]bool)
	watched := make([]int, 0, len(facts))
	for _, f := range facts {
		if !watchedSet[f.FilmID] {
			watchedSet[f.FilmID] = true
			watched = append(watched, f.FilmID)
		}
	}

	// con poco historial el perfil TF-IDF no dice nada: caer a popularidad
	if len(watched) < minProfileFilms {
		result, err := s.popularityFallback(r.Context(), customerID, watchedSet, limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(result)
		return
	}

	model, _ := s.holder.get()
	scored := model.Recommend(watched, limit)

	items := make([]simItem, 0, len(scored))
	for _, sf := range scored {
		items = append(items, simItem{
			FilmID:      sf.Film.FilmID,
			Title:       sf.Film.Title,
			Score:       sf.Score,
			Explanation: "Recommended for its semantic similarity to films you have rented.",
		})
	}

	_ = json.NewEncoder(w).Encode(simResult{
		CustomerID:      customerID,
		Strategy:        "similarity",
		Recommendations: items,
	})
}

func (s *simServer) popularityFallback(ctx context.Context, customerID int, watched map[int]bool, limit int) (*simResult, error) {
	counts, err := s.rentals.GlobalRentalCounts(ctx)
	if err != nil {
		return nil, err
	}

	type fc struct {
		filmID int
		count  int
	}
	ranked := make([]fc, 0, len(counts))
	for id, c := range counts {
		if watched[id] {
			continue
		}
		ranked = append(ranked, fc{filmID: id, count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].filmID < ranked[j].filmID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]int, len(ranked))
	for i, rc := range ranked {
		ids[i] = rc.filmID
	}
	byID, err := s.films.FilmsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]simItem, 0, len(ranked))
	for _, rc := range ranked {
		f, ok := byID[rc.filmID]
		if !ok {
			continue
		}
		items = append(items, simItem{
			FilmID:      f.FilmID,
			Title:       f.Title,
			Score:       float64(rc.count),
			Explanation: "Popular film recommended while we learn your taste.",
		})
	}

	return &simResult{
		CustomerID:      customerID,
		Strategy:        "similarity",
		Recommendations: items,
		Message:         "Not enough rental history for a similarity profile; showing popular films.",
	}, nil
}
