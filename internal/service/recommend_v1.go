package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Chispasgg/sakila-api/internal/models"
)

const (
	// máximo de ítems devueltos por cualquier estrategia
	recommendationLimit = 10

	// top-N de valores preferidos por dimensión
	topCategoryPrefs = 5
	topActorPrefs    = 5
	topLanguagePrefs = 3
	topRatingPrefs   = 3
)

const (
	// limitación permanente: el esquema Sakila no tiene directores
	directorUnsupportedMsg = "Recommendations by director are not supported: the catalog has no director data."
	noHistoryMsg           = "No recommendations: customer has no rental history yet."
	popularityExplanation  = "Most rented films across all customers"
)

// RecommendV1Service: estrategia por reglas. Elige UNA dimensión (o el
// fallback de popularidad), filtra candidatos por los valores preferidos del
// cliente en esa dimensión y excluye lo ya alquilado.
type RecommendV1Service struct {
	customers CustomerStore
	films     CatalogStore
	rentals   HistoryStore
}

func NewRecommendV1Service(c CustomerStore, f CatalogStore, r HistoryStore) *RecommendV1Service {
	return &RecommendV1Service{customers: c, films: f, rentals: r}
}

func (s *RecommendV1Service) Recommend(ctx context.Context, customerID int, focus FocusV1) (*models.V1Result, error) {
	if err := checkCustomer(ctx, s.customers, customerID); err != nil {
		return nil, err
	}

	// directors no depende del historial: siempre lista vacía + mensaje fijo
	if focus == FocusV1Director {
		return &models.V1Result{
			CustomerID:      customerID,
			Focus:           focus.String(),
			Recommendations: []models.RecommendedFilm{},
			Explanation:     directorUnsupportedMsg,
		}, nil
	}

	history, watched, err := historyFilms(ctx, s.rentals, s.films, customerID)
	if err != nil {
		return nil, err
	}

	if focus == FocusV1Popularity {
		return s.recommendPopular(ctx, customerID, history, watched)
	}

	if len(history) == 0 {
		return noHistoryResult(customerID, focus), nil
	}

	counts := CountAttributes(history)
	exclude := watchedIDs(watched)

	var candidates []models.FilmDoc
	var explanation string

	switch focus {
	case FocusV1Category:
		top := counts.TopCategories(topCategoryPrefs)
		if len(top) == 0 {
			return noHistoryResult(customerID, focus), nil
		}
		values := valueNames(top)
		candidates, err = s.films.FindByCategories(ctx, values, exclude, recommendationLimit)
		explanation = "Based on your top rented categories: " + strings.Join(values, ", ")

	case FocusV1Actor:
		top := counts.TopActors(topActorPrefs)
		if len(top) == 0 {
			return noHistoryResult(customerID, focus), nil
		}
		values := valueNames(top)
		candidates, err = s.films.FindByActors(ctx, values, exclude, recommendationLimit)
		explanation = "Based on your top rented actors: " + strings.Join(values, ", ")

	case FocusV1Language:
		top := counts.TopLanguages(topLanguagePrefs)
		if len(top) == 0 {
			return noHistoryResult(customerID, focus), nil
		}
		values := valueNames(top)
		candidates, err = s.films.FindByLanguages(ctx, values, exclude, recommendationLimit)
		explanation = "Based on your top rented languages: " + strings.Join(values, ", ")

	case FocusV1Rating:
		top := counts.TopRatingRanks(topRatingPrefs)
		if len(top) == 0 {
			return noHistoryResult(customerID, focus), nil
		}
		labels := make([]string, len(top))
		for i, rc := range top {
			labels[i] = models.RatingLabel(rc.Rank)
		}
		candidates, err = s.films.FindByRatings(ctx, labels, exclude, recommendationLimit)
		explanation = "Based on the ratings you rent most: " + strings.Join(labels, ", ")
	}
	if err != nil {
		return nil, err
	}

	items := make([]models.RecommendedFilm, 0, len(candidates))
	for _, f := range candidates {
		items = append(items, recommendedFilm(f, history))
	}

	return &models.V1Result{
		CustomerID:      customerID,
		Focus:           focus.String(),
		Recommendations: items,
		Explanation:     explanation,
	}, nil
}

// recommendPopular ignora las preferencias personales: rankea por cantidad
// global de alquileres, excluyendo solo lo que el cliente ya alquiló.
func (s *RecommendV1Service) recommendPopular(
	ctx context.Context,
	customerID int,
	history []models.FilmDoc,
	watched map[int]bool,
) (*models.V1Result, error) {

	counts, err := s.rentals.GlobalRentalCounts(ctx)
	if err != nil {
		return nil, err
	}

	type popular struct {
		filmID int
		count  int
	}
	ranked := make([]popular, 0, len(counts))
	for filmID, n := range counts {
		if watched[filmID] {
			continue
		}
		ranked = append(ranked, popular{filmID: filmID, count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].filmID < ranked[j].filmID
	})
	if len(ranked) > recommendationLimit {
		ranked = ranked[:recommendationLimit]
	}

	ids := make([]int, len(ranked))
	for i, p := range ranked {
		ids[i] = p.filmID
	}
	docs, err := s.films.FilmsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]models.RecommendedFilm, 0, len(ranked))
	for _, p := range ranked {
		f, ok := docs[p.filmID]
		if !ok {
			continue
		}
		items = append(items, recommendedFilm(f, history))
	}

	return &models.V1Result{
		CustomerID:      customerID,
		Focus:           FocusV1Popularity.String(),
		Recommendations: items,
		Explanation:     popularityExplanation,
	}, nil
}

// noHistoryResult es el centinela "nada que recomendar": respuesta bien
// formada, no un error.
func noHistoryResult(customerID int, focus FocusV1) *models.V1Result {
	return &models.V1Result{
		CustomerID:      customerID,
		Focus:           focus.String(),
		Recommendations: []models.RecommendedFilm{},
		Message:         noHistoryMsg,
	}
}

func recommendedFilm(f models.FilmDoc, history []models.FilmDoc) models.RecommendedFilm {
	catRentals, actorRentals := crossCounts(history, f)
	return models.RecommendedFilm{
		FilmID:                f.FilmID,
		Title:                 f.Title,
		Description:           f.Description,
		ReleaseYear:           f.ReleaseYear,
		Categories:            f.Categories,
		Actors:                f.Actors,
		SharedCategoryRentals: catRentals,
		SharedActorRentals:    actorRentals,
	}
}
