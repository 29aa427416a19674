package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Chispasgg/sakila-api/internal/models"
)

// WeightVector: pesos enteros por dimensión. Nunca negativos.
type WeightVector struct {
	Category int
	Actor    int
	Language int
	Rating   int
}

func baseWeights() WeightVector {
	return WeightVector{Category: 4, Actor: 3, Language: 2, Rating: 1}
}

// weightsForFocus aplica el boost +2 a la dimensión elegida. Un token no
// reconocido deja el vector base tal cual, sin error: la validación estricta
// vive en el facade (ValidateFocusV2), el scorer es permisivo a propósito.
func weightsForFocus(focus string) WeightVector {
	w := baseWeights()
	switch focus {
	case "genres":
		w.Category += 2
	case "actors":
		w.Actor += 2
	case "language":
		w.Language += 2
	case "rating":
		w.Rating += 2
	}
	return w
}

// RecommendV2Service: score compuesto sobre TODAS las dimensiones a la vez.
// Aritmética entera sin normalizar: los scores solo se comparan dentro de
// una misma consulta.
type RecommendV2Service struct {
	customers CustomerStore
	films     CatalogStore
	rentals   HistoryStore
}

func NewRecommendV2Service(c CustomerStore, f CatalogStore, r HistoryStore) *RecommendV2Service {
	return &RecommendV2Service{customers: c, films: f, rentals: r}
}

type scoredFilm struct {
	film  models.FilmDoc
	total int
	cat   int
	act   int
	lang  int
	rat   int
}

func (s *RecommendV2Service) Recommend(ctx context.Context, customerID int, focus string) ([]models.RecommendedFilm, error) {
	if err := checkCustomer(ctx, s.customers, customerID); err != nil {
		return nil, err
	}

	history, watched, err := historyFilms(ctx, s.rentals, s.films, customerID)
	if err != nil {
		return nil, err
	}

	counts := CountAttributes(history)
	w := weightsForFocus(focus)

	all, err := s.films.All(ctx)
	if err != nil {
		return nil, err
	}

	// score cero no descarta: el orden lo hunde solo
	scored := make([]scoredFilm, 0, len(all))
	for _, f := range all {
		if watched[f.FilmID] {
			continue
		}

		cat := w.Category * counts.SharedCategoryWeight(f)
		act := w.Actor * counts.SharedActorWeight(f)

		lang := 0
		if l := strings.TrimSpace(f.Language); l != "" {
			lang = w.Language * counts.Languages[l]
		}

		rat := 0
		if rank := models.RatingRank(f.Rating); rank > 0 {
			rat = w.Rating * counts.Ratings[rank]
		}

		scored = append(scored, scoredFilm{
			film:  f,
			total: cat + act + lang + rat,
			cat:   cat,
			act:   act,
			lang:  lang,
			rat:   rat,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].total != scored[j].total {
			return scored[i].total > scored[j].total
		}
		return scored[i].film.FilmID < scored[j].film.FilmID
	})
	if len(scored) > recommendationLimit {
		scored = scored[:recommendationLimit]
	}

	out := make([]models.RecommendedFilm, 0, len(scored))
	for _, sf := range scored {
		score := sf.total
		item := recommendedFilm(sf.film, history)
		item.Score = &score
		item.Explanation = explanationFor(sf)
		out = append(out, item)
	}
	return out, nil
}

// explanationFor elige el mensaje por prioridad: categoría+actor combinados,
// después cada dimensión sola en orden categoría > actor > idioma > rating,
// y un genérico si nada aportó.
func explanationFor(sf scoredFilm) string {
	switch {
	case sf.cat > 0 && sf.act > 0:
		return "Shares categories and actors with films you have rented"
	case sf.cat > 0:
		return "Shares categories with films you have rented"
	case sf.act > 0:
		return "Features actors from films you have rented"
	case sf.lang > 0:
		return "In a language you have rented before"
	case sf.rat > 0:
		return "Matches the ratings of films you have rented"
	default:
		return "You might also like this film"
	}
}
