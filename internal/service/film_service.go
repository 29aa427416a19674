// internal/service/film_service.go
package service

import (
	"context"
	"sort"

	"github.com/Chispasgg/sakila-api/internal/models"
)

type FilmService struct {
	films   CatalogStore
	rentals HistoryStore
}

func NewFilmService(f CatalogStore, r HistoryStore) *FilmService {
	return &FilmService{films: f, rentals: r}
}

func (s *FilmService) GetFilm(ctx context.Context, id int) (*models.FilmDoc, error) {
	return s.films.GetByID(ctx, id)
}

func (s *FilmService) Search(
	ctx context.Context,
	q, category string,
	yearFrom, yearTo, limit, offset int,
) ([]models.FilmDoc, error) {
	return s.films.Search(ctx, q, category, yearFrom, yearTo, limit, offset)
}

// Top: películas más alquiladas de toda la base.
func (s *FilmService) Top(ctx context.Context, limit int) ([]models.FilmDoc, error) {
	counts, err := s.rentals.GlobalRentalCounts(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}

	docs, err := s.films.FilmsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.FilmDoc, 0, len(ids))
	for _, id := range ids {
		if f, ok := docs[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}
