package service

import (
	"context"
	"time"

	"github.com/Chispasgg/sakila-api/internal/models"
)

type CustomerService struct {
	customers CustomerStore
	films     CatalogStore
	rentals   HistoryStore
}

func NewCustomerService(c CustomerStore, f CatalogStore, r HistoryStore) *CustomerService {
	return &CustomerService{customers: c, films: f, rentals: r}
}

// Rentals lista el historial del cliente con detalle de película y si la
// devolución fue (o viene siendo) tardía respecto del plazo configurado.
func (s *CustomerService) Rentals(ctx context.Context, customerID int) ([]models.RentalDetail, error) {
	if err := checkCustomer(ctx, s.customers, customerID); err != nil {
		return nil, err
	}

	facts, err := s.rentals.HistoryFacts(ctx, customerID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(facts))
	seen := make(map[int]bool, len(facts))
	for _, f := range facts {
		if !seen[f.FilmID] {
			seen[f.FilmID] = true
			ids = append(ids, f.FilmID)
		}
	}
	docs, err := s.films.FilmsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.RentalDetail, 0, len(facts))
	now := time.Now()
	for _, fact := range facts {
		film, ok := docs[fact.FilmID]
		if !ok {
			continue
		}
		out = append(out, models.RentalDetail{
			RentalID:       fact.RentalID,
			FilmID:         film.FilmID,
			Title:          film.Title,
			RentalDate:     fact.RentalDate,
			ReturnDate:     fact.ReturnDate,
			RentalDuration: film.RentalDuration,
			RentalRate:     film.RentalRate,
			Late:           isLate(fact, film.RentalDuration, now),
		})
	}
	return out, nil
}

// isLate: la devolución (o el momento actual, si sigue abierta) supera el
// plazo de rentalDuration días.
func isLate(fact models.RentalFact, durationDays int, now time.Time) bool {
	if durationDays <= 0 {
		return false
	}
	due := fact.RentalDate.AddDate(0, 0, durationDays)
	effective := now
	if fact.ReturnDate != nil {
		effective = *fact.ReturnDate
	}
	return effective.After(due)
}
