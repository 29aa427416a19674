package service

import (
	"context"
	"errors"

	"github.com/Chispasgg/sakila-api/internal/models"
)

// ErrCustomerNotFound: el customerId pedido no existe. Distinto de
// "existe pero sin historial", que produce un resultado centinela.
var ErrCustomerNotFound = errors.New("customer not found")

// Interfaces mínimas sobre los repositorios de Mongo. Los servicios las
// consumen para poder testearse con fakes en memoria.

type CatalogStore interface {
	GetByID(ctx context.Context, filmID int) (*models.FilmDoc, error)
	All(ctx context.Context) ([]models.FilmDoc, error)
	FilmsByIDs(ctx context.Context, ids []int) (map[int]models.FilmDoc, error)
	FindByCategories(ctx context.Context, values []string, exclude []int, limit int) ([]models.FilmDoc, error)
	FindByActors(ctx context.Context, values []string, exclude []int, limit int) ([]models.FilmDoc, error)
	FindByLanguages(ctx context.Context, values []string, exclude []int, limit int) ([]models.FilmDoc, error)
	FindByRatings(ctx context.Context, labels []string, exclude []int, limit int) ([]models.FilmDoc, error)
	Search(ctx context.Context, q, category string, yearFrom, yearTo, limit, offset int) ([]models.FilmDoc, error)
}

type HistoryStore interface {
	HistoryFacts(ctx context.Context, customerID int) ([]models.RentalFact, error)
	GlobalRentalCounts(ctx context.Context) (map[int]int, error)
}

type CustomerStore interface {
	FindByID(ctx context.Context, customerID int) (*models.CustomerDoc, error)
}

type FeedbackStore interface {
	NextFeedbackID(ctx context.Context) (int, error)
	Insert(ctx context.Context, fb *models.FeedbackDoc) error
	FindByCustomer(ctx context.Context, customerID int) ([]models.FeedbackDoc, error)
}

// historyFilms expande el historial del cliente a una FilmDoc por alquiler
// (las repeticiones importan para contar frecuencias) y arma el set de
// exclusión de películas ya alquiladas.
func historyFilms(ctx context.Context, rentals HistoryStore, films CatalogStore, customerID int) ([]models.FilmDoc, map[int]bool, error) {
	facts, err := rentals.HistoryFacts(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	watched := make(map[int]bool, len(facts))
	distinct := make([]int, 0, len(facts))
	for _, f := range facts {
		if !watched[f.FilmID] {
			watched[f.FilmID] = true
			distinct = append(distinct, f.FilmID)
		}
	}

	docs, err := films.FilmsByIDs(ctx, distinct)
	if err != nil {
		return nil, nil, err
	}

	history := make([]models.FilmDoc, 0, len(facts))
	for _, f := range facts {
		if doc, ok := docs[f.FilmID]; ok {
			history = append(history, doc)
		}
	}
	return history, watched, nil
}

func watchedIDs(watched map[int]bool) []int {
	out := make([]int, 0, len(watched))
	for id := range watched {
		out = append(out, id)
	}
	return out
}

// checkCustomer traduce "no existe" a ErrCustomerNotFound.
func checkCustomer(ctx context.Context, customers CustomerStore, customerID int) error {
	c, err := customers.FindByID(ctx, customerID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCustomerNotFound
	}
	return nil
}
