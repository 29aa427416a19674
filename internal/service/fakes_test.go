package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Chispasgg/sakila-api/internal/models"
)

// Fakes en memoria de los stores, para testear los servicios sin Mongo.

type fakeCatalog struct {
	films []models.FilmDoc
}

func (f *fakeCatalog) GetByID(_ context.Context, filmID int) (*models.FilmDoc, error) {
	for _, doc := range f.films {
		if doc.FilmID == filmID {
			d := doc
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) All(_ context.Context) ([]models.FilmDoc, error) {
	out := make([]models.FilmDoc, len(f.films))
	copy(out, f.films)
	sort.Slice(out, func(i, j int) bool { return out[i].FilmID < out[j].FilmID })
	return out, nil
}

func (f *fakeCatalog) FilmsByIDs(_ context.Context, ids []int) (map[int]models.FilmDoc, error) {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make(map[int]models.FilmDoc)
	for _, doc := range f.films {
		if want[doc.FilmID] {
			out[doc.FilmID] = doc
		}
	}
	return out, nil
}

func (f *fakeCatalog) findBy(match func(models.FilmDoc) bool, exclude []int, limit int) []models.FilmDoc {
	excluded := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	var out []models.FilmDoc
	for _, doc := range f.films {
		if excluded[doc.FilmID] || !match(doc) {
			continue
		}
		out = append(out, doc)
		if len(out) == limit {
			break
		}
	}
	return out
}

func containsAny(have []string, want []string) bool {
	set := make(map[string]bool, len(want))
	for _, w := range want {
		set[w] = true
	}
	for _, h := range have {
		if set[h] {
			return true
		}
	}
	return false
}

func (f *fakeCatalog) FindByCategories(_ context.Context, values []string, exclude []int, limit int) ([]models.FilmDoc, error) {
	return f.findBy(func(d models.FilmDoc) bool { return containsAny(d.Categories, values) }, exclude, limit), nil
}

func (f *fakeCatalog) FindByActors(_ context.Context, values []string, exclude []int, limit int) ([]models.FilmDoc, error) {
	return f.findBy(func(d models.FilmDoc) bool { return containsAny(d.Actors, values) }, exclude, limit), nil
}

func (f *fakeCatalog) FindByLanguages(_ context.Context, values []string, exclude []int, limit int) ([]models.FilmDoc, error) {
	return f.findBy(func(d models.FilmDoc) bool {
		return containsAny([]string{strings.TrimSpace(d.Language)}, values)
	}, exclude, limit), nil
}

func (f *fakeCatalog) FindByRatings(_ context.Context, labels []string, exclude []int, limit int) ([]models.FilmDoc, error) {
	return f.findBy(func(d models.FilmDoc) bool {
		return containsAny([]string{strings.TrimSpace(d.Rating)}, labels)
	}, exclude, limit), nil
}

func (f *fakeCatalog) Search(_ context.Context, q, category string, yearFrom, yearTo, limit, offset int) ([]models.FilmDoc, error) {
	var out []models.FilmDoc
	for _, doc := range f.films {
		if q != "" && !strings.Contains(strings.ToLower(doc.Title), strings.ToLower(q)) {
			continue
		}
		if category != "" && !containsAny(doc.Categories, []string{category}) {
			continue
		}
		out = append(out, doc)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeHistory struct {
	facts  map[int][]models.RentalFact
	global map[int]int
}

func (f *fakeHistory) HistoryFacts(_ context.Context, customerID int) ([]models.RentalFact, error) {
	return f.facts[customerID], nil
}

func (f *fakeHistory) GlobalRentalCounts(_ context.Context) (map[int]int, error) {
	out := make(map[int]int, len(f.global))
	for k, v := range f.global {
		out[k] = v
	}
	return out, nil
}

type fakeCustomers struct {
	ids map[int]bool
}

func (f *fakeCustomers) FindByID(_ context.Context, customerID int) (*models.CustomerDoc, error) {
	if !f.ids[customerID] {
		return nil, nil
	}
	return &models.CustomerDoc{CustomerID: customerID}, nil
}

// fakeFeedback imita el contador atómico de Mongo: NextFeedbackID nunca
// devuelve el mismo valor dos veces, ni bajo llamadas concurrentes.
type fakeFeedback struct {
	mu     sync.Mutex
	nextID int
	items  []models.FeedbackDoc
}

func (f *fakeFeedback) NextFeedbackID(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return f.nextID, nil
}

func (f *fakeFeedback) Insert(_ context.Context, fb *models.FeedbackDoc) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *fb)
	return nil
}

func (f *fakeFeedback) FindByCustomer(_ context.Context, customerID int) ([]models.FeedbackDoc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.FeedbackDoc
	for _, fb := range f.items {
		if fb.CustomerID == customerID {
			out = append(out, fb)
		}
	}
	return out, nil
}

// facts arma un RentalFact por película, en orden.
func rentalFacts(filmIDs ...int) []models.RentalFact {
	out := make([]models.RentalFact, len(filmIDs))
	for i, id := range filmIDs {
		out[i] = models.RentalFact{RentalID: i + 1, FilmID: id}
	}
	return out
}
