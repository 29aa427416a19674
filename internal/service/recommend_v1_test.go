package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Chispasgg/sakila-api/internal/models"
)

func v1Fixture() (*RecommendV1Service, *fakeHistory) {
	catalog := &fakeCatalog{films: []models.FilmDoc{
		{FilmID: 1, Title: "Alpha", Categories: []string{"Action"}, Actors: []string{"A1"}, Language: "English", Rating: "PG"},
		{FilmID: 2, Title: "Beta", Categories: []string{"Action"}, Actors: []string{"A2"}, Language: "English", Rating: "R"},
		{FilmID: 3, Title: "Gamma", Categories: []string{"Drama"}, Actors: []string{"A1"}, Language: "French", Rating: "PG"},
		{FilmID: 4, Title: "Delta", Categories: []string{"Action", "Drama"}, Actors: []string{"A3"}, Language: "English", Rating: "G"},
		{FilmID: 5, Title: "Epsilon", Categories: []string{"Comedy"}, Actors: []string{"A4"}, Language: "Italian", Rating: "NC-17"},
	}}
	history := &fakeHistory{
		facts: map[int][]models.RentalFact{
			7: rentalFacts(1, 1, 3), // Alpha dos veces, Gamma una
		},
		global: map[int]int{1: 10, 2: 8, 4: 8, 5: 1},
	}
	customers := &fakeCustomers{ids: map[int]bool{7: true, 8: true}}
	return NewRecommendV1Service(customers, catalog, history), history
}

func TestRecommendV1UnknownCustomer(t *testing.T) {
	svc, _ := v1Fixture()
	_, err := svc.Recommend(context.Background(), 999, FocusV1Category)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("quiero ErrCustomerNotFound, vino %v", err)
	}
}

func TestRecommendV1Directors(t *testing.T) {
	svc, _ := v1Fixture()

	// aplica incluso con historial vacío: no depende de datos
	res, err := svc.Recommend(context.Background(), 8, FocusV1Director)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(res.Recommendations) != 0 {
		t.Errorf("directors debe devolver lista vacía, vino %d ítems", len(res.Recommendations))
	}
	if res.Explanation != directorUnsupportedMsg {
		t.Errorf("Explanation = %q, quiero el mensaje fijo de directors", res.Explanation)
	}
}

func TestRecommendV1NoHistory(t *testing.T) {
	svc, _ := v1Fixture()

	res, err := svc.Recommend(context.Background(), 8, FocusV1Category)
	if err != nil {
		t.Fatalf("sin historial no es un error, vino %v", err)
	}
	if res.Message != noHistoryMsg {
		t.Errorf("Message = %q, quiero el centinela de historial vacío", res.Message)
	}
	if res.Recommendations == nil || len(res.Recommendations) != 0 {
		t.Errorf("quiero lista vacía no nil, vino %v", res.Recommendations)
	}
}

func TestRecommendV1Categories(t *testing.T) {
	svc, _ := v1Fixture()

	res, err := svc.Recommend(context.Background(), 7, FocusV1Category)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if res.Focus != "categories" {
		t.Errorf("Focus = %q, quiero categories", res.Focus)
	}

	// historial: Action x2 (Alpha dos veces), Drama x1 (Gamma).
	// Candidatos por esas categorías, sin lo ya visto.
	got := make(map[int]bool)
	for _, item := range res.Recommendations {
		got[item.FilmID] = true
		if item.FilmID == 1 || item.FilmID == 3 {
			t.Errorf("película ya alquilada %d no debe recomendarse", item.FilmID)
		}
	}
	if !got[2] || !got[4] {
		t.Errorf("quiero los films 2 y 4 entre los candidatos, vino %v", got)
	}

	if res.Explanation == "" {
		t.Error("quiero explicación basada en categorías top")
	}
}

func TestRecommendV1CrossCounts(t *testing.T) {
	svc, _ := v1Fixture()

	res, err := svc.Recommend(context.Background(), 7, FocusV1Category)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	for _, item := range res.Recommendations {
		if item.FilmID == 2 {
			// Alpha (Action) alquilada dos veces comparte categoría con Beta
			if item.SharedCategoryRentals != 2 {
				t.Errorf("SharedCategoryRentals(2) = %d, quiero 2", item.SharedCategoryRentals)
			}
			if item.SharedActorRentals != 0 {
				t.Errorf("SharedActorRentals(2) = %d, quiero 0", item.SharedActorRentals)
			}
		}
	}
}

func TestRecommendV1Popularity(t *testing.T) {
	svc, _ := v1Fixture()

	res, err := svc.Recommend(context.Background(), 7, FocusV1Popularity)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if res.Explanation != popularityExplanation {
		t.Errorf("Explanation = %q", res.Explanation)
	}

	// film 1 es el más alquilado pero el cliente ya lo vio; empate 8-8
	// entre 2 y 4 se resuelve por filmId ascendente
	wantOrder := []int{2, 4, 5}
	if len(res.Recommendations) != len(wantOrder) {
		t.Fatalf("len = %d, quiero %d", len(res.Recommendations), len(wantOrder))
	}
	for i, want := range wantOrder {
		if res.Recommendations[i].FilmID != want {
			t.Errorf("pos %d: FilmID = %d, quiero %d", i, res.Recommendations[i].FilmID, want)
		}
	}
}

func TestRecommendV1PopularityNoHistory(t *testing.T) {
	svc, _ := v1Fixture()

	// popularity funciona sin historial: no hay nada que excluir
	res, err := svc.Recommend(context.Background(), 8, FocusV1Popularity)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(res.Recommendations) == 0 {
		t.Error("popularity sin historial debe recomendar igual")
	}
	if res.Message != "" {
		t.Errorf("popularity no usa el centinela de historial, vino %q", res.Message)
	}
}

func TestRecommendV1Ratings(t *testing.T) {
	svc, _ := v1Fixture()

	res, err := svc.Recommend(context.Background(), 7, FocusV1Rating)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// historial: PG x3 → candidatos con PG sin lo visto: ninguno extra salvo
	// los propios films vistos; la lista puede quedar vacía pero sin Message
	for _, item := range res.Recommendations {
		if item.FilmID == 1 || item.FilmID == 3 {
			t.Errorf("película ya alquilada %d no debe recomendarse", item.FilmID)
		}
	}
	if res.Explanation == "" {
		t.Error("quiero explicación con etiquetas de rating")
	}
}
