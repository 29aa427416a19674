package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Chispasgg/sakila-api/internal/models"
)

func TestKeywordWeights(t *testing.T) {
	f := models.FilmDoc{
		Title:       "Space Voyage",
		Description: "An astronaut must survive a voyage into deep space with their crew",
	}
	got := keywordWeights(f)

	if got["voyage"] != 2 {
		t.Errorf("voyage = %d, quiero 2 (título + descripción)", got["voyage"])
	}
	if got["space"] != 2 {
		t.Errorf("space = %d, quiero 2", got["space"])
	}
	// stopwords y palabras cortas quedan fuera
	for _, w := range []string{"with", "their", "must", "an", "a", "into"} {
		if _, ok := got[w]; ok {
			t.Errorf("palabra de relleno %q no debería pesar", w)
		}
	}
}

func kwFixture() *KeywordRecommendService {
	catalog := &fakeCatalog{films: []models.FilmDoc{
		{FilmID: 1, Title: "Space Station", Description: "astronaut drifts through space toward a station"},
		{FilmID: 2, Title: "Space Colony", Description: "astronaut builds a colony in deep space"},
		{FilmID: 3, Title: "Orbit Rescue", Description: "astronaut rescue mission in orbit around mars"},
		{FilmID: 4, Title: "Lunar Outpost", Description: "astronaut crew defends a lunar outpost"},
		{FilmID: 5, Title: "Kitchen Wars", Description: "chef rivalry escalates in a busy kitchen"},
		{FilmID: 6, Title: "Cooking Love", Description: "chef falls in love over a kitchen stove"},
	}}
	history := &fakeHistory{facts: map[int][]models.RentalFact{
		7: rentalFacts(1),
		9: rentalFacts(5),
	}}
	customers := &fakeCustomers{ids: map[int]bool{7: true, 8: true, 9: true}}
	return NewKeywordRecommendService(customers, catalog, history)
}

func TestKeywordRecommendUnknownCustomer(t *testing.T) {
	svc := kwFixture()
	_, err := svc.Recommend(context.Background(), 999)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("quiero ErrCustomerNotFound, vino %v", err)
	}
}

func TestKeywordRecommendNoHistory(t *testing.T) {
	svc := kwFixture()
	res, err := svc.Recommend(context.Background(), 8)
	if err != nil {
		t.Fatalf("sin historial no es un error, vino %v", err)
	}
	if res.Message != noHistoryMsg {
		t.Errorf("Message = %q, quiero el centinela de historial vacío", res.Message)
	}
	if len(res.Recommendations) != 0 {
		t.Errorf("quiero lista vacía, vino %d ítems", len(res.Recommendations))
	}
}

func TestKeywordRecommendByTheme(t *testing.T) {
	svc := kwFixture()

	// vio Space Station: los temas son space/astronaut/station
	res, err := svc.Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if res.Focus != "keywords" {
		t.Errorf("Focus = %q, quiero keywords", res.Focus)
	}

	got := make(map[int]bool)
	for _, item := range res.Recommendations {
		got[item.FilmID] = true
		if item.FilmID == 1 {
			t.Error("película ya alquilada no debe recomendarse")
		}
		if item.Explanation == "" {
			t.Errorf("film %d sin explicación de tema", item.FilmID)
		}
	}
	// las de astronautas comparten temas, las de cocina no tienen afinidad
	for _, want := range []int{2, 3, 4} {
		if !got[want] {
			t.Errorf("quiero el film %d entre los recomendados", want)
		}
	}
	if got[5] || got[6] {
		t.Error("films sin afinidad temática no deben aparecer")
	}

	if res.Explanation == "" {
		t.Error("quiero explicación global con los temas dominantes")
	}
}

func TestKeywordRecommendDiversification(t *testing.T) {
	// catálogo donde una sola palabra domina: sin diversificación las diez
	// recomendaciones saldrían todas del mismo tema
	films := []models.FilmDoc{
		{FilmID: 1, Title: "Dragon Origin", Description: "dragon legend awakens"},
	}
	for i := 2; i <= 12; i++ {
		films = append(films, models.FilmDoc{
			FilmID:      i,
			Title:       "Sequel",
			Description: "dragon legend continues once more",
		})
	}
	// una película de otro tema que también aparece en el historial
	films = append(films, models.FilmDoc{
		FilmID:      20,
		Title:       "Castle Siege",
		Description: "knights defend a castle against a dragon siege",
	})

	catalog := &fakeCatalog{films: films}
	history := &fakeHistory{facts: map[int][]models.RentalFact{7: rentalFacts(1)}}
	customers := &fakeCustomers{ids: map[int]bool{7: true}}
	svc := NewKeywordRecommendService(customers, catalog, history)

	res, err := svc.Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	// el historial aporta dragon y legend como temas; cada uno puede traer
	// hasta 3 candidatos, nunca los 10 del mismo tema
	perTheme := make(map[string]int)
	for _, item := range res.Recommendations {
		perTheme[item.Explanation]++
	}
	for theme, n := range perTheme {
		if n > maxPerKeyword {
			t.Errorf("tema %q aporta %d ítems, máximo %d", theme, n, maxPerKeyword)
		}
	}
}

func TestKeywordRecommendNoRepeats(t *testing.T) {
	svc := kwFixture()

	res, err := svc.Recommend(context.Background(), 7)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	seen := make(map[int]bool)
	for _, item := range res.Recommendations {
		if seen[item.FilmID] {
			t.Errorf("film %d repetido: la diversificación no debe duplicar", item.FilmID)
		}
		seen[item.FilmID] = true
	}
	if len(res.Recommendations) > 10 {
		t.Errorf("len = %d, máximo 10", len(res.Recommendations))
	}
}
