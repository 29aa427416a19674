package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/Chispasgg/sakila-api/internal/models"
	"github.com/Chispasgg/sakila-api/internal/service"
	"github.com/Chispasgg/sakila-api/internal/simclient"

	"github.com/go-chi/chi/v5"
)

type fakeV1 struct {
	result *models.V1Result
	err    error
	focus  service.FocusV1
}

func (f *fakeV1) Recommend(_ context.Context, customerID int, focus service.FocusV1) (*models.V1Result, error) {
	f.focus = focus
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeV2 struct {
	items []models.RecommendedFilm
	err   error
	focus string
}

func (f *fakeV2) Recommend(_ context.Context, customerID int, focus string) ([]models.RecommendedFilm, error) {
	f.focus = focus
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeKW struct {
	result *models.V1Result
	err    error
}

func (f *fakeKW) Recommend(_ context.Context, customerID int) (*models.V1Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeSim struct {
	payload json.RawMessage
	err     error
}

func (f *fakeSim) Recommendations(_ context.Context, customerID int, focus string) (json.RawMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newTestRouter(v1 V1Recommender, v2 V2Recommender, kw KeywordRecommender, sim SimilarityClient) *chi.Mux {
	h := NewRecommendHandler(v1, v2, kw, sim)
	r := chi.NewRouter()
	r.Get("/recommendations/focus-options", h.FocusOptions)
	r.Get("/recommendations/v1/{id}", h.GetV1)
	r.Get("/recommendations/v2/{id}", h.GetV2)
	r.Get("/recommendations/keywords/{id}", h.GetKeywords)
	r.Get("/recommendations/external/{id}", h.GetExternal)
	return r
}

func doGet(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFocusOptions(t *testing.T) {
	r := newTestRouter(&fakeV1{}, &fakeV2{}, &fakeKW{}, &fakeSim{})
	w := doGet(t, r, "/recommendations/focus-options")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body []string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body no es JSON: %v", err)
	}
	// contrato externo: exactamente esta lista, en este orden
	want := []string{"categories", "actors", "languages", "ratings", "directors", "popularity"}
	if !reflect.DeepEqual(body, want) {
		t.Errorf("focus-options = %v, quiero %v", body, want)
	}
}

func TestGetV1(t *testing.T) {
	v1 := &fakeV1{result: &models.V1Result{
		CustomerID:      7,
		Focus:           "actors",
		Recommendations: []models.RecommendedFilm{{FilmID: 2, Title: "Beta"}},
		Explanation:     "Based on your top rented actors: A1",
	}}
	r := newTestRouter(v1, &fakeV2{}, &fakeKW{}, &fakeSim{})

	w := doGet(t, r, "/recommendations/v1/7?focus=actors")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if v1.focus != service.FocusV1Actor {
		t.Errorf("focus pasado al servicio = %v", v1.focus)
	}

	var got models.V1Result
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body no es JSON: %v", err)
	}
	if got.CustomerID != 7 || len(got.Recommendations) != 1 {
		t.Errorf("respuesta inesperada: %+v", got)
	}
}

func TestGetV1InvalidFocus(t *testing.T) {
	r := newTestRouter(&fakeV1{}, &fakeV2{}, &fakeKW{}, &fakeSim{})

	w := doGet(t, r, "/recommendations/v1/7?focus=banana")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, quiero 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "banana") {
		t.Errorf("el error debe nombrar el focus rechazado: %s", w.Body)
	}
}

func TestGetV1UnknownCustomer(t *testing.T) {
	r := newTestRouter(&fakeV1{err: service.ErrCustomerNotFound}, &fakeV2{}, &fakeKW{}, &fakeSim{})

	w := doGet(t, r, "/recommendations/v1/999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, quiero 404", w.Code)
	}
}

func TestGetV2(t *testing.T) {
	score := 16
	v2 := &fakeV2{items: []models.RecommendedFilm{{FilmID: 4, Title: "Delta", Score: &score}}}
	r := newTestRouter(&fakeV1{}, v2, &fakeKW{}, &fakeSim{})

	w := doGet(t, r, "/recommendations/v2/7?focus=genres")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if v2.focus != "genres" {
		t.Errorf("focus pasado al servicio = %q", v2.focus)
	}

	var got []models.RecommendedFilm
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body no es JSON: %v", err)
	}
	if len(got) != 1 || got[0].FilmID != 4 || *got[0].Score != 16 {
		t.Errorf("recomendaciones inesperadas: %+v", got)
	}
}

func TestGetV2DefaultFocus(t *testing.T) {
	v2 := &fakeV2{}
	r := newTestRouter(&fakeV1{}, v2, &fakeKW{}, &fakeSim{})

	w := doGet(t, r, "/recommendations/v2/7")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if v2.focus != "actors" {
		t.Errorf("sin focus debe asumirse actors, vino %q", v2.focus)
	}
}

func TestGetV2InvalidFocusRejectedAtFacade(t *testing.T) {
	v2 := &fakeV2{}
	r := newTestRouter(&fakeV1{}, v2, &fakeKW{}, &fakeSim{})

	// el facade rechaza lo que el scorer toleraría
	w := doGet(t, r, "/recommendations/v2/7?focus=categories")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, quiero 400", w.Code)
	}
	if v2.focus != "" {
		t.Error("con focus inválido el servicio no debe llamarse")
	}
}

func TestGetKeywords(t *testing.T) {
	kw := &fakeKW{result: &models.V1Result{
		CustomerID:      7,
		Focus:           "keywords",
		Recommendations: []models.RecommendedFilm{{FilmID: 3, Title: "Gamma"}},
		Explanation:     "Based on recurring themes in your rented films: space",
	}}
	r := newTestRouter(&fakeV1{}, &fakeV2{}, kw, &fakeSim{})

	w := doGet(t, r, "/recommendations/keywords/7")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	var got models.V1Result
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body no es JSON: %v", err)
	}
	if got.Focus != "keywords" || len(got.Recommendations) != 1 || got.Recommendations[0].FilmID != 3 {
		t.Errorf("respuesta inesperada: %+v", got)
	}
}

func TestGetKeywordsUnknownCustomer(t *testing.T) {
	r := newTestRouter(&fakeV1{}, &fakeV2{}, &fakeKW{err: service.ErrCustomerNotFound}, &fakeSim{})

	w := doGet(t, r, "/recommendations/keywords/999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, quiero 404", w.Code)
	}
}

func TestGetExternalPassthrough(t *testing.T) {
	payload := `{"customer_id":7,"recommendations":[]}`
	r := newTestRouter(&fakeV1{}, &fakeV2{}, &fakeKW{}, &fakeSim{payload: json.RawMessage(payload)})

	w := doGet(t, r, "/recommendations/external/7")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != payload {
		t.Errorf("el payload externo debe pasar byte a byte: %s", w.Body)
	}
}

func TestGetExternalErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no disponible", simclient.ErrUnavailable, http.StatusServiceUnavailable},
		{"404 del servicio", simclient.ErrNotFound, http.StatusNotFound},
		{"status propagado", &simclient.StatusError{StatusCode: http.StatusBadGateway}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&fakeV1{}, &fakeV2{}, &fakeKW{}, &fakeSim{err: tc.err})
			w := doGet(t, r, "/recommendations/external/7")
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, quiero %d", w.Code, tc.wantStatus)
			}
		})
	}
}
