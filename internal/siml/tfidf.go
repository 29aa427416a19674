// Package siml implementa el modelo TF-IDF con similitud coseno que usa el
// servicio de recomendación semántica. Cada película se tokeniza sobre su
// título, descripción, categorías, actores, idioma y rating; el perfil del
// cliente es el promedio normalizado de los vectores de lo que ya alquiló.
package siml

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Chispasgg/sakila-api/internal/models"
)

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// vector disperso término→peso, normalizado L2 salvo que sea cero.
type vector map[string]float64

// Model mantiene los vectores TF-IDF de todo el catálogo. Es inmutable una
// vez construido: para recargar se construye uno nuevo y se intercambia.
type Model struct {
	films   []models.FilmDoc
	vectors map[int]vector
	idf     map[string]float64
}

// Scored es una película puntuada por similitud frente al perfil.
type Scored struct {
	Film  models.FilmDoc
	Score float64
}

// FilmText arma el documento textual de una película para el modelo.
func FilmText(f models.FilmDoc) string {
	parts := []string{f.Title, f.Description}
	parts = append(parts, f.Categories...)
	parts = append(parts, f.Actors...)
	parts = append(parts, f.Language, f.Rating)
	if f.ReleaseYear > 0 {
		parts = append(parts, strconv.Itoa(f.ReleaseYear))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func tokenize(text string) []string {
	return tokenRe.FindAllString(text, -1)
}

// NewModel construye el modelo sobre el catálogo completo.
func NewModel(films []models.FilmDoc) *Model {
	m := &Model{
		films:   films,
		vectors: make(map[int]vector, len(films)),
		idf:     make(map[string]float64),
	}

	// frecuencia documental de cada término
	df := make(map[string]int)
	tokensByFilm := make(map[int][]string, len(films))
	for _, f := range films {
		toks := tokenize(FilmText(f))
		tokensByFilm[f.FilmID] = toks
		seen := make(map[string]bool, len(toks))
		for _, t := range toks {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	n := float64(len(films))
	for term, count := range df {
		// suavizado estándar: ln((1+N)/(1+df)) + 1
		m.idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}

	for _, f := range films {
		m.vectors[f.FilmID] = m.vectorize(tokensByFilm[f.FilmID])
	}
	return m
}

func (m *Model) vectorize(tokens []string) vector {
	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	v := make(vector, len(tf))
	for term, count := range tf {
		v[term] = float64(count) * m.idf[term]
	}
	normalize(v)
	return v
}

func normalize(v vector) {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for term, w := range v {
		v[term] = w / norm
	}
}

func dot(a, b vector) float64 {
	// itera sobre el más chico
	if len(b) < len(a) {
		a, b = b, a
	}
	var s float64
	for term, w := range a {
		s += w * b[term]
	}
	return s
}

// Profile promedia los vectores de las películas vistas y normaliza.
// Devuelve nil si ninguna de las películas está en el modelo.
func (m *Model) Profile(watched []int) vector {
	profile := make(vector)
	found := 0
	for _, id := range watched {
		v, ok := m.vectors[id]
		if !ok {
			continue
		}
		found++
		for term, w := range v {
			profile[term] += w
		}
	}
	if found == 0 {
		return nil
	}
	for term := range profile {
		profile[term] /= float64(found)
	}
	normalize(profile)
	return profile
}

// Recommend devuelve las películas más similares al perfil del cliente,
// excluyendo lo ya visto. Empates por filmId ascendente para salidas estables.
func (m *Model) Recommend(watched []int, limit int) []Scored {
	profile := m.Profile(watched)
	if profile == nil {
		return nil
	}

	watchedSet := make(map[int]bool, len(watched))
	for _, id := range watched {
		watchedSet[id] = true
	}

	scored := make([]Scored, 0, len(m.films))
	for _, f := range m.films {
		if watchedSet[f.FilmID] {
			continue
		}
		scored = append(scored, Scored{Film: f, Score: dot(profile, m.vectors[f.FilmID])})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Film.FilmID < scored[j].Film.FilmID
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Size devuelve cuántas películas indexa el modelo.
func (m *Model) Size() int {
	return len(m.films)
}
