package service

import (
	"sort"
	"strings"

	"github.com/Chispasgg/sakila-api/internal/models"
)

// PreferenceCounts: frecuencias de atributos sobre el historial de UN cliente.
// Se calcula fresco por request, nunca se persiste.
type PreferenceCounts struct {
	Categories map[string]int
	Actors     map[string]int
	Languages  map[string]int
	Ratings    map[int]int // clave: rango ordinal 1..5
}

// CountAttributes agrega las frecuencias por dimensión. `history` trae una
// entrada por alquiler, así que alquilar dos veces la misma película cuenta dos.
// Los idiomas llegan con espacios en la base, se normalizan con TrimSpace.
// El rango 0 (sin clasificación) queda fuera del conteo de preferencias.
func CountAttributes(history []models.FilmDoc) *PreferenceCounts {
	p := &PreferenceCounts{
		Categories: make(map[string]int),
		Actors:     make(map[string]int),
		Languages:  make(map[string]int),
		Ratings:    make(map[int]int),
	}
	for _, f := range history {
		for _, c := range f.Categories {
			p.Categories[c]++
		}
		for _, a := range f.Actors {
			p.Actors[a]++
		}
		if lang := strings.TrimSpace(f.Language); lang != "" {
			p.Languages[lang]++
		}
		if rank := models.RatingRank(f.Rating); rank > 0 {
			p.Ratings[rank]++
		}
	}
	return p
}

// topValues ordena por frecuencia descendente y desempata por valor ascendente
// para que el resultado sea determinista (y cacheable byte a byte).
func topValues(m map[string]int, limit int) []models.ValueCount {
	out := make([]models.ValueCount, 0, len(m))
	for v, n := range m {
		out = append(out, models.ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (p *PreferenceCounts) TopCategories(limit int) []models.ValueCount {
	return topValues(p.Categories, limit)
}

func (p *PreferenceCounts) TopActors(limit int) []models.ValueCount {
	return topValues(p.Actors, limit)
}

func (p *PreferenceCounts) TopLanguages(limit int) []models.ValueCount {
	return topValues(p.Languages, limit)
}

// TopRatingRanks devuelve rangos ordinales, no etiquetas, para que la
// semántica numérica sea la misma en las dos estrategias.
func (p *PreferenceCounts) TopRatingRanks(limit int) []models.RankCount {
	out := make([]models.RankCount, 0, len(p.Ratings))
	for rank, n := range p.Ratings {
		out = append(out, models.RankCount{Rank: rank, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Rank < out[j].Rank
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SharedCategoryWeight: suma de la frecuencia histórica de cada categoría
// compartida con la película. Es el factor de categoría del score V2.
func (p *PreferenceCounts) SharedCategoryWeight(f models.FilmDoc) int {
	total := 0
	for _, c := range f.Categories {
		total += p.Categories[c]
	}
	return total
}

func (p *PreferenceCounts) SharedActorWeight(f models.FilmDoc) int {
	total := 0
	for _, a := range f.Actors {
		total += p.Actors[a]
	}
	return total
}

// crossCounts: cuántos alquileres del historial comparten al menos una
// categoría / al menos un actor con el candidato. Alimenta las explicaciones
// aunque el filtro activo sea otra dimensión.
func crossCounts(history []models.FilmDoc, candidate models.FilmDoc) (catRentals, actorRentals int) {
	cats := make(map[string]bool, len(candidate.Categories))
	for _, c := range candidate.Categories {
		cats[c] = true
	}
	actors := make(map[string]bool, len(candidate.Actors))
	for _, a := range candidate.Actors {
		actors[a] = true
	}

	for _, h := range history {
		for _, c := range h.Categories {
			if cats[c] {
				catRentals++
				break
			}
		}
		for _, a := range h.Actors {
			if actors[a] {
				actorRentals++
				break
			}
		}
	}
	return catRentals, actorRentals
}

func valueNames(vs []models.ValueCount) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Value
	}
	return out
}
