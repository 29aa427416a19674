package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Chispasgg/sakila-api/internal/models"
)

const (
	// diversificación: tope de recomendaciones por palabra clave
	maxPerKeyword = 3
	// se buscan 5x candidatos para que la diversificación tenga de dónde elegir
	candidateExpansion = 5
	// palabras muy cortas no discriminan nada
	minKeywordLen = 4
)

var keywordRe = regexp.MustCompile(`[a-z]+`)

// stopwords: palabras de relleno que dominarían las frecuencias si no se
// filtran. Lista corta de función gramatical, no de contenido.
var keywordStopwords = map[string]bool{
	"about": true, "after": true, "against": true, "along": true,
	"alongside": true, "although": true, "because": true, "before": true,
	"behind": true, "between": true, "during": true, "from": true,
	"have": true, "inside": true, "into": true, "must": true,
	"that": true, "their": true, "then": true, "there": true,
	"they": true, "this": true, "under": true, "were": true,
	"what": true, "when": true, "where": true, "which": true,
	"while": true, "will": true, "with": true, "within": true,
	"without": true,
}

// keywordWeights extrae y pondera las palabras clave del texto de una
// película. El peso de cada palabra es su frecuencia en el texto.
func keywordWeights(f models.FilmDoc) map[string]int {
	text := strings.ToLower(f.Title + " " + f.Description)
	out := make(map[string]int)
	for _, w := range keywordRe.FindAllString(text, -1) {
		if len(w) < minKeywordLen || keywordStopwords[w] {
			continue
		}
		out[w]++
	}
	return out
}

// KeywordRecommendService: estrategia por afinidad temática. Agrega las
// palabras clave de las descripciones del historial, rankea candidatos por
// afinidad con esas palabras y diversifica el resultado para que ninguna
// palabra domine la lista.
type KeywordRecommendService struct {
	customers CustomerStore
	films     CatalogStore
	rentals   HistoryStore
}

func NewKeywordRecommendService(c CustomerStore, f CatalogStore, r HistoryStore) *KeywordRecommendService {
	return &KeywordRecommendService{customers: c, films: f, rentals: r}
}

func (s *KeywordRecommendService) Recommend(ctx context.Context, customerID int) (*models.V1Result, error) {
	if err := checkCustomer(ctx, s.customers, customerID); err != nil {
		return nil, err
	}

	history, watched, err := historyFilms(ctx, s.rentals, s.films, customerID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return &models.V1Result{
			CustomerID:      customerID,
			Focus:           "keywords",
			Recommendations: []models.RecommendedFilm{},
			Message:         noHistoryMsg,
		}, nil
	}

	// preferencias: suma de pesos de palabra clave sobre todo el historial
	// (los alquileres repetidos cuentan varias veces, como en el resto)
	prefs := make(map[string]int)
	for _, f := range history {
		for w, n := range keywordWeights(f) {
			prefs[w] += n
		}
	}
	if len(prefs) == 0 {
		return &models.V1Result{
			CustomerID:      customerID,
			Focus:           "keywords",
			Recommendations: []models.RecommendedFilm{},
			Message:         "No recommendations: rented films have no usable description text.",
		}, nil
	}

	all, err := s.films.All(ctx)
	if err != nil {
		return nil, err
	}

	// pool ampliado de candidatos por afinidad total
	type candidate struct {
		film     models.FilmDoc
		keywords map[string]int
		affinity int
	}
	pool := make([]candidate, 0, len(all))
	for _, f := range all {
		if watched[f.FilmID] {
			continue
		}
		kws := keywordWeights(f)
		affinity := 0
		for w := range kws {
			affinity += prefs[w]
		}
		if affinity == 0 {
			continue
		}
		pool = append(pool, candidate{film: f, keywords: kws, affinity: affinity})
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].affinity != pool[j].affinity {
			return pool[i].affinity > pool[j].affinity
		}
		return pool[i].film.FilmID < pool[j].film.FilmID
	})
	if max := recommendationLimit * candidateExpansion; len(pool) > max {
		pool = pool[:max]
	}

	// palabras clave en orden de relevancia, desempate alfabético
	keywords := make([]string, 0, len(prefs))
	for w := range prefs {
		keywords = append(keywords, w)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if prefs[keywords[i]] != prefs[keywords[j]] {
			return prefs[keywords[i]] > prefs[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	// diversificación: recorrer palabras por relevancia, tomando hasta
	// maxPerKeyword candidatos que la contengan y no estén ya en la lista
	picked := make(map[int]bool)
	items := make([]models.RecommendedFilm, 0, recommendationLimit)
	topKeywords := make([]string, 0, maxPerKeyword)

	for _, kw := range keywords {
		if len(items) >= recommendationLimit {
			break
		}
		taken := 0
		for _, c := range pool {
			if taken >= maxPerKeyword || len(items) >= recommendationLimit {
				break
			}
			if picked[c.film.FilmID] {
				continue
			}
			if _, ok := c.keywords[kw]; !ok {
				continue
			}
			picked[c.film.FilmID] = true
			item := recommendedFilm(c.film, history)
			item.Explanation = fmt.Sprintf("Shares the theme %q with films you have rented", kw)
			items = append(items, item)
			taken++
		}
		if taken > 0 && len(topKeywords) < maxPerKeyword {
			topKeywords = append(topKeywords, kw)
		}
	}

	return &models.V1Result{
		CustomerID:      customerID,
		Focus:           "keywords",
		Recommendations: items,
		Explanation:     "Based on recurring themes in your rented films: " + strings.Join(topKeywords, ", "),
	}, nil
}
