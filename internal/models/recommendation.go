package models

// ValueCount: par (valor, frecuencia) dentro de una dimensión de atributo.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// RankCount: frecuencia de un rango ordinal de clasificación (1..5).
type RankCount struct {
	Rank  int `json:"rank"`
	Count int `json:"count"`
}

// RecommendedFilm es un ítem de recomendación. Score solo viene en V2
// (enteros sin normalizar, comparables únicamente dentro de una misma consulta).
// Los cross counts dicen cuántos alquileres del cliente comparten categorías
// o actores con este candidato, se use el filtro que se use.
type RecommendedFilm struct {
	FilmID                int      `json:"film_id"`
	Title                 string   `json:"title"`
	Description           string   `json:"description,omitempty"`
	ReleaseYear           int      `json:"release_year,omitempty"`
	Categories            []string `json:"categories,omitempty"`
	Actors                []string `json:"actors,omitempty"`
	Score                 *int     `json:"score,omitempty"`
	Explanation           string   `json:"explanation,omitempty"`
	SharedCategoryRentals int      `json:"shared_category_rentals"`
	SharedActorRentals    int      `json:"shared_actor_rentals"`
}

// V1Result: respuesta de la estrategia por reglas. O bien lista + explicación,
// o bien Message como resultado centinela ("sin historial"), que no es un error.
type V1Result struct {
	CustomerID      int               `json:"customer_id"`
	Focus           string            `json:"focus"`
	Recommendations []RecommendedFilm `json:"recommendations"`
	Explanation     string            `json:"explanation,omitempty"`
	Message         string            `json:"message,omitempty"`
}