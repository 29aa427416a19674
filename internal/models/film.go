package models

import "strings"

// FilmDoc es el documento de catálogo en Mongo. El esquema Sakila llega
// desnormalizado: categorías y actores embebidos como arrays, idioma por nombre.
type FilmDoc struct {
	FilmID         int      `json:"film_id" bson:"filmId"`
	Title          string   `json:"title" bson:"title"`
	Description    string   `json:"description,omitempty" bson:"description,omitempty"`
	ReleaseYear    int      `json:"release_year,omitempty" bson:"releaseYear,omitempty"`
	Rating         string   `json:"rating,omitempty" bson:"rating,omitempty"`
	Language       string   `json:"language,omitempty" bson:"language,omitempty"`
	Categories     []string `json:"categories" bson:"categories"`
	Actors         []string `json:"actors" bson:"actors"`
	RentalDuration int      `json:"rental_duration,omitempty" bson:"rentalDuration,omitempty"` // días permitidos de alquiler
	RentalRate     float64  `json:"rental_rate,omitempty" bson:"rentalRate,omitempty"`
}

// Orden MPAA: G < PG < PG-13 < R < NC-17. Rank 0 = sin clasificación.
var ratingRanks = map[string]int{
	"G":     1,
	"PG":    2,
	"PG-13": 3,
	"R":     4,
	"NC-17": 5,
}

var ratingLabels = map[int]string{
	1: "G",
	2: "PG",
	3: "PG-13",
	4: "R",
	5: "NC-17",
}

// RatingRank mapea la etiqueta de clasificación a su rango ordinal (1..5, 0 si desconocida).
func RatingRank(label string) int {
	return ratingRanks[strings.TrimSpace(label)]
}

// RatingLabel es la inversa de RatingRank; "" para rangos fuera de 1..5.
func RatingLabel(rank int) string {
	return ratingLabels[rank]
}
