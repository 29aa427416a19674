package service

import (
	"fmt"
	"strings"
)

// Cada estrategia tiene su propio vocabulario de focus y NO se unifican:
// V1 usa plurales (categories, actors, ...), V2 usa otro juego de tokens
// (genres, actors, language, rating). Cambiarlo rompería el contrato externo.

// FocusV1 es la dimensión elegida para la estrategia por reglas.
type FocusV1 int

const (
	FocusV1Category FocusV1 = iota
	FocusV1Actor
	FocusV1Language
	FocusV1Rating
	FocusV1Director
	FocusV1Popularity
)

func (f FocusV1) String() string {
	switch f {
	case FocusV1Category:
		return "categories"
	case FocusV1Actor:
		return "actors"
	case FocusV1Language:
		return "languages"
	case FocusV1Rating:
		return "ratings"
	case FocusV1Director:
		return "directors"
	case FocusV1Popularity:
		return "popularity"
	}
	return "unknown"
}

var focusOptionsV1 = []string{"categories", "actors", "languages", "ratings", "directors", "popularity"}

// FocusOptionsV1 devuelve el vocabulario V1 en orden fijo (contrato del
// endpoint /recommendations/focus-options).
func FocusOptionsV1() []string {
	out := make([]string, len(focusOptionsV1))
	copy(out, focusOptionsV1)
	return out
}

// InvalidFocusError: focus fuera del vocabulario de la estrategia. Se
// devuelve al cliente listando las opciones válidas.
type InvalidFocusError struct {
	Strategy string
	Given    string
	Allowed  []string
}

func (e *InvalidFocusError) Error() string {
	return fmt.Sprintf("invalid focus %q for %s (allowed: %s)",
		e.Given, e.Strategy, strings.Join(e.Allowed, ", "))
}

// ParseFocusV1 valida el focus de la estrategia V1. Sin focus se asume
// categories.
func ParseFocusV1(s string) (FocusV1, error) {
	switch s {
	case "", "categories":
		return FocusV1Category, nil
	case "actors":
		return FocusV1Actor, nil
	case "languages":
		return FocusV1Language, nil
	case "ratings":
		return FocusV1Rating, nil
	case "directors":
		return FocusV1Director, nil
	case "popularity":
		return FocusV1Popularity, nil
	}
	return 0, &InvalidFocusError{Strategy: "v1", Given: s, Allowed: FocusOptionsV1()}
}

var focusOptionsV2 = []string{"actors", "genres", "language", "rating"}

// FocusOptionsV2 devuelve el vocabulario V2 en orden fijo.
func FocusOptionsV2() []string {
	out := make([]string, len(focusOptionsV2))
	copy(out, focusOptionsV2)
	return out
}

// ValidateFocusV2 es la validación del facade para V2: sin focus se asume
// actors, un token desconocido se rechaza. Ojo: el scorer V2 en sí es más
// permisivo (ver weightsForFocus), ambas conductas son contrato.
func ValidateFocusV2(s string) (string, error) {
	if s == "" {
		return "actors", nil
	}
	for _, opt := range focusOptionsV2 {
		if s == opt {
			return s, nil
		}
	}
	return "", &InvalidFocusError{Strategy: "v2", Given: s, Allowed: FocusOptionsV2()}
}
