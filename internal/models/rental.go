package models

import "time"

// RentalDoc es el hecho histórico de alquiler tal como está en Mongo.
// Referencia a la película vía inventoryId (varias copias por film).
// Solo lectura desde el recomendador.
type RentalDoc struct {
	RentalID    int        `json:"rental_id" bson:"rentalId"`
	InventoryID int        `json:"inventory_id" bson:"inventoryId"`
	CustomerID  int        `json:"customer_id" bson:"customerId"`
	RentalDate  time.Time  `json:"rental_date" bson:"rentalDate"`
	ReturnDate  *time.Time `json:"return_date,omitempty" bson:"returnDate,omitempty"`
}

// InventoryDoc: copia física de una película.
type InventoryDoc struct {
	InventoryID int `json:"inventory_id" bson:"inventoryId"`
	FilmID      int `json:"film_id" bson:"filmId"`
}

// RentalFact es un alquiler ya resuelto a su película a través de inventory.
type RentalFact struct {
	RentalID   int
	FilmID     int
	RentalDate time.Time
	ReturnDate *time.Time
}

// RentalDetail es lo que devolvemos por API al listar el historial de un cliente.
type RentalDetail struct {
	RentalID       int        `json:"rental_id"`
	FilmID         int        `json:"film_id"`
	Title          string     `json:"title"`
	RentalDate     time.Time  `json:"rental_date"`
	ReturnDate     *time.Time `json:"return_date,omitempty"`
	RentalDuration int        `json:"rental_duration"`
	RentalRate     float64    `json:"rental_rate"`
	Late           bool       `json:"late"`
}
