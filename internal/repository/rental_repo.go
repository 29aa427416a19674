package repository

import (
	"context"

	"github.com/Chispasgg/sakila-api/internal/db"
	"github.com/Chispasgg/sakila-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RentalRepository struct {
	rentals   *mongo.Collection
	inventory *mongo.Collection
}

func NewRentalRepository() *RentalRepository {
	return &RentalRepository{
		rentals:   db.DB().Collection("rentals"),
		inventory: db.DB().Collection("inventory"),
	}
}

// filmIDsForInventory resuelve inventoryId -> filmId para un lote de copias.
func (r *RentalRepository) filmIDsForInventory(ctx context.Context, invIDs []int) (map[int]int, error) {
	out := make(map[int]int, len(invIDs))
	if len(invIDs) == 0 {
		return out, nil
	}

	cur, err := r.inventory.Find(ctx, bson.M{"inventoryId": bson.M{"$in": invIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var inv models.InventoryDoc
		if err := cur.Decode(&inv); err != nil {
			return nil, err
		}
		out[inv.InventoryID] = inv.FilmID
	}
	return out, cur.Err()
}

// HistoryFacts devuelve los alquileres de un cliente, cada uno resuelto a su
// película a través de inventory. Un elemento por alquiler: las repeticiones
// de una misma película cuentan varias veces en las frecuencias.
func (r *RentalRepository) HistoryFacts(ctx context.Context, customerID int) ([]models.RentalFact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rentalId", Value: 1}})
	cur, err := r.rentals.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rentals []models.RentalDoc
	for cur.Next(ctx) {
		var rd models.RentalDoc
		if err := cur.Decode(&rd); err != nil {
			return nil, err
		}
		rentals = append(rentals, rd)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return []models.RentalFact{}, nil
	}

	invIDs := make([]int, 0, len(rentals))
	seen := make(map[int]bool, len(rentals))
	for _, rd := range rentals {
		if !seen[rd.InventoryID] {
			seen[rd.InventoryID] = true
			invIDs = append(invIDs, rd.InventoryID)
		}
	}

	filmByInv, err := r.filmIDsForInventory(ctx, invIDs)
	if err != nil {
		return nil, err
	}

	facts := make([]models.RentalFact, 0, len(rentals))
	for _, rd := range rentals {
		filmID, ok := filmByInv[rd.InventoryID]
		if !ok {
			// copia huérfana, la ignoramos
			continue
		}
		facts = append(facts, models.RentalFact{
			RentalID:   rd.RentalID,
			FilmID:     filmID,
			RentalDate: rd.RentalDate,
			ReturnDate: rd.ReturnDate,
		})
	}
	return facts, nil
}

// GlobalRentalCounts cuenta alquileres por película sobre toda la base
// (popularidad global). Se arma en memoria igual que el resto de agregados.
func (r *RentalRepository) GlobalRentalCounts(ctx context.Context) (map[int]int, error) {
	opts := options.Find().SetProjection(bson.M{"inventoryId": 1})
	cur, err := r.rentals.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	countByInv := make(map[int]int)
	for cur.Next(ctx) {
		var rd models.RentalDoc
		if err := cur.Decode(&rd); err != nil {
			return nil, err
		}
		countByInv[rd.InventoryID]++
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	invIDs := make([]int, 0, len(countByInv))
	for id := range countByInv {
		invIDs = append(invIDs, id)
	}
	filmByInv, err := r.filmIDsForInventory(ctx, invIDs)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for invID, n := range countByInv {
		if filmID, ok := filmByInv[invID]; ok {
			counts[filmID] += n
		}
	}
	return counts, nil
}
