package repository

import (
	"context"

	"github.com/Chispasgg/sakila-api/internal/db"
	"github.com/Chispasgg/sakila-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CustomerRepository struct {
	col *mongo.Collection
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{col: db.DB().Collection("customers")}
}

// FindByID devuelve nil, nil si el cliente no existe (el servicio decide
// si eso es un NotFound; un historial vacío NO pasa por acá).
func (r *CustomerRepository) FindByID(ctx context.Context, customerID int) (*models.CustomerDoc, error) {
	var c models.CustomerDoc
	err := r.col.FindOne(ctx, bson.M{"customerId": customerID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &c, err
}
