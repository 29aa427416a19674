package repository

import (
	"context"

	"github.com/Chispasgg/sakila-api/internal/db"
	"github.com/Chispasgg/sakila-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{
		col:      db.DB().Collection("feedback"),
		counters: db.DB().Collection("counters"),
	}
}

// NextFeedbackID reserva el siguiente feedbackId con un contador atómico:
// dos POST concurrentes nunca pueden leer el mismo valor.
func (r *FeedbackRepository) NextFeedbackID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "feedbackId"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (r *FeedbackRepository) Insert(ctx context.Context, fb *models.FeedbackDoc) error {
	_, err := r.col.InsertOne(ctx, fb)
	return err
}

func (r *FeedbackRepository) FindByCustomer(ctx context.Context, customerID int) ([]models.FeedbackDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.FeedbackDoc{}
	for cur.Next(ctx) {
		var fb models.FeedbackDoc
		if err := cur.Decode(&fb); err != nil {
			return nil, err
		}
		out = append(out, fb)
	}
	return out, cur.Err()
}
