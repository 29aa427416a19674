// internal/repository/film_repo.go
package repository

import (
	"context"

	"github.com/Chispasgg/sakila-api/internal/db"
	"github.com/Chispasgg/sakila-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FilmRepository struct {
	col *mongo.Collection
}

func NewFilmRepository() *FilmRepository {
	return &FilmRepository{col: db.DB().Collection("films")}
}

func (r *FilmRepository) GetByID(ctx context.Context, filmID int) (*models.FilmDoc, error) {
	var f models.FilmDoc
	err := r.col.FindOne(ctx, bson.M{"filmId": filmID}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &f, err
}

// All devuelve el catálogo completo, ordenado por filmId. Sakila es chico
// (~1000 películas), así que V2 puntúa el catálogo entero en memoria.
func (r *FilmRepository) All(ctx context.Context) ([]models.FilmDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "filmId", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.FilmDoc
	for cur.Next(ctx) {
		var f models.FilmDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}

func (r *FilmRepository) FilmsByIDs(ctx context.Context, ids []int) (map[int]models.FilmDoc, error) {
	out := make(map[int]models.FilmDoc, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"filmId": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var f models.FilmDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out[f.FilmID] = f
	}
	return out, cur.Err()
}

// findIn busca películas cuyo campo `field` contenga alguno de `values`,
// excluyendo las ya alquiladas, hasta `limit`. Orden estable por filmId.
func (r *FilmRepository) findIn(ctx context.Context, field string, values []string, exclude []int, limit int) ([]models.FilmDoc, error) {
	filter := bson.M{field: bson.M{"$in": values}}
	if len(exclude) > 0 {
		filter["filmId"] = bson.M{"$nin": exclude}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "filmId", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.FilmDoc
	for cur.Next(ctx) {
		var f models.FilmDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}

func (r *FilmRepository) FindByCategories(ctx context.Context, values []string, exclude []int, limit int) ([]models.FilmDoc, error) {
	return r.findIn(ctx, "categories", values, exclude, limit)
}

func (r *FilmRepository) FindByActors(ctx context.Context, values []string, exclude []int, limit int) ([]models.FilmDoc, error) {
	return r.findIn(ctx, "actors", values, exclude, limit)
}

func (r *FilmRepository) FindByLanguages(ctx context.Context, values []string, exclude []int, limit int) ([]models.FilmDoc, error) {
	return r.findIn(ctx, "language", values, exclude, limit)
}

// FindByRatings recibe etiquetas MPAA (ya convertidas desde rangos ordinales).
func (r *FilmRepository) FindByRatings(ctx context.Context, labels []string, exclude []int, limit int) ([]models.FilmDoc, error) {
	return r.findIn(ctx, "rating", labels, exclude, limit)
}

func (r *FilmRepository) Search(
	ctx context.Context,
	q string,
	category string,
	yearFrom, yearTo int,
	limit, offset int,
) ([]models.FilmDoc, error) {

	filter := bson.M{}

	if q != "" {
		filter["title"] = bson.M{"$regex": q, "$options": "i"}
	}
	if category != "" {
		// categories es un array, esto busca que lo contenga
		filter["categories"] = category
	}
	if yearFrom > 0 || yearTo > 0 {
		yearCond := bson.M{}
		if yearFrom > 0 {
			yearCond["$gte"] = yearFrom
		}
		if yearTo > 0 {
			yearCond["$lte"] = yearTo
		}
		filter["releaseYear"] = yearCond
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "filmId", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.FilmDoc
	for cur.Next(ctx) {
		var f models.FilmDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}
