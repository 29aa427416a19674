package db

import (
	"context"
	"log"
	"time"

	"github.com/Chispasgg/sakila-api/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

var (
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
)

// InitMongo abre la conexión al catálogo Sakila. El proceso no puede
// servir nada sin la base, así que un fallo aquí es fatal.
func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[sakila-db] no se pudo conectar a Mongo: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[sakila-db] Mongo no responde al ping: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[sakila-db] catálogo listo en %s / DB=%s", cfg.MongoURI, cfg.MongoDB)
}

// DB devuelve la base con las colecciones films, customers, rentals y feedback.
func DB() *mongo.Database {
	return mongoDB
}
