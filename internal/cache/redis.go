package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Chispasgg/sakila-api/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis levanta la conexión usada para cachear respuestas de
// recomendación. Como calcular un ranking sin caché sólo es más lento,
// un Redis caído en el arranque sí corta el proceso: mejor enterarse ya.
func InitRedis(cfg *config.Config) {
	client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("[redis] no se pudo conectar: %v", err)
	}
	log.Printf("[redis] caché de recomendaciones lista en %s", cfg.RedisAddr)
}

// GetJSON busca una key y deserializa el JSON guardado en `dest`.
// Devuelve false si la key no existe. Con el cliente sin inicializar
// (tests, arranques parciales) se comporta como caché vacía.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa `value` y lo guarda con TTL en segundos.
// Sin cliente inicializado es un no-op.
func SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, time.Duration(ttlSeconds)*time.Second).Err()
}
