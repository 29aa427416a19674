package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
)

// TTL de respuestas cacheadas: 30 minutos. No hay invalidación explícita,
// el historial de alquileres cambia lo bastante lento como para tolerarlo.
const ResponseTTLSeconds = 30 * 60

type cachedResponse struct {
	Status      int             `json:"status"`
	ContentType string          `json:"contentType"`
	Body        json.RawMessage `json:"body"`
}

type (
	getFunc func(ctx context.Context, key string, dest any) (bool, error)
	setFunc func(ctx context.Context, key string, value any, ttlSeconds int) error
)

// ResponseCache cachea en Redis las respuestas GET exitosas, con clave
// método + URI completa (incluyendo query params). Un miss siempre se puede
// recomputar; un hit devuelve el cuerpo byte a byte tal como se guardó.
func ResponseCache(next http.Handler) http.Handler {
	return responseCacheWith(GetJSON, SetJSON, next)
}

func responseCacheWith(get getFunc, set setFunc, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := "resp:" + r.Method + ":" + r.URL.RequestURI()

		var hit cachedResponse
		if ok, err := get(r.Context(), key, &hit); err == nil && ok {
			w.Header().Set("Content-Type", hit.ContentType)
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(hit.Status)
			_, _ = w.Write(hit.Body)
			return
		}

		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// solo cacheamos 200 con cuerpo JSON válido
		if rec.status != http.StatusOK || !json.Valid(rec.buf.Bytes()) {
			return
		}
		entry := cachedResponse{
			Status:      rec.status,
			ContentType: rec.Header().Get("Content-Type"),
			Body:        json.RawMessage(rec.buf.Bytes()),
		}
		if err := set(r.Context(), key, entry, ResponseTTLSeconds); err != nil {
			log.Printf("[cache] error guardando respuesta en Redis: %v", err)
		}
	})
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}
