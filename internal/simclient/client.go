// Package simclient habla con el servicio externo de similitud semántica.
// Un solo intento por request, timeout fijo, y el payload JSON se reenvía
// tal cual: el servicio es dueño de su propio formato y vocabulario de focus.
package simclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

var (
	// ErrUnavailable: no se pudo conectar (connection refused, DNS, timeout).
	ErrUnavailable = errors.New("similarity service unavailable")
	// ErrNotFound: el servicio respondió 404 (cliente desconocido allá).
	ErrNotFound = errors.New("similarity service: not found")
)

// StatusError: el servicio respondió un status de error distinto de 404,
// que se propaga tal cual al cliente.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("similarity service returned status %d", e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Recommendations llama al endpoint de inferencia y devuelve el payload sin
// tocar. El focus viaja verbatim, sin validar: el servicio normaliza solo.
func (c *Client) Recommendations(ctx context.Context, customerID int, focus string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/ml/recommendations/%d", c.baseURL, customerID)
	if focus != "" {
		u += "?focus=" + url.QueryEscape(focus)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("similarity service: reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 300:
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("similarity service: invalid JSON payload")
	}
	return json.RawMessage(body), nil
}
