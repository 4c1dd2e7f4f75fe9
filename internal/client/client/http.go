package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"github.com/google/uuid"
)

const (
	maxBodySize     = 8 << 20
	requestIDHeader = "X-Request-ID"
)

// Shape is the top-level JSON kind a document must have.
type Shape int

const (
	ShapeArray Shape = iota
	ShapeObject
)

// getJSON fetches url and decodes its body into T. resource names the
// document in errors and logs.
func getJSON[T any](ctx context.Context, hc *http.Client, log logging.Logger, url, resource string, shape Shape) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, fmt.Errorf("%s: %w: %v", resource, ErrConnection, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)

	log = log.With("resource", resource, "request_id", reqID)
	log.Debug(ctx, "fetching", "url", url)

	resp, err := hc.Do(req)
	if err != nil {
		log.Warn(ctx, "fetch failed", "error", err)
		return zero, fmt.Errorf("%s: %w: %v", resource, ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		log.Warn(ctx, "unexpected status", "status", resp.StatusCode)
		return zero, &StatusError{Resource: resource, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Warn(ctx, "reading body failed", "error", err)
		return zero, fmt.Errorf("%s: %w: %v", resource, ErrConnection, err)
	}

	v, err := decode[T](body, resource, shape)
	if err != nil {
		log.Warn(ctx, "decoding failed", "error", err)
		return zero, err
	}
	log.Debug(ctx, "fetched", "bytes", len(body))
	return v, nil
}

// decode validates body as JSON of the expected shape and unmarshals it.
func decode[T any](body []byte, resource string, shape Shape) (T, error) {
	var zero T

	if !json.Valid(body) {
		return zero, fmt.Errorf("%s: %w", resource, ErrDataFormat)
	}

	trimmed := bytes.TrimSpace(body)
	switch {
	case shape == ShapeArray && trimmed[0] != '[':
		return zero, fmt.Errorf("%s: %w: expected a list", resource, ErrSchema)
	case shape == ShapeObject && trimmed[0] != '{':
		return zero, fmt.Errorf("%s: %w: expected an object", resource, ErrSchema)
	}

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) || errors.Is(err, models.ErrNotObject) {
			return zero, fmt.Errorf("%s: %w: %v", resource, ErrSchema, err)
		}
		return zero, fmt.Errorf("%s: %w: %v", resource, ErrDataFormat, err)
	}
	return v, nil
}
