package backend

import (
	"encoding/json"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// Envelope is the {status, message, data} wrapper present on every backend
// response body. Data stays raw until the caller knows its shape.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decodeEnvelope parses a 2xx body into an Envelope. A body that is not a
// JSON object with the wrapper fields is malformed, never a crash.
func decodeEnvelope(raw []byte) (*Envelope, error) {
	// 204-style empty bodies (deletes) are a valid, payload-less envelope.
	if len(raw) == 0 {
		return &Envelope{}, nil
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &UpstreamError{Kind: domain.ErrMalformedResponse}
	}
	return &env, nil
}

// decodeData unmarshals the envelope payload into T. A missing or
// mismatched payload yields domain.ErrMalformedResponse; every resource
// client funnels through here so all callers see the same three outcomes
// (value, malformed, upstream failure).
func decodeData[T any](env *Envelope) (*T, error) {
	if env == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, &UpstreamError{Kind: domain.ErrMalformedResponse, Message: env.Message}
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, &UpstreamError{Kind: domain.ErrMalformedResponse, Message: env.Message}
	}
	return &out, nil
}

// decodeList is decodeData for unpaginated array payloads.
func decodeList[T any](env *Envelope) ([]T, error) {
	out, err := decodeData[[]T](env)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// decodePage unmarshals a paginated payload. Both content and pageable must
// be present: their absence marks the envelope malformed, which list views
// render as an empty page.
func decodePage[T any](env *Envelope) (*domain.Page[T], error) {
	if env == nil || len(env.Data) == 0 {
		return nil, &UpstreamError{Kind: domain.ErrMalformedResponse}
	}
	var probe struct {
		Content  *[]T             `json:"content"`
		Pageable *domain.Pageable `json:"pageable"`
	}
	if err := json.Unmarshal(env.Data, &probe); err != nil || probe.Content == nil || probe.Pageable == nil {
		return nil, &UpstreamError{Kind: domain.ErrMalformedResponse, Message: env.Message}
	}
	return &domain.Page[T]{Content: *probe.Content, Pageable: *probe.Pageable}, nil
}
