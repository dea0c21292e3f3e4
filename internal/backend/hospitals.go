package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

const hospitalsPath = "/api/admin/hospitals"

// Hospitals maps the hospitals directory to single HTTP calls.
type Hospitals struct {
	c *Client
}

func NewHospitals(c *Client) *Hospitals {
	return &Hospitals{c: c}
}

func (h *Hospitals) List(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.Hospital], error) {
	env, err := h.c.do(ctx, http.MethodGet, hospitalsPath, q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.Hospital](env)
}

func (h *Hospitals) Get(ctx context.Context, id int64) (*domain.Hospital, error) {
	env, err := h.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", hospitalsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Hospital](env)
}

func (h *Hospitals) Create(ctx context.Context, in ports.HospitalInput) (*domain.Hospital, error) {
	env, err := h.c.do(ctx, http.MethodPost, hospitalsPath, nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Hospital](env)
}

func (h *Hospitals) Update(ctx context.Context, id int64, in ports.HospitalInput) (*domain.Hospital, error) {
	env, err := h.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", hospitalsPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Hospital](env)
}

func (h *Hospitals) Delete(ctx context.Context, id int64) error {
	_, err := h.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", hospitalsPath, id), nil, nil)
	return err
}
