package ports

import (
	"context"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// HospitalInput carries a hospital create or update payload.
type HospitalInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// HospitalClient maps the hospitals directory to HTTP calls.
type HospitalClient interface {
	List(ctx context.Context, q ListQuery) (*domain.Page[domain.Hospital], error)
	Get(ctx context.Context, id int64) (*domain.Hospital, error)
	Create(ctx context.Context, in HospitalInput) (*domain.Hospital, error)
	Update(ctx context.Context, id int64, in HospitalInput) (*domain.Hospital, error)
	Delete(ctx context.Context, id int64) error
}
