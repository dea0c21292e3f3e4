package ports

import (
	"context"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// CatalogItemInput is the shared payload for the simple name/description
// reference resources (dietary restrictions, medical specialties).
type CatalogItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ExerciseTypeInput carries an exercise type create or update payload.
type ExerciseTypeInput struct {
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	CaloriesPerHour float64 `json:"caloriesPerHour,omitempty"`
	Status          string  `json:"status,omitempty"`
}

// DietaryRestrictionClient maps dietary restriction management to HTTP
// calls. Status changes travel as a query parameter on this resource.
type DietaryRestrictionClient interface {
	List(ctx context.Context, q ListQuery) (*domain.Page[domain.DietaryRestriction], error)
	Get(ctx context.Context, id int64) (*domain.DietaryRestriction, error)
	Create(ctx context.Context, in CatalogItemInput) (*domain.DietaryRestriction, error)
	Update(ctx context.Context, id int64, in CatalogItemInput) (*domain.DietaryRestriction, error)
	ChangeStatus(ctx context.Context, id int64, status string) (*domain.DietaryRestriction, error)
	Delete(ctx context.Context, id int64) error
}

// ExerciseTypeClient maps exercise type management to HTTP calls.
type ExerciseTypeClient interface {
	List(ctx context.Context, q ListQuery) (*domain.Page[domain.ExerciseType], error)
	Get(ctx context.Context, id int64) (*domain.ExerciseType, error)
	Create(ctx context.Context, in ExerciseTypeInput) (*domain.ExerciseType, error)
	Update(ctx context.Context, id int64, in ExerciseTypeInput) (*domain.ExerciseType, error)
	Restore(ctx context.Context, id int64) (*domain.ExerciseType, error)
	Delete(ctx context.Context, id int64) error
}

// MedicalSpecialtyClient maps medical specialty management to HTTP calls.
// Status changes travel as a query parameter, like dietary restrictions.
type MedicalSpecialtyClient interface {
	List(ctx context.Context, q ListQuery) (*domain.Page[domain.MedicalSpecialty], error)
	Get(ctx context.Context, id int64) (*domain.MedicalSpecialty, error)
	Create(ctx context.Context, in CatalogItemInput) (*domain.MedicalSpecialty, error)
	Update(ctx context.Context, id int64, in CatalogItemInput) (*domain.MedicalSpecialty, error)
	ChangeStatus(ctx context.Context, id int64, status string) (*domain.MedicalSpecialty, error)
	Delete(ctx context.Context, id int64) error
}
