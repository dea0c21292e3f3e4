package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

const (
	dietaryPath     = "/api/admin/dietary-restrictions"
	exercisePath    = "/api/admin/exercise-types"
	specialtiesPath = "/api/admin/medical-specialties"
)

// statusQuery builds the ?status= parameter used by the resources whose
// status change travels as a query parameter instead of a body.
func statusQuery(status string) url.Values {
	v := url.Values{}
	v.Set("status", status)
	return v
}

// DietaryRestrictions maps dietary restriction management to HTTP calls.
type DietaryRestrictions struct {
	c *Client
}

func NewDietaryRestrictions(c *Client) *DietaryRestrictions {
	return &DietaryRestrictions{c: c}
}

func (d *DietaryRestrictions) List(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.DietaryRestriction], error) {
	env, err := d.c.do(ctx, http.MethodGet, dietaryPath, q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.DietaryRestriction](env)
}

func (d *DietaryRestrictions) Get(ctx context.Context, id int64) (*domain.DietaryRestriction, error) {
	env, err := d.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", dietaryPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.DietaryRestriction](env)
}

func (d *DietaryRestrictions) Create(ctx context.Context, in ports.CatalogItemInput) (*domain.DietaryRestriction, error) {
	env, err := d.c.do(ctx, http.MethodPost, dietaryPath, nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.DietaryRestriction](env)
}

func (d *DietaryRestrictions) Update(ctx context.Context, id int64, in ports.CatalogItemInput) (*domain.DietaryRestriction, error) {
	env, err := d.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", dietaryPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.DietaryRestriction](env)
}

func (d *DietaryRestrictions) ChangeStatus(ctx context.Context, id int64, status string) (*domain.DietaryRestriction, error) {
	env, err := d.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/status", dietaryPath, id), statusQuery(status), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.DietaryRestriction](env)
}

func (d *DietaryRestrictions) Delete(ctx context.Context, id int64) error {
	_, err := d.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", dietaryPath, id), nil, nil)
	return err
}

// ExerciseTypes maps exercise type management to HTTP calls.
type ExerciseTypes struct {
	c *Client
}

func NewExerciseTypes(c *Client) *ExerciseTypes {
	return &ExerciseTypes{c: c}
}

func (e *ExerciseTypes) List(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.ExerciseType], error) {
	env, err := e.c.do(ctx, http.MethodGet, exercisePath, q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.ExerciseType](env)
}

func (e *ExerciseTypes) Get(ctx context.Context, id int64) (*domain.ExerciseType, error) {
	env, err := e.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", exercisePath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ExerciseType](env)
}

func (e *ExerciseTypes) Create(ctx context.Context, in ports.ExerciseTypeInput) (*domain.ExerciseType, error) {
	env, err := e.c.do(ctx, http.MethodPost, exercisePath, nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ExerciseType](env)
}

func (e *ExerciseTypes) Update(ctx context.Context, id int64, in ports.ExerciseTypeInput) (*domain.ExerciseType, error) {
	env, err := e.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", exercisePath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ExerciseType](env)
}

func (e *ExerciseTypes) Restore(ctx context.Context, id int64) (*domain.ExerciseType, error) {
	env, err := e.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/restore", exercisePath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ExerciseType](env)
}

func (e *ExerciseTypes) Delete(ctx context.Context, id int64) error {
	_, err := e.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", exercisePath, id), nil, nil)
	return err
}

// MedicalSpecialties maps medical specialty management to HTTP calls.
type MedicalSpecialties struct {
	c *Client
}

func NewMedicalSpecialties(c *Client) *MedicalSpecialties {
	return &MedicalSpecialties{c: c}
}

func (m *MedicalSpecialties) List(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.MedicalSpecialty], error) {
	env, err := m.c.do(ctx, http.MethodGet, specialtiesPath, q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.MedicalSpecialty](env)
}

func (m *MedicalSpecialties) Get(ctx context.Context, id int64) (*domain.MedicalSpecialty, error) {
	env, err := m.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", specialtiesPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.MedicalSpecialty](env)
}

func (m *MedicalSpecialties) Create(ctx context.Context, in ports.CatalogItemInput) (*domain.MedicalSpecialty, error) {
	env, err := m.c.do(ctx, http.MethodPost, specialtiesPath, nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.MedicalSpecialty](env)
}

func (m *MedicalSpecialties) Update(ctx context.Context, id int64, in ports.CatalogItemInput) (*domain.MedicalSpecialty, error) {
	env, err := m.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", specialtiesPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.MedicalSpecialty](env)
}

func (m *MedicalSpecialties) ChangeStatus(ctx context.Context, id int64, status string) (*domain.MedicalSpecialty, error) {
	env, err := m.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/status", specialtiesPath, id), statusQuery(status), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.MedicalSpecialty](env)
}

func (m *MedicalSpecialties) Delete(ctx context.Context, id int64) error {
	_, err := m.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", specialtiesPath, id), nil, nil)
	return err
}
