package repository

import (
	"context"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

// SchoolRepository persists the tenant list and the current-school pointer.
type SchoolRepository struct {
	js *store.JSONStore
}

// NewSchoolRepository creates a new instance of SchoolRepository.
func NewSchoolRepository(js *store.JSONStore) *SchoolRepository {
	return &SchoolRepository{js: js}
}

// List returns all schools in insertion order.
func (r *SchoolRepository) List(ctx context.Context) ([]models.School, error) {
	var schools []models.School
	if _, err := r.js.Get(ctx, store.KeyAllSchools, &schools); err != nil {
		return nil, err
	}
	if schools == nil {
		schools = []models.School{}
	}
	return schools, nil
}

// FindByID returns the school with the given id, or nil when absent.
func (r *SchoolRepository) FindByID(ctx context.Context, id string) (*models.School, error) {
	schools, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range schools {
		if schools[i].ID == id {
			return &schools[i], nil
		}
	}
	return nil, nil
}

// Append adds a school to the end of the list.
func (r *SchoolRepository) Append(ctx context.Context, school models.School) error {
	schools, err := r.List(ctx)
	if err != nil {
		return err
	}
	schools = append(schools, school)
	return r.js.Set(ctx, store.KeyAllSchools, schools)
}

// Replace swaps the record matching school.ID wholesale. Unknown ids are a
// silent no-op.
func (r *SchoolRepository) Replace(ctx context.Context, school models.School) error {
	schools, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range schools {
		if schools[i].ID == school.ID {
			schools[i] = school
			return r.js.Set(ctx, store.KeyAllSchools, schools)
		}
	}
	return nil
}

// CurrentSchoolID returns the current-school pointer when set.
func (r *SchoolRepository) CurrentSchoolID(ctx context.Context) (string, bool, error) {
	var id string
	ok, err := r.js.Get(ctx, store.KeyCurrentSchoolID, &id)
	if err != nil {
		return "", false, err
	}
	return id, ok, nil
}

// SetCurrentSchoolID persists the current-school pointer.
func (r *SchoolRepository) SetCurrentSchoolID(ctx context.Context, id string) error {
	return r.js.Set(ctx, store.KeyCurrentSchoolID, id)
}
