package repository

import (
	"context"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

// ResponseRepository persists one school's survey responses. Filtering by
// survey id is the caller's responsibility.
type ResponseRepository struct {
	js *store.JSONStore
}

// NewResponseRepository creates a new instance of ResponseRepository.
func NewResponseRepository(js *store.JSONStore) *ResponseRepository {
	return &ResponseRepository{js: js}
}

// List returns the school's responses in insertion order; an empty slice
// when none exist yet.
func (r *ResponseRepository) List(ctx context.Context, schoolID string) ([]models.SurveyResponse, error) {
	var responses []models.SurveyResponse
	if _, err := r.js.Get(ctx, store.SchoolKey(schoolID, store.KindResponses), &responses); err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []models.SurveyResponse{}
	}
	return responses, nil
}

// Add appends a response to the school's collection.
func (r *ResponseRepository) Add(ctx context.Context, schoolID string, response models.SurveyResponse) error {
	responses, err := r.List(ctx, schoolID)
	if err != nil {
		return err
	}
	responses = append(responses, response)
	return r.save(ctx, schoolID, responses)
}

// Delete removes the response whose id matches. Unknown ids are a silent
// no-op.
func (r *ResponseRepository) Delete(ctx context.Context, schoolID, responseID string) error {
	responses, err := r.List(ctx, schoolID)
	if err != nil {
		return err
	}
	kept := responses[:0]
	removed := false
	for _, resp := range responses {
		if resp.ID == responseID {
			removed = true
			continue
		}
		kept = append(kept, resp)
	}
	if !removed {
		return nil
	}
	return r.save(ctx, schoolID, kept)
}

// ReplaceAll swaps the whole collection. Used by the seed path only.
func (r *ResponseRepository) ReplaceAll(ctx context.Context, schoolID string, responses []models.SurveyResponse) error {
	return r.save(ctx, schoolID, responses)
}

func (r *ResponseRepository) save(ctx context.Context, schoolID string, responses []models.SurveyResponse) error {
	return r.js.Set(ctx, store.SchoolKey(schoolID, store.KindResponses), responses)
}
