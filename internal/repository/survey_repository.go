package repository

import (
	"context"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

// SurveyRepository persists one school's survey collection under its
// namespaced key. Id uniqueness is the caller's responsibility.
type SurveyRepository struct {
	js *store.JSONStore
}

// NewSurveyRepository creates a new instance of SurveyRepository.
func NewSurveyRepository(js *store.JSONStore) *SurveyRepository {
	return &SurveyRepository{js: js}
}

// List returns the school's surveys in insertion order; an empty slice
// when none exist yet.
func (r *SurveyRepository) List(ctx context.Context, schoolID string) ([]models.Survey, error) {
	var surveys []models.Survey
	if _, err := r.js.Get(ctx, store.SchoolKey(schoolID, store.KindSurveys), &surveys); err != nil {
		return nil, err
	}
	if surveys == nil {
		surveys = []models.Survey{}
	}
	return surveys, nil
}

// Add appends a survey to the school's collection.
func (r *SurveyRepository) Add(ctx context.Context, schoolID string, survey models.Survey) error {
	surveys, err := r.List(ctx, schoolID)
	if err != nil {
		return err
	}
	surveys = append(surveys, survey)
	return r.save(ctx, schoolID, surveys)
}

// Update replaces the survey whose id matches. Unknown ids are a silent
// no-op.
func (r *SurveyRepository) Update(ctx context.Context, schoolID string, survey models.Survey) error {
	surveys, err := r.List(ctx, schoolID)
	if err != nil {
		return err
	}
	for i := range surveys {
		if surveys[i].ID == survey.ID {
			surveys[i] = survey
			return r.save(ctx, schoolID, surveys)
		}
	}
	return nil
}

// Delete removes the survey whose id matches. Unknown ids are a silent
// no-op.
func (r *SurveyRepository) Delete(ctx context.Context, schoolID, surveyID string) error {
	surveys, err := r.List(ctx, schoolID)
	if err != nil {
		return err
	}
	kept := surveys[:0]
	removed := false
	for _, s := range surveys {
		if s.ID == surveyID {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	if !removed {
		return nil
	}
	return r.save(ctx, schoolID, kept)
}

// ReplaceAll swaps the whole collection. Used by the seed path only.
func (r *SurveyRepository) ReplaceAll(ctx context.Context, schoolID string, surveys []models.Survey) error {
	return r.save(ctx, schoolID, surveys)
}

func (r *SurveyRepository) save(ctx context.Context, schoolID string, surveys []models.Survey) error {
	return r.js.Set(ctx, store.SchoolKey(schoolID, store.KindSurveys), surveys)
}
