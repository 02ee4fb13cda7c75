package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/repository"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

func newSurveyFixture(t *testing.T) *SurveyService {
	t.Helper()
	js := store.NewJSON(store.NewMemory(), zap.NewNop())
	return NewSurveyService(repository.NewSurveyRepository(js), repository.NewResponseRepository(js), nil, zap.NewNop())
}

func createSurveyReq(schoolID, title string) models.CreateSurveyRequest {
	return models.CreateSurveyRequest{
		SchoolID:  schoolID,
		Title:     title,
		CreatedBy: "user-2",
		Questions: []models.QuestionInput{
			{Type: models.QuestionRating, Question: "How satisfied are you overall?", Required: true},
			{Type: models.QuestionText, Question: "Anything to add?"},
		},
	}
}

func TestSurveyServiceCreatePublishLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyFixture(t)

	created, err := svc.Create(ctx, createSurveyReq("lincoln", "Feedback"))
	require.NoError(t, err)
	assert.Equal(t, models.SurveyDraft, created.Status)
	require.Len(t, created.Questions, 2)
	assert.Equal(t, "q1", created.Questions[0].ID)
	assert.Equal(t, "q2", created.Questions[1].ID)

	listed, err := svc.List(ctx, "lincoln")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	require.NoError(t, svc.Publish(ctx, "lincoln", created.ID))

	published, err := svc.ListByStatus(ctx, "lincoln", models.SurveyPublished)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, created.ID, published[0].ID)

	drafts, err := svc.ListByStatus(ctx, "lincoln", models.SurveyDraft)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestSurveyServiceCreateRequiresQuestions(t *testing.T) {
	svc := newSurveyFixture(t)

	req := createSurveyReq("lincoln", "Feedback")
	req.Questions = nil
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestSurveyServiceMultipleChoiceNeedsTwoOptions(t *testing.T) {
	svc := newSurveyFixture(t)

	req := createSurveyReq("lincoln", "Feedback")
	req.Questions = []models.QuestionInput{
		{Type: models.QuestionMultipleChoice, Question: "Pick one", Options: []string{"only"}},
	}
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestSurveyServicePublishUnknownSurvey(t *testing.T) {
	svc := newSurveyFixture(t)

	err := svc.Publish(context.Background(), "lincoln", "ghost")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}

func TestSurveyServiceSubmitHappyPath(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyFixture(t)

	created, err := svc.Create(ctx, createSurveyReq("lincoln", "Feedback"))
	require.NoError(t, err)
	require.NoError(t, svc.Publish(ctx, "lincoln", created.ID))

	resp, err := svc.Submit(ctx, models.SubmitResponseRequest{
		SurveyID:    created.ID,
		SchoolID:    "lincoln",
		Answers:     map[string]string{"q1": "4", "q2": "great term"},
		SubmittedBy: "user-4",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "user-4", resp.SubmittedBy)
	assert.False(t, resp.SubmittedAt.IsZero())

	stored, err := svc.ResponsesForSurvey(ctx, "lincoln", created.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resp.ID, stored[0].ID)
}

func TestSurveyServiceSubmitAnonymousDropsSubmitter(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyFixture(t)

	created, err := svc.Create(ctx, createSurveyReq("lincoln", "Feedback"))
	require.NoError(t, err)
	require.NoError(t, svc.Publish(ctx, "lincoln", created.ID))

	resp, err := svc.Submit(ctx, models.SubmitResponseRequest{
		SurveyID:    created.ID,
		SchoolID:    "lincoln",
		Answers:     map[string]string{"q1": "5"},
		Anonymous:   true,
		SubmittedBy: "user-4",
	})
	require.NoError(t, err)
	assert.True(t, resp.Anonymous)
	assert.Empty(t, resp.SubmittedBy)
}

func TestSurveyServiceSubmitRejectsDraft(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyFixture(t)

	created, err := svc.Create(ctx, createSurveyReq("lincoln", "Feedback"))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, models.SubmitResponseRequest{
		SurveyID: created.ID,
		SchoolID: "lincoln",
		Answers:  map[string]string{"q1": "5"},
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestSurveyServiceSubmitRejectsMissingRequiredAnswer(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyFixture(t)

	created, err := svc.Create(ctx, createSurveyReq("lincoln", "Feedback"))
	require.NoError(t, err)
	require.NoError(t, svc.Publish(ctx, "lincoln", created.ID))

	// q1 is required; a blank answer does not count.
	_, err = svc.Submit(ctx, models.SubmitResponseRequest{
		SurveyID: created.ID,
		SchoolID: "lincoln",
		Answers:  map[string]string{"q1": "   ", "q2": "fine"},
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestSurveyServiceSubmitRejectsOutOfScaleRating(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyFixture(t)

	created, err := svc.Create(ctx, createSurveyReq("lincoln", "Feedback"))
	require.NoError(t, err)
	require.NoError(t, svc.Publish(ctx, "lincoln", created.ID))

	for _, bad := range []string{"0", "6", "4.5", "great"} {
		_, err = svc.Submit(ctx, models.SubmitResponseRequest{
			SurveyID: created.ID,
			SchoolID: "lincoln",
			Answers:  map[string]string{"q1": bad},
		})
		require.Error(t, err, "rating %q", bad)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	}

	_, err = svc.Submit(ctx, models.SubmitResponseRequest{
		SurveyID: created.ID,
		SchoolID: "lincoln",
		Answers:  map[string]string{"q1": "5"},
	})
	require.NoError(t, err)
}

func TestSurveyServiceSubmitRejectsUnknownQuestionKey(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyFixture(t)

	created, err := svc.Create(ctx, createSurveyReq("lincoln", "Feedback"))
	require.NoError(t, err)
	require.NoError(t, svc.Publish(ctx, "lincoln", created.ID))

	_, err = svc.Submit(ctx, models.SubmitResponseRequest{
		SurveyID: created.ID,
		SchoolID: "lincoln",
		Answers:  map[string]string{"q1": "5", "q99": "stray"},
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestSurveyServiceSubmitUnknownSurvey(t *testing.T) {
	svc := newSurveyFixture(t)

	_, err := svc.Submit(context.Background(), models.SubmitResponseRequest{
		SurveyID: "ghost",
		SchoolID: "lincoln",
		Answers:  map[string]string{"q1": "5"},
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}

func TestSurveyServiceDeleteRemovesSurvey(t *testing.T) {
	ctx := context.Background()
	svc := newSurveyFixture(t)

	created, err := svc.Create(ctx, createSurveyReq("lincoln", "Feedback"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "lincoln", created.ID))

	listed, err := svc.List(ctx, "lincoln")
	require.NoError(t, err)
	assert.Empty(t, listed)
}
