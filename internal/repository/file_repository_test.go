package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

func newFileRepo(t *testing.T) *FileRepository {
	t.Helper()
	return NewFileRepository(store.NewJSON(store.NewMemory(), zap.NewNop()))
}

func upload(id, schoolID, name string) models.FileUpload {
	return models.FileUpload{
		ID:         id,
		SchoolID:   schoolID,
		Name:       name,
		Type:       "application/pdf",
		Size:       1024,
		Data:       "data:application/pdf;base64,JVBERi0xLjQK",
		UploadedAt: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC),
		UploadedBy: "user-2",
	}
}

func TestFileRepositoryAddAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepo(t)

	require.NoError(t, repo.Add(ctx, "s1", upload("f1", "s1", "handbook.pdf")))
	require.NoError(t, repo.Add(ctx, "s1", upload("f2", "s1", "calendar.pdf")))

	files, err := repo.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, files, 2)

	require.NoError(t, repo.Delete(ctx, "s1", "f1"))

	files, err = repo.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "f2", files[0].ID)
}

func TestFileRepositoryDeleteUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepo(t)
	require.NoError(t, repo.Add(ctx, "s1", upload("f1", "s1", "handbook.pdf")))

	require.NoError(t, repo.Delete(ctx, "s1", "ghost"))

	files, err := repo.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestResponseRepositoryAddAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewResponseRepository(store.NewJSON(store.NewMemory(), zap.NewNop()))

	resp := models.SurveyResponse{
		ID:          "r1",
		SurveyID:    "sv1",
		SchoolID:    "s1",
		Answers:     map[string]string{"q1": "5"},
		SubmittedBy: "user-4",
		SubmittedAt: time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Add(ctx, "s1", resp))

	responses, err := repo.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, resp, responses[0])

	other, err := repo.List(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
