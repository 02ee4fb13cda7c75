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

func newSchoolRepo(t *testing.T) *SchoolRepository {
	t.Helper()
	return NewSchoolRepository(store.NewJSON(store.NewMemory(), zap.NewNop()))
}

func school(id, name string) models.School {
	return models.School{
		ID:        id,
		Name:      name,
		Tagline:   "tagline",
		Font:      "Inter",
		Template:  "modern",
		CreatedAt: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestSchoolRepositoryAppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := newSchoolRepo(t)

	require.NoError(t, repo.Append(ctx, school("s1", "First")))
	require.NoError(t, repo.Append(ctx, school("s2", "Second")))

	schools, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, schools, 2)
	assert.Equal(t, "s1", schools[0].ID)
	assert.Equal(t, "s2", schools[1].ID)
}

func TestSchoolRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	repo := newSchoolRepo(t)
	require.NoError(t, repo.Append(ctx, school("s1", "First")))

	found, err := repo.FindByID(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "First", found.Name)

	missing, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSchoolRepositoryReplace(t *testing.T) {
	ctx := context.Background()
	repo := newSchoolRepo(t)
	require.NoError(t, repo.Append(ctx, school("s1", "First")))
	require.NoError(t, repo.Append(ctx, school("s2", "Second")))

	updated := school("s1", "Renamed")
	require.NoError(t, repo.Replace(ctx, updated))

	schools, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", schools[0].Name)
	assert.Equal(t, "Second", schools[1].Name)
}

func TestSchoolRepositoryReplaceUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newSchoolRepo(t)
	require.NoError(t, repo.Append(ctx, school("s1", "First")))

	require.NoError(t, repo.Replace(ctx, school("ghost", "Ghost")))

	schools, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, "First", schools[0].Name)
}

func TestSchoolRepositoryCurrentPointer(t *testing.T) {
	ctx := context.Background()
	repo := newSchoolRepo(t)

	_, ok, err := repo.CurrentSchoolID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetCurrentSchoolID(ctx, "s1"))

	id, ok, err := repo.CurrentSchoolID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "s1", id)
}
