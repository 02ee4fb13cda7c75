package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/repository"
	"github.com/noah-isme/school-portal-api/pkg/config"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

func newFileFixture(t *testing.T) *FileService {
	t.Helper()
	js := store.NewJSON(store.NewMemory(), zap.NewNop())
	cfg := config.UploadsConfig{
		MaxFileSizeBytes: 5 * 1024 * 1024,
		AllowedMIMEs:     []string{"application/pdf", "image/png"},
	}
	return NewFileService(repository.NewFileRepository(js), nil, zap.NewNop(), cfg)
}

func uploadReq(name, mime string, size int64) models.UploadFileRequest {
	return models.UploadFileRequest{
		SchoolID:   "s1",
		Name:       name,
		Type:       mime,
		Size:       size,
		Data:       "data:" + mime + ";base64,JVBERi0xLjQK",
		UploadedBy: "user-2",
	}
}

func TestFileServiceUploadAndList(t *testing.T) {
	ctx := context.Background()
	svc := newFileFixture(t)

	stored, err := svc.Upload(ctx, uploadReq("handbook.pdf", "application/pdf", 2048))
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.UploadedAt.IsZero())

	files, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, stored.ID, files[0].ID)
}

func TestFileServiceUploadRejectsOversizedFile(t *testing.T) {
	svc := newFileFixture(t)

	_, err := svc.Upload(context.Background(), uploadReq("huge.pdf", "application/pdf", 50*1024*1024))
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestFileServiceUploadRejectsDisallowedMIME(t *testing.T) {
	svc := newFileFixture(t)

	_, err := svc.Upload(context.Background(), uploadReq("malware.exe", "application/x-msdownload", 1024))
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestFileServiceUploadRejectsNonDataURI(t *testing.T) {
	svc := newFileFixture(t)

	req := uploadReq("handbook.pdf", "application/pdf", 1024)
	req.Data = "JVBERi0xLjQK"
	_, err := svc.Upload(context.Background(), req)
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestFileServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := newFileFixture(t)

	stored, err := svc.Upload(ctx, uploadReq("handbook.pdf", "application/pdf", 2048))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "s1", stored.ID))

	files, err := svc.List(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, files)
}
