package repository

import (
	"context"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

// FileRepository persists one school's uploaded documents.
type FileRepository struct {
	js *store.JSONStore
}

// NewFileRepository creates a new instance of FileRepository.
func NewFileRepository(js *store.JSONStore) *FileRepository {
	return &FileRepository{js: js}
}

// List returns the school's files in insertion order; an empty slice when
// none exist yet.
func (r *FileRepository) List(ctx context.Context, schoolID string) ([]models.FileUpload, error) {
	var files []models.FileUpload
	if _, err := r.js.Get(ctx, store.SchoolKey(schoolID, store.KindFiles), &files); err != nil {
		return nil, err
	}
	if files == nil {
		files = []models.FileUpload{}
	}
	return files, nil
}

// Add appends a file to the school's collection.
func (r *FileRepository) Add(ctx context.Context, schoolID string, file models.FileUpload) error {
	files, err := r.List(ctx, schoolID)
	if err != nil {
		return err
	}
	files = append(files, file)
	return r.save(ctx, schoolID, files)
}

// Delete removes the file whose id matches. Unknown ids are a silent
// no-op.
func (r *FileRepository) Delete(ctx context.Context, schoolID, fileID string) error {
	files, err := r.List(ctx, schoolID)
	if err != nil {
		return err
	}
	kept := files[:0]
	removed := false
	for _, f := range files {
		if f.ID == fileID {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return nil
	}
	return r.save(ctx, schoolID, kept)
}

// ReplaceAll swaps the whole collection. Used by the seed path only.
func (r *FileRepository) ReplaceAll(ctx context.Context, schoolID string, files []models.FileUpload) error {
	return r.save(ctx, schoolID, files)
}

func (r *FileRepository) save(ctx context.Context, schoolID string, files []models.FileUpload) error {
	return r.js.Set(ctx, store.SchoolKey(schoolID, store.KindFiles), files)
}
