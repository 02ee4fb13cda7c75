package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/config"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type fileUploadRepository interface {
	List(ctx context.Context, schoolID string) ([]models.FileUpload, error)
	Add(ctx context.Context, schoolID string, file models.FileUpload) error
	Delete(ctx context.Context, schoolID, fileID string) error
}

// FileService validates and stores inline file uploads.
type FileService struct {
	repo      fileUploadRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    config.UploadsConfig
}

// NewFileService constructs a FileService instance.
func NewFileService(repo fileUploadRepository, validate *validator.Validate, logger *zap.Logger, cfg config.UploadsConfig) *FileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &FileService{repo: repo, validator: validate, logger: logger, config: cfg}
}

// List returns a school's files in upload order.
func (s *FileService) List(ctx context.Context, schoolID string) ([]models.FileUpload, error) {
	return s.repo.List(ctx, schoolID)
}

// Upload checks size, MIME type and data-URI shape, then stores the file.
func (s *FileService) Upload(ctx context.Context, req models.UploadFileRequest) (*models.FileUpload, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid upload payload")
	}

	if s.config.MaxFileSizeBytes > 0 && req.Size > s.config.MaxFileSizeBytes {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("file exceeds the %d byte limit", s.config.MaxFileSizeBytes))
	}
	if len(s.config.AllowedMIMEs) > 0 && !s.mimeAllowed(req.Type) {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("file type %q is not allowed", req.Type))
	}
	if !strings.HasPrefix(req.Data, "data:") {
		return nil, appErrors.Clone(appErrors.ErrValidation, "file data must be a data URI")
	}

	file := models.FileUpload{
		ID:         uuid.NewString(),
		SchoolID:   req.SchoolID,
		Name:       req.Name,
		Type:       req.Type,
		Size:       req.Size,
		Data:       req.Data,
		UploadedAt: time.Now().UTC(),
		UploadedBy: req.UploadedBy,
	}

	if err := s.repo.Add(ctx, req.SchoolID, file); err != nil {
		return nil, err
	}

	s.logger.Info("file uploaded",
		zap.String("school_id", req.SchoolID),
		zap.String("file_id", file.ID),
		zap.String("name", file.Name),
		zap.Int64("size", file.Size))
	return &file, nil
}

// Delete removes a file. Unknown ids are a silent no-op.
func (s *FileService) Delete(ctx context.Context, schoolID, fileID string) error {
	return s.repo.Delete(ctx, schoolID, fileID)
}

func (s *FileService) mimeAllowed(mime string) bool {
	for _, allowed := range s.config.AllowedMIMEs {
		if mime == allowed {
			return true
		}
	}
	return false
}
