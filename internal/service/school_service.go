package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type schoolRegistryRepository interface {
	List(ctx context.Context) ([]models.School, error)
	FindByID(ctx context.Context, id string) (*models.School, error)
	Append(ctx context.Context, school models.School) error
	Replace(ctx context.Context, school models.School) error
	CurrentSchoolID(ctx context.Context) (string, bool, error)
	SetCurrentSchoolID(ctx context.Context, id string) error
}

type surveyCounter interface {
	List(ctx context.Context, schoolID string) ([]models.Survey, error)
}

type responseCounter interface {
	List(ctx context.Context, schoolID string) ([]models.SurveyResponse, error)
}

type fileCounter interface {
	List(ctx context.Context, schoolID string) ([]models.FileUpload, error)
}

// SchoolService is the tenant registry: school CRUD, the current-school
// pointer and count aggregation.
type SchoolService struct {
	repo      schoolRegistryRepository
	surveys   surveyCounter
	responses responseCounter
	files     fileCounter
	validator *validator.Validate
	logger    *zap.Logger

	mu         sync.Mutex
	reloadSubs []func()
}

// NewSchoolService constructs a SchoolService instance.
func NewSchoolService(repo schoolRegistryRepository, surveys surveyCounter, responses responseCounter, files fileCounter, validate *validator.Validate, logger *zap.Logger) *SchoolService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SchoolService{
		repo:      repo,
		surveys:   surveys,
		responses: responses,
		files:     files,
		validator: validate,
		logger:    logger,
	}
}

// OnReload registers a callback fired after the current school changes.
// Collaborators refresh their dependent state from it instead of relying
// on a blanket restart.
func (s *SchoolService) OnReload(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadSubs = append(s.reloadSubs, fn)
}

// List returns all schools in insertion order.
func (s *SchoolService) List(ctx context.Context) ([]models.School, error) {
	return s.repo.List(ctx)
}

// Get returns the school with the given id, or nil when absent.
func (s *SchoolService) Get(ctx context.Context, id string) (*models.School, error) {
	return s.repo.FindByID(ctx, id)
}

// Create assigns a fresh id and creation timestamp, appends the school and
// returns the stored record.
func (s *SchoolService) Create(ctx context.Context, req models.CreateSchoolRequest) (*models.School, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid school payload")
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	school := models.School{
		ID:          s.newID(existing),
		Name:        req.Name,
		Tagline:     req.Tagline,
		Logo:        req.Logo,
		ColorScheme: req.ColorScheme,
		Font:        req.Font,
		Template:    req.Template,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, school); err != nil {
		return nil, err
	}

	s.logger.Info("school created", zap.String("school_id", school.ID), zap.String("name", school.Name))
	return &school, nil
}

// Update replaces the whole record matching school.ID. Unknown ids are a
// silent no-op.
func (s *SchoolService) Update(ctx context.Context, school models.School) error {
	return s.repo.Replace(ctx, school)
}

// Switch moves the current-school pointer when the id resolves to an
// existing school, then signals reload subscribers. Unknown ids are a
// no-op.
func (s *SchoolService) Switch(ctx context.Context, id string) error {
	school, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if school == nil {
		return nil
	}

	if err := s.repo.SetCurrentSchoolID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("current school switched", zap.String("school_id", id))
	s.notifyReload()
	return nil
}

// Current resolves the active tenant. When no pointer is stored the first
// school in the list becomes current and the pointer is persisted.
func (s *SchoolService) Current(ctx context.Context) (*models.School, error) {
	id, ok, err := s.repo.CurrentSchoolID(ctx)
	if err != nil {
		return nil, err
	}
	if ok && id != "" {
		school, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if school != nil {
			return school, nil
		}
	}

	schools, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(schools) == 0 {
		return nil, nil
	}

	first := schools[0]
	if err := s.repo.SetCurrentSchoolID(ctx, first.ID); err != nil {
		s.logger.Warn("failed to persist default current school", zap.Error(err))
	}
	return &first, nil
}

// Stats recomputes the school's collection counts on every call.
func (s *SchoolService) Stats(ctx context.Context, schoolID string) (models.SchoolStats, error) {
	surveys, err := s.surveys.List(ctx, schoolID)
	if err != nil {
		return models.SchoolStats{}, err
	}
	responses, err := s.responses.List(ctx, schoolID)
	if err != nil {
		return models.SchoolStats{}, err
	}
	files, err := s.files.List(ctx, schoolID)
	if err != nil {
		return models.SchoolStats{}, err
	}

	return models.SchoolStats{
		SurveyCount:   len(surveys),
		FileCount:     len(files),
		ResponseCount: len(responses),
	}, nil
}

func (s *SchoolService) notifyReload() {
	s.mu.Lock()
	subs := make([]func(), len(s.reloadSubs))
	copy(subs, s.reloadSubs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// newID returns a uuid that does not collide with any existing school id.
func (s *SchoolService) newID(existing []models.School) string {
	for {
		id := uuid.NewString()
		taken := false
		for i := range existing {
			if existing[i].ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
