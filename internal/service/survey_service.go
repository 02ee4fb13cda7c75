package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type surveyAuthoringRepository interface {
	List(ctx context.Context, schoolID string) ([]models.Survey, error)
	Add(ctx context.Context, schoolID string, survey models.Survey) error
	Update(ctx context.Context, schoolID string, survey models.Survey) error
	Delete(ctx context.Context, schoolID, surveyID string) error
}

type responseSubmissionRepository interface {
	List(ctx context.Context, schoolID string) ([]models.SurveyResponse, error)
	Add(ctx context.Context, schoolID string, response models.SurveyResponse) error
}

// SurveyService covers survey authoring and survey taking for one portal.
type SurveyService struct {
	surveys   surveyAuthoringRepository
	responses responseSubmissionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSurveyService constructs a SurveyService instance.
func NewSurveyService(surveys surveyAuthoringRepository, responses responseSubmissionRepository, validate *validator.Validate, logger *zap.Logger) *SurveyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SurveyService{surveys: surveys, responses: responses, validator: validate, logger: logger}
}

// List returns all surveys of a school in insertion order.
func (s *SurveyService) List(ctx context.Context, schoolID string) ([]models.Survey, error) {
	return s.surveys.List(ctx, schoolID)
}

// ListByStatus filters a school's surveys by lifecycle status.
func (s *SurveyService) ListByStatus(ctx context.Context, schoolID string, status models.SurveyStatus) ([]models.Survey, error) {
	surveys, err := s.surveys.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Survey, 0, len(surveys))
	for _, survey := range surveys {
		if survey.Status == status {
			filtered = append(filtered, survey)
		}
	}
	return filtered, nil
}

// Create validates the authoring payload, assigns survey and question ids
// and stores the survey as a draft.
func (s *SurveyService) Create(ctx context.Context, req models.CreateSurveyRequest) (*models.Survey, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid survey payload")
	}
	for _, q := range req.Questions {
		if q.Type == models.QuestionMultipleChoice && len(q.Options) < 2 {
			return nil, appErrors.Clone(appErrors.ErrValidation, "multiple-choice questions need at least two options")
		}
	}

	questions := make([]models.Question, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = models.Question{
			ID:       fmt.Sprintf("q%d", i+1),
			Type:     q.Type,
			Question: q.Question,
			Required: q.Required,
			Options:  q.Options,
		}
	}

	survey := models.Survey{
		ID:          uuid.NewString(),
		SchoolID:    req.SchoolID,
		Title:       req.Title,
		Description: req.Description,
		Questions:   questions,
		Status:      models.SurveyDraft,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   req.CreatedBy,
	}

	if err := s.surveys.Add(ctx, req.SchoolID, survey); err != nil {
		return nil, err
	}

	s.logger.Info("survey created",
		zap.String("school_id", req.SchoolID),
		zap.String("survey_id", survey.ID),
		zap.Int("questions", len(questions)))
	return &survey, nil
}

// Update replaces the stored survey wholesale. Unknown ids are a silent
// no-op.
func (s *SurveyService) Update(ctx context.Context, schoolID string, survey models.Survey) error {
	return s.surveys.Update(ctx, schoolID, survey)
}

// Publish flips a draft survey to published.
func (s *SurveyService) Publish(ctx context.Context, schoolID, surveyID string) error {
	survey, err := s.find(ctx, schoolID, surveyID)
	if err != nil {
		return err
	}
	if survey == nil {
		return appErrors.Clone(appErrors.ErrNotFound, "survey not found")
	}

	survey.Status = models.SurveyPublished
	return s.surveys.Update(ctx, schoolID, *survey)
}

// Delete removes a survey. Unknown ids are a silent no-op.
func (s *SurveyService) Delete(ctx context.Context, schoolID, surveyID string) error {
	return s.surveys.Delete(ctx, schoolID, surveyID)
}

// Submit records one respondent's answers. The survey must exist and be
// published, every answer must address one of its questions and every
// required question needs a non-blank answer. SubmittedBy is dropped for
// anonymous submissions.
func (s *SurveyService) Submit(ctx context.Context, req models.SubmitResponseRequest) (*models.SurveyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid response payload")
	}

	survey, err := s.find(ctx, req.SchoolID, req.SurveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
	}
	if survey.Status != models.SurveyPublished {
		return nil, appErrors.Clone(appErrors.ErrValidation, "survey is not open for responses")
	}

	questionIDs := make(map[string]struct{}, len(survey.Questions))
	for _, q := range survey.Questions {
		questionIDs[q.ID] = struct{}{}
	}
	for id := range req.Answers {
		if _, ok := questionIDs[id]; !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("answer references unknown question %q", id))
		}
	}
	for _, q := range survey.Questions {
		answer := strings.TrimSpace(req.Answers[q.ID])
		if q.Required && answer == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "please answer all required questions")
		}
		if q.Type == models.QuestionRating && answer != "" {
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > models.RatingScale {
				return nil, appErrors.Clone(appErrors.ErrValidation,
					fmt.Sprintf("rating answers must be a whole number between 1 and %d", models.RatingScale))
			}
		}
	}

	response := models.SurveyResponse{
		ID:          uuid.NewString(),
		SurveyID:    req.SurveyID,
		SchoolID:    req.SchoolID,
		Answers:     req.Answers,
		Anonymous:   req.Anonymous,
		SubmittedAt: time.Now().UTC(),
	}
	if !req.Anonymous {
		response.SubmittedBy = req.SubmittedBy
	}

	if err := s.responses.Add(ctx, req.SchoolID, response); err != nil {
		return nil, err
	}

	s.logger.Info("survey response submitted",
		zap.String("school_id", req.SchoolID),
		zap.String("survey_id", req.SurveyID),
		zap.Bool("anonymous", req.Anonymous))
	return &response, nil
}

// ResponsesForSurvey filters a school's responses down to one survey.
func (s *SurveyService) ResponsesForSurvey(ctx context.Context, schoolID, surveyID string) ([]models.SurveyResponse, error) {
	responses, err := s.responses.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.SurveyResponse, 0, len(responses))
	for _, resp := range responses {
		if resp.SurveyID == surveyID {
			filtered = append(filtered, resp)
		}
	}
	return filtered, nil
}

func (s *SurveyService) find(ctx context.Context, schoolID, surveyID string) (*models.Survey, error) {
	surveys, err := s.surveys.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	for i := range surveys {
		if surveys[i].ID == surveyID {
			return &surveys[i], nil
		}
	}
	return nil, nil
}
