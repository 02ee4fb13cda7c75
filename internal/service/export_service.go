package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/export"
	"github.com/noah-isme/school-portal-api/pkg/storage"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

type exportSchoolRepository interface {
	List(ctx context.Context) ([]models.School, error)
	FindByID(ctx context.Context, id string) (*models.School, error)
	CurrentSchoolID(ctx context.Context) (string, bool, error)
}

type exportUserRepository interface {
	List(ctx context.Context) ([]models.User, error)
}

type exportResourceRepositories struct {
	Surveys   surveyCounter
	Responses responseCounter
	Files     fileCounter
}

// ExportService assembles export documents, renders downloadable files and
// clears tenant data.
type ExportService struct {
	js        *store.JSONStore
	schools   exportSchoolRepository
	users     exportUserRepository
	resources exportResourceRepositories
	local     *storage.LocalStorage
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// NewExportService constructs an ExportService instance. local may be nil
// when no documents need to be written to disk.
func NewExportService(js *store.JSONStore, schools exportSchoolRepository, users exportUserRepository, surveys surveyCounter, responses responseCounter, files fileCounter, local *storage.LocalStorage, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		js:        js,
		schools:   schools,
		users:     users,
		resources: exportResourceRepositories{Surveys: surveys, Responses: responses, Files: files},
		local:     local,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// ExportSchool assembles one tenant's school record and collections.
func (s *ExportService) ExportSchool(ctx context.Context, schoolID string) (*models.SchoolExport, error) {
	school, err := s.schools.FindByID(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "school not found")
	}

	resources, err := s.collect(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	return &models.SchoolExport{
		School:    school,
		Surveys:   resources.Surveys,
		Responses: resources.Responses,
		Files:     resources.Files,
	}, nil
}

// ExportAll assembles every tenant's data. The schools, users and
// currentSchoolId fields keep their historical shape; schoolData adds the
// per-school collections so the full export is complete.
func (s *ExportService) ExportAll(ctx context.Context) (*models.FullExport, error) {
	schools, err := s.schools.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	currentID, _, err := s.schools.CurrentSchoolID(ctx)
	if err != nil {
		return nil, err
	}

	data := make(map[string]models.SchoolResources, len(schools))
	for _, school := range schools {
		resources, err := s.collect(ctx, school.ID)
		if err != nil {
			return nil, err
		}
		data[school.ID] = resources
	}

	return &models.FullExport{
		Schools:         schools,
		Users:           users,
		CurrentSchoolID: currentID,
		SchoolData:      data,
	}, nil
}

// ClearSchool removes the school's surveys, responses and files keys. The
// school record itself stays; callers refresh dependent state afterwards.
func (s *ExportService) ClearSchool(ctx context.Context, schoolID string) error {
	for _, kind := range []store.ResourceKind{store.KindSurveys, store.KindResponses, store.KindFiles} {
		if err := s.js.Remove(ctx, store.SchoolKey(schoolID, kind)); err != nil {
			return err
		}
	}
	s.logger.Info("school data cleared", zap.String("school_id", schoolID))
	return nil
}

// WriteSchoolExport renders one school's export as a JSON document plus a
// PDF survey summary and writes both into the export directory. It returns
// the stored filenames.
func (s *ExportService) WriteSchoolExport(ctx context.Context, schoolID string) ([]string, error) {
	if s.local == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "export directory is not configured")
	}

	doc, err := s.ExportSchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal school export: %w", err)
	}

	stamp := time.Now().UnixMilli()
	base := exportFileBase(doc.School.Name)
	jsonName, err := s.local.Save(fmt.Sprintf("%s_data_%d.json", base, stamp), payload)
	if err != nil {
		return nil, err
	}

	summary, err := s.pdf.Render(s.surveySummary(doc), doc.School.Name, doc.School.ColorScheme.Primary)
	if err != nil {
		return nil, err
	}
	pdfName, err := s.local.Save(fmt.Sprintf("%s_summary_%d.pdf", base, stamp), summary)
	if err != nil {
		return nil, err
	}

	s.logger.Info("school export written",
		zap.String("school_id", schoolID),
		zap.String("json", jsonName),
		zap.String("pdf", pdfName))
	return []string{jsonName, pdfName}, nil
}

// WriteFullExport renders the all-schools document into the export
// directory and returns the stored filename.
func (s *ExportService) WriteFullExport(ctx context.Context) (string, error) {
	if s.local == nil {
		return "", appErrors.Clone(appErrors.ErrInternal, "export directory is not configured")
	}

	doc, err := s.ExportAll(ctx)
	if err != nil {
		return "", err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal full export: %w", err)
	}

	name, err := s.local.Save(fmt.Sprintf("all_schools_data_%d.json", time.Now().UnixMilli()), payload)
	if err != nil {
		return "", err
	}

	s.logger.Info("full export written", zap.String("file", name))
	return name, nil
}

// ResponsesCSV renders one survey's responses as CSV, one column per
// question in survey order.
func (s *ExportService) ResponsesCSV(ctx context.Context, schoolID, surveyID string) ([]byte, error) {
	surveys, err := s.resources.Surveys.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	var survey *models.Survey
	for i := range surveys {
		if surveys[i].ID == surveyID {
			survey = &surveys[i]
			break
		}
	}
	if survey == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
	}

	responses, err := s.resources.Responses.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	headers := []string{"respondent", "submittedAt"}
	for _, q := range survey.Questions {
		headers = append(headers, q.Question)
	}

	rows := make([]map[string]string, 0, len(responses))
	for _, resp := range responses {
		if resp.SurveyID != surveyID {
			continue
		}
		respondent := resp.SubmittedBy
		if resp.Anonymous {
			respondent = "anonymous"
		}
		row := map[string]string{
			"respondent":  respondent,
			"submittedAt": resp.SubmittedAt.Format(time.RFC3339),
		}
		for _, q := range survey.Questions {
			row[q.Question] = resp.Answers[q.ID]
		}
		rows = append(rows, row)
	}

	return s.csv.Render(export.Dataset{Headers: headers, Rows: rows})
}

func (s *ExportService) collect(ctx context.Context, schoolID string) (models.SchoolResources, error) {
	surveys, err := s.resources.Surveys.List(ctx, schoolID)
	if err != nil {
		return models.SchoolResources{}, err
	}
	responses, err := s.resources.Responses.List(ctx, schoolID)
	if err != nil {
		return models.SchoolResources{}, err
	}
	files, err := s.resources.Files.List(ctx, schoolID)
	if err != nil {
		return models.SchoolResources{}, err
	}
	return models.SchoolResources{Surveys: surveys, Responses: responses, Files: files}, nil
}

func (s *ExportService) surveySummary(doc *models.SchoolExport) export.Dataset {
	counts := make(map[string]int, len(doc.Surveys))
	for _, resp := range doc.Responses {
		counts[resp.SurveyID]++
	}

	rows := make([]map[string]string, 0, len(doc.Surveys))
	for _, survey := range doc.Surveys {
		rows = append(rows, map[string]string{
			"Survey":    survey.Title,
			"Status":    string(survey.Status),
			"Questions": strconv.Itoa(len(survey.Questions)),
			"Responses": strconv.Itoa(counts[survey.ID]),
		})
	}

	return export.Dataset{
		Headers: []string{"Survey", "Status", "Questions", "Responses"},
		Rows:    rows,
	}
}

func exportFileBase(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
