// Package seed installs the demo tenant, accounts and sample content on
// first start. Collections that already hold data are left untouched.
package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/repository"
)

// ColorPresets are the branding palettes offered by the portal.
var ColorPresets = []models.ColorScheme{
	{Name: "Ocean Blue", Primary: "#1e40af", Secondary: "#3b82f6", Accent: "#60a5fa"},
	{Name: "Forest Green", Primary: "#15803d", Secondary: "#22c55e", Accent: "#86efac"},
	{Name: "Sunset Orange", Primary: "#c2410c", Secondary: "#f97316", Accent: "#fb923c"},
	{Name: "Royal Purple", Primary: "#6b21a8", Secondary: "#a855f7", Accent: "#c084fc"},
	{Name: "Crimson Red", Primary: "#b91c1c", Secondary: "#ef4444", Accent: "#f87171"},
	{Name: "Slate Gray", Primary: "#475569", Secondary: "#64748b", Accent: "#94a3b8"},
}

// Users returns the demo accounts. Passwords are plaintext by scope of the
// system.
func Users() []models.User {
	return []models.User{
		{ID: "user-1", Email: "superadmin@portal.com", Password: "super123", Role: models.RoleSuperAdmin, Name: "Super Admin"},
		{ID: "user-2", Email: "admin@school.edu", Password: "admin123", Role: models.RoleAdmin, Name: "Admin User", SchoolID: "school-1"},
		{ID: "user-3", Email: "teacher@school.edu", Password: "teacher123", Role: models.RoleTeacher, Name: "Teacher User", SchoolID: "school-1"},
		{ID: "user-4", Email: "viewer@school.edu", Password: "viewer123", Role: models.RoleViewer, Name: "Viewer User", SchoolID: "school-1"},
	}
}

// DefaultSchool returns the demo tenant.
func DefaultSchool() models.School {
	return models.School{
		ID:          "school-1",
		Name:        "Riverside High School",
		Tagline:     "Excellence in Education",
		ColorScheme: ColorPresets[0],
		Font:        "Inter",
		Template:    "modern",
		CreatedAt:   time.Now().UTC(),
	}
}

// Surveys returns the demo questionnaires for the default school.
func Surveys() []models.Survey {
	now := time.Now().UTC()
	return []models.Survey{
		{
			ID:          "survey-1",
			SchoolID:    "school-1",
			Title:       "Student Feedback Survey",
			Description: "Help us improve our school programs",
			Status:      models.SurveyPublished,
			CreatedAt:   now.Add(-7 * 24 * time.Hour),
			CreatedBy:   "user-2",
			Questions: []models.Question{
				{ID: "q1", Type: models.QuestionRating, Question: "How satisfied are you with the overall school experience?", Required: true},
				{ID: "q2", Type: models.QuestionMultipleChoice, Question: "Which subject do you enjoy the most?", Required: true, Options: []string{"Mathematics", "Science", "English", "History", "Arts"}},
				{ID: "q3", Type: models.QuestionText, Question: "What improvements would you suggest?", Required: false},
			},
		},
		{
			ID:          "survey-2",
			SchoolID:    "school-1",
			Title:       "Parent-Teacher Communication",
			Description: "Your feedback on our communication efforts",
			Status:      models.SurveyPublished,
			CreatedAt:   now.Add(-3 * 24 * time.Hour),
			CreatedBy:   "user-2",
			Questions: []models.Question{
				{ID: "q1", Type: models.QuestionYesNo, Question: "Do you feel informed about your child's progress?", Required: true},
				{ID: "q2", Type: models.QuestionRating, Question: "Rate the quality of teacher communication", Required: true},
				{ID: "q3", Type: models.QuestionText, Question: "How can we improve communication?", Required: false},
			},
		},
		{
			ID:          "survey-3",
			SchoolID:    "school-1",
			Title:       "Facility Improvement Survey",
			Description: "Help us prioritize facility upgrades",
			Status:      models.SurveyDraft,
			CreatedAt:   now,
			CreatedBy:   "user-2",
			Questions: []models.Question{
				{ID: "q1", Type: models.QuestionMultipleChoice, Question: "Which facility needs the most improvement?", Required: true, Options: []string{"Library", "Cafeteria", "Gymnasium", "Classrooms", "Restrooms"}},
				{ID: "q2", Type: models.QuestionText, Question: "Please describe the specific improvements needed", Required: true},
			},
		},
	}
}

// Responses returns sample submissions for the demo surveys.
func Responses() []models.SurveyResponse {
	now := time.Now().UTC()
	return []models.SurveyResponse{
		{
			ID: "resp-1", SurveyID: "survey-1", SchoolID: "school-1",
			SubmittedBy: "user-4", SubmittedAt: now.Add(-2 * 24 * time.Hour),
			Answers: map[string]string{"q1": "5", "q2": "Science", "q3": "More hands-on activities"},
		},
		{
			ID: "resp-2", SurveyID: "survey-1", SchoolID: "school-1",
			Anonymous: true, SubmittedAt: now.Add(-24 * time.Hour),
			Answers: map[string]string{"q1": "4", "q2": "Mathematics", "q3": ""},
		},
		{
			ID: "resp-3", SurveyID: "survey-2", SchoolID: "school-1",
			SubmittedBy: "user-4", SubmittedAt: now.Add(-24 * time.Hour),
			Answers: map[string]string{"q1": "Yes", "q2": "5", "q3": "Keep up the great work!"},
		},
		{
			ID: "resp-4", SurveyID: "survey-2", SchoolID: "school-1",
			Anonymous: true, SubmittedAt: now,
			Answers: map[string]string{"q1": "No", "q2": "3", "q3": "More frequent updates needed"},
		},
	}
}

const (
	pdfStub = "data:application/pdf;base64,JVBERi0xLjQK"
	pngStub = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="
)

// Files returns sample uploads for the demo school.
func Files() []models.FileUpload {
	now := time.Now().UTC()
	return []models.FileUpload{
		{ID: "file-1", SchoolID: "school-1", Name: "Student_Handbook_2024.pdf", Type: "application/pdf", Size: 245000, Data: pdfStub, UploadedAt: now.Add(-10 * 24 * time.Hour), UploadedBy: "user-2"},
		{ID: "file-2", SchoolID: "school-1", Name: "School_Calendar.pdf", Type: "application/pdf", Size: 189000, Data: pdfStub, UploadedAt: now.Add(-8 * 24 * time.Hour), UploadedBy: "user-2"},
		{ID: "file-3", SchoolID: "school-1", Name: "Campus_Map.png", Type: "image/png", Size: 567000, Data: pngStub, UploadedAt: now.Add(-5 * 24 * time.Hour), UploadedBy: "user-2"},
		{ID: "file-4", SchoolID: "school-1", Name: "Contact_Information.pdf", Type: "application/pdf", Size: 123000, Data: pdfStub, UploadedAt: now.Add(-3 * 24 * time.Hour), UploadedBy: "user-3"},
		{ID: "file-5", SchoolID: "school-1", Name: "School_Logo.png", Type: "image/png", Size: 89000, Data: pngStub, UploadedAt: now.Add(-24 * time.Hour), UploadedBy: "user-2"},
	}
}

// Repositories bundles everything Initialize writes through.
type Repositories struct {
	Users     *repository.UserRepository
	Schools   *repository.SchoolRepository
	Surveys   *repository.SurveyRepository
	Responses *repository.ResponseRepository
	Files     *repository.FileRepository
}

// Initialize fills empty collections with demo data. It never overwrites
// existing records, so repeated starts are safe.
func Initialize(ctx context.Context, repos Repositories, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	school := DefaultSchool()

	schools, err := repos.Schools.List(ctx)
	if err != nil {
		return err
	}
	if len(schools) == 0 {
		if err := repos.Schools.Append(ctx, school); err != nil {
			return err
		}
		if err := repos.Schools.SetCurrentSchoolID(ctx, school.ID); err != nil {
			return err
		}
		logger.Info("seeded default school", zap.String("school_id", school.ID))
	}

	users, err := repos.Users.List(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		if err := repos.Users.SaveAll(ctx, Users()); err != nil {
			return err
		}
		logger.Info("seeded demo users")
	}

	surveys, err := repos.Surveys.List(ctx, school.ID)
	if err != nil {
		return err
	}
	if len(surveys) == 0 {
		if err := repos.Surveys.ReplaceAll(ctx, school.ID, Surveys()); err != nil {
			return err
		}
	}

	responses, err := repos.Responses.List(ctx, school.ID)
	if err != nil {
		return err
	}
	if len(responses) == 0 {
		if err := repos.Responses.ReplaceAll(ctx, school.ID, Responses()); err != nil {
			return err
		}
	}

	files, err := repos.Files.List(ctx, school.ID)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if err := repos.Files.ReplaceAll(ctx, school.ID, Files()); err != nil {
			return err
		}
	}

	return nil
}
