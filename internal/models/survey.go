package models

import "time"

// SurveyStatus is the draft/published lifecycle of a survey.
type SurveyStatus string

const (
	SurveyDraft     SurveyStatus = "draft"
	SurveyPublished SurveyStatus = "published"
)

// QuestionType enumerates the supported question widgets.
type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionRating         QuestionType = "rating"
	QuestionYesNo          QuestionType = "yes-no"
)

// RatingScale is the fixed 1..5 range accepted for rating answers.
const RatingScale = 5

// Question is embedded in a Survey and not independently addressable. Its
// id is scoped to the owning survey. Options are meaningful for
// multiple-choice questions only.
type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Required bool         `json:"required"`
	Options  []string     `json:"options,omitempty"`
}

// Survey is an ordered questionnaire owned by exactly one school.
type Survey struct {
	ID          string       `json:"id"`
	SchoolID    string       `json:"schoolId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Questions   []Question   `json:"questions"`
	Status      SurveyStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	CreatedBy   string       `json:"createdBy"`
}

// QuestionInput is the authoring payload for a single question.
type QuestionInput struct {
	Type     QuestionType `json:"type" validate:"required,oneof=text multiple-choice rating yes-no"`
	Question string       `json:"question" validate:"required"`
	Required bool         `json:"required"`
	Options  []string     `json:"options"`
}

// CreateSurveyRequest carries the authoring payload for a new survey; ids,
// status and createdAt are assigned by the service.
type CreateSurveyRequest struct {
	SchoolID    string          `json:"schoolId" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions" validate:"required,min=1,dive"`
	CreatedBy   string          `json:"createdBy" validate:"required"`
}
