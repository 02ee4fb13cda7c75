package models

import "time"

// SurveyResponse is one respondent's answers to one survey. Answer keys
// are question ids of the referenced survey; submittedBy is absent when
// the response is anonymous.
type SurveyResponse struct {
	ID          string            `json:"id"`
	SurveyID    string            `json:"surveyId"`
	SchoolID    string            `json:"schoolId"`
	Answers     map[string]string `json:"answers"`
	Anonymous   bool              `json:"anonymous"`
	SubmittedBy string            `json:"submittedBy,omitempty"`
	SubmittedAt time.Time         `json:"submittedAt"`
}

// SubmitResponseRequest is the survey-taking payload. Required-answer
// enforcement happens in the submitting service, not in the repository.
type SubmitResponseRequest struct {
	SurveyID    string            `json:"surveyId" validate:"required"`
	SchoolID    string            `json:"schoolId" validate:"required"`
	Answers     map[string]string `json:"answers" validate:"required"`
	Anonymous   bool              `json:"anonymous"`
	SubmittedBy string            `json:"submittedBy"`
}
