package models

import "time"

// ColorScheme is a named branding palette applied to a school's portal.
type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Name      string `json:"name"`
}

// School is a tenant: the unit of data isolation. Schools are never
// deleted; updates replace the whole record.
type School struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Tagline     string      `json:"tagline"`
	Logo        string      `json:"logo,omitempty"`
	ColorScheme ColorScheme `json:"colorScheme"`
	Font        string      `json:"font"`
	Template    string      `json:"template"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// CreateSchoolRequest carries the caller-supplied fields for a new school;
// id and createdAt are assigned by the registry.
type CreateSchoolRequest struct {
	Name        string      `json:"name" validate:"required"`
	Tagline     string      `json:"tagline"`
	Logo        string      `json:"logo"`
	ColorScheme ColorScheme `json:"colorScheme"`
	Font        string      `json:"font" validate:"required"`
	Template    string      `json:"template" validate:"required"`
}

// SchoolStats aggregates per-tenant collection counts. Recomputed on every
// call; nothing is cached.
type SchoolStats struct {
	SurveyCount   int `json:"surveyCount"`
	FileCount     int `json:"fileCount"`
	ResponseCount int `json:"responseCount"`
}
