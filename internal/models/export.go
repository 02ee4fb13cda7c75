package models

// SchoolExport is the single-school export document. Field names match the
// documents produced by earlier releases, so previously exported files
// stay readable.
type SchoolExport struct {
	School    *School          `json:"school"`
	Surveys   []Survey         `json:"surveys"`
	Responses []SurveyResponse `json:"responses"`
	Files     []FileUpload     `json:"files"`
}

// SchoolResources groups one school's collections inside a full export.
type SchoolResources struct {
	Surveys   []Survey         `json:"surveys"`
	Responses []SurveyResponse `json:"responses"`
	Files     []FileUpload     `json:"files"`
}

// FullExport is the all-schools export document. The schools, users and
// currentSchoolId fields keep their historical shape; schoolData carries
// every school's collections keyed by school id so a full export actually
// contains all tenant data.
type FullExport struct {
	Schools         []School                   `json:"schools"`
	Users           []User                     `json:"users"`
	CurrentSchoolID string                     `json:"currentSchoolId"`
	SchoolData      map[string]SchoolResources `json:"schoolData"`
}
