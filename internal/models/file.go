package models

import "time"

// FileUpload is a document stored inline as a base64 data URI.
type FileUpload struct {
	ID         string    `json:"id"`
	SchoolID   string    `json:"schoolId"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	Data       string    `json:"data"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy string    `json:"uploadedBy"`
}

// UploadFileRequest carries an incoming upload; id and uploadedAt are
// assigned by the service after size and MIME checks.
type UploadFileRequest struct {
	SchoolID   string `json:"schoolId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Type       string `json:"type" validate:"required"`
	Size       int64  `json:"size" validate:"gt=0"`
	Data       string `json:"data" validate:"required"`
	UploadedBy string `json:"uploadedBy" validate:"required"`
}
