package models

import "time"

// StorageMetrics is a lightweight snapshot of store activity for the
// admin summary.
type StorageMetrics struct {
	ReadsTotal            uint64    `json:"readsTotal"`
	ReadHits              uint64    `json:"readHits"`
	ReadMisses            uint64    `json:"readMisses"`
	HitRatio              float64   `json:"hitRatio"`
	WritesTotal           uint64    `json:"writesTotal"`
	WriteFailures         uint64    `json:"writeFailures"`
	AverageReadDurationMs float64   `json:"averageReadDurationMs"`
	GeneratedAt           time.Time `json:"generatedAt"`
}
