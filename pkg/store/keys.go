package store

import "fmt"

// Global keys shared by every tenant. These names are a compatibility
// contract with previously exported data and must not change.
const (
	KeyAllSchools      = "all_schools"
	KeyCurrentSchoolID = "current_school_id"
	KeyAuthToken       = "auth_token"
	KeyUsers           = "users"
)

// ResourceKind enumerates the per-school collections.
type ResourceKind string

const (
	KindSurveys   ResourceKind = "surveys"
	KindResponses ResourceKind = "responses"
	KindFiles     ResourceKind = "files"
)

// SchoolKey derives the storage key for one school's resource collection.
// Embedding the school id verbatim is the sole isolation mechanism between
// tenants; there is no access-control check at the storage layer.
func SchoolKey(schoolID string, kind ResourceKind) string {
	return fmt.Sprintf("school_%s_%s", schoolID, kind)
}
