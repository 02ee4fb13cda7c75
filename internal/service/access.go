package service

import "github.com/noah-isme/school-portal-api/internal/models"

// Page identifies a role-gated portal page.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageSchools   Page = "schools"
	PagePortal    Page = "portal"
	PageSurveys   Page = "surveys"
	PageUploads   Page = "uploads"
	PageBranding  Page = "branding"
	PageData      Page = "data"
)

// PageRoles maps each page to the exact set of roles it admits. A nil
// entry means any authenticated user. Superadmin carries no implicit
// access: a page that wants it must list it.
var PageRoles = map[Page][]models.UserRole{
	PageDashboard: nil,
	PageSchools:   {models.RoleSuperAdmin},
	PagePortal:    {models.RoleAdmin, models.RoleTeacher, models.RoleViewer},
	PageSurveys:   {models.RoleAdmin, models.RoleTeacher},
	PageUploads:   {models.RoleAdmin, models.RoleTeacher},
	PageBranding:  {models.RoleAdmin},
	PageData:      {models.RoleAdmin},
}

// CanAccess grants access iff a user is present and its role is in the
// allowed set. An empty allowed set admits any authenticated user.
func CanAccess(user *models.User, allowed ...models.UserRole) bool {
	if user == nil {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, role := range allowed {
		if user.Role == role {
			return true
		}
	}
	return false
}

// CanAccessPage applies the page's declared allow-set.
func CanAccessPage(user *models.User, page Page) bool {
	allowed, ok := PageRoles[page]
	if !ok {
		return false
	}
	return CanAccess(user, allowed...)
}
