package models

// UserRole represents the available portal roles. There is no hierarchy:
// every page declares the exact set of roles it admits.
type UserRole string

const (
	RoleSuperAdmin UserRole = "superadmin"
	RoleAdmin      UserRole = "admin"
	RoleTeacher    UserRole = "teacher"
	RoleViewer     UserRole = "viewer"
)

// User is a portal account. Users come from seed data only; there is no
// runtime creation path. Passwords are stored in plaintext by scope of the
// system and compared verbatim at login.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
	Name     string   `json:"name"`
	SchoolID string   `json:"schoolId,omitempty"`
}

// LoginRequest is the credential payload checked at login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
