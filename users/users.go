package users

import (
	"fmt"
	"strings"
)

// AdminRoleName is the role name the backend assigns to administrators.
const AdminRoleName = "admin"

// Role represents a user's role as returned by the storefront backend.
type Role struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// User is the profile the backend returns for an authenticated user.
// The client caches it alongside the credentials for fast synchronous
// reads; it may be stale relative to the backend until the next
// /auth/me fetch.
type User struct {
	ID        string `json:"id,omitempty"`         // Unique identifier for the user
	Email     string `json:"email,omitempty"`      // User's email address
	FirstName string `json:"first_name,omitempty"` // First name of the user
	LastName  string `json:"last_name,omitempty"`  // Last name of the user
	Phone     string `json:"phone,omitempty"`      // Optional phone number
	RoleID    string `json:"role_id,omitempty"`    // Role foreign key
	IsActive  bool   `json:"is_active,omitempty"`  // Has the account been disabled
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	Role      Role   `json:"role,omitempty"` // Expanded role record
}

// IsAdmin reports whether the user's role is the admin role.
func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	return u.Role.Name == AdminRoleName
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", u.FirstName, u.LastName))
}

// RegisterData carries the fields for a new account registration.
type RegisterData struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

// LoginData carries the credentials for a login request.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
