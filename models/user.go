package models

// Role is the access role assigned to a user at registration time.
// The role is immutable for the lifetime of the account and drives
// all route-group authorization decisions.
type Role string

const (
	// RoleOperator marks fleet operators: they own ships and routes,
	// log catches and confirm or reject captain reports.
	RoleOperator Role = "operator"

	// RoleCaptain marks ship captains: they manage fishing spots and
	// file catch reports against routes assigned to them.
	RoleCaptain Role = "captain"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleOperator || r == RoleCaptain
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier used during authentication
	// and as the JWT subject claim.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	HashedPassword string `json:"-"`

	// Role is the fixed access role: operator or captain.
	Role Role `json:"role"`

	// CompanyName is an optional company affiliation, shown in UI.
	CompanyName string `json:"company_name,omitempty"`

	// FullName is the optional display name of the user.
	FullName string `json:"full_name,omitempty"`

	// License is an optional fishing license number.
	License string `json:"license,omitempty"`

	// IsActive reports whether the account is enabled.
	// No exposed operation deactivates an account; the flag exists for
	// operational tooling.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
