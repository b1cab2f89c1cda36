package domain

// UserRole enumerates the staff roles, most to least privileged.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleManager    UserRole = "MANAGER"
	RoleCashier    UserRole = "CASHIER"
)

// rolePrecedence orders roles for privilege comparison. Higher wins.
var rolePrecedence = map[UserRole]int{
	RoleCashier:    1,
	RoleManager:    2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// IsValid reports whether the role is one of the known staff roles.
func (r UserRole) IsValid() bool {
	_, ok := rolePrecedence[r]
	return ok
}

// IsPrivileged reports whether the role may delete donors/donations and read the audit log.
func (r UserRole) IsPrivileged() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// AtLeast reports whether the role carries at least the privilege of other.
func (r UserRole) AtLeast(other UserRole) bool {
	return rolePrecedence[r] >= rolePrecedence[other]
}

// User represents a staff account in the admin back office.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}

// AuthUser is the authenticated identity resolved from a session token.
// It carries the denormalized claims snapshot, not the persisted record.
type AuthUser struct {
	UserID string
	Name   string
	Email  string
	Role   UserRole
}
