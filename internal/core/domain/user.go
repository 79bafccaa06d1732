package domain

// UserRole is the staff role carried in the JWT and checked by the role guard.
type UserRole string

const (
	RoleAdmin          UserRole = "admin"
	RoleProjectManager UserRole = "project_manager"
	RoleSupervisor     UserRole = "supervisor"
	// RoleLabourer is issued to labourers logging in with phone + ID number.
	// Labourers can read their own work logs and file correction requests.
	RoleLabourer UserRole = "labourer"
)

// User is a staff account (admins, project managers, supervisors).
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	// GoogleID links accounts created or matched through Google sign-in.
	GoogleID string `json:"-"`
	AuditFields
}

// AtLeast reports whether the role meets the given minimum in the
// admin > project_manager > supervisor > labourer ordering.
func (r UserRole) AtLeast(minimum UserRole) bool {
	rank := map[UserRole]int{
		RoleLabourer:       0,
		RoleSupervisor:     1,
		RoleProjectManager: 2,
		RoleAdmin:          3,
	}
	return rank[r] >= rank[minimum]
}
