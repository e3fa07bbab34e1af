package domain

const (
	RoleCustomer   = "customer"
	RoleSpecialist = "specialist"
	RoleAdmin      = "admin"
)

// assignableRoles is the set of roles the admin panel may hand out.
var assignableRoles = map[string]struct{}{
	RoleCustomer:   {},
	RoleSpecialist: {},
	RoleAdmin:      {},
}

// ValidRole reports whether role can be assigned to a user.
func ValidRole(role string) bool {
	_, ok := assignableRoles[role]
	return ok
}

// User models a marketplace account exactly as the backend returns it.
// The id is an opaque string assigned by the backend's identity store.
type User struct {
	ID          string   `json:"id"`
	UserName    string   `json:"userName"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullName"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	UserRoles   []string `json:"userRoles"`
}

// Role returns the user's primary role, or "" when none is assigned.
func (u User) Role() string {
	if len(u.UserRoles) == 0 {
		return ""
	}
	return u.UserRoles[0]
}
