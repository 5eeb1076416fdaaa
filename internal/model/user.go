package model

// Role values.
const (
	RoleUser = "user"
	RoleHost = "host"
)

// User is the account held by the session store.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"userType"`
}

// IsHost reports whether the user manages table inventory.
func (u *User) IsHost() bool {
	return u != nil && u.Role == RoleHost
}

// DisplayName returns the first name, or "Unknown" for a nil or nameless user.
func (u *User) DisplayName() string {
	if u == nil || u.FirstName == "" {
		return "Unknown"
	}
	return u.FirstName
}
