package models

// Role represents the role of a principal
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal represents a registered identity. Usernames are unique and
// immutable once seeded; a disabled principal never receives a valid session
// regardless of token validity.
type Principal struct {
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	FullName string   `json:"full_name,omitempty"`
	Disabled bool     `json:"disabled"`
	Role     Role     `json:"role"`
	AppIDs   []string `json:"app_ids"`
}

// IsAdmin returns true if the principal has the admin role
func (p *Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasAppID returns true if the principal is entitled to the given application
func (p *Principal) HasAppID(appID string) bool {
	for _, id := range p.AppIDs {
		if id == appID {
			return true
		}
	}
	return false
}

// Credential extends Principal with the stored password hash. It is owned by
// the credential store and is never serialized into a token or response.
type Credential struct {
	Principal
	HashedPassword string `json:"-"`
}
