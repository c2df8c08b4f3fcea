package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity is the authenticated caller for the lifetime of one session.
// Domain is the team a user-role identity is bound to; empty for admins.
type Identity struct {
	Key    string `json:"key"`
	Role   string `json:"role"`
	Domain string `json:"domain,omitempty"`
}
