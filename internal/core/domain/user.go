package domain

import "time"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Roles lists every role recognised by the authorization layer. A token
// carrying anything else is treated as unauthorized on role-gated routes.
var Roles = []string{RoleAdmin, RoleUser}

// ValidRole reports whether role belongs to the recognised role set.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User models an authenticated actor. The password is held only as a bcrypt
// hash and never crosses the JSON boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Fullname     string    `json:"fullname"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
