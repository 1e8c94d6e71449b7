package domain

import "time"

// DefaultRole is assigned to every account created through registration.
// The attribute is stored but no authorization decision consults it yet.
const DefaultRole = "user"

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile returns a copy of the user with the password hash stripped,
// safe to hand to transport or context injection.
func (u *User) PublicProfile() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
