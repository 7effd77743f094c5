package entity

import (
	"strings"
	"time"
)

// User represents a registered account in the system.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Login        string    `bson:"login" json:"login"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Surname      string    `bson:"surname" json:"surname"`
	Lastname     string    `bson:"lastname,omitempty" json:"lastname,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Roles        []string  `bson:"role" json:"role"`
	EventIDs     []string  `bson:"event_ids" json:"event_ids"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the effective role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// EffectiveRole returns the role the system acts on. The stored representation
// is a list for legacy compatibility, but only the first element matters.
func (u *User) EffectiveRole() UserRole {
	if len(u.Roles) == 0 {
		return DefaultRole()
	}
	return UserRole(u.Roles[0])
}

// IsAdmin reports whether the role grants administrative access.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// FullName joins surname, name and lastname, skipping empty parts.
func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.Surname, u.Name, u.Lastname} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// UserSummary is the administrative projection of a user.
type UserSummary struct {
	ID         string   `json:"id"`
	FullName   string   `json:"fullName"`
	Email      string   `json:"email"`
	EventCount int      `json:"eventCount"`
	EventIDs   []string `json:"eventIds"`
}
