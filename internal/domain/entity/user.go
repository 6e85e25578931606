// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// User is a registered account. The ID is the auth identity identifier and
// keys the profile document; the email is mirrored into the record at
// registration so profile reads never depend on the auth provider.
type User struct {
	ID           string      // Auth identity identifier (document key).
	Email        string      // Primary contact email, also the login identifier.
	DisplayName  string      // Public display name.
	PasswordHash string      // Bcrypt hash; empty for accounts created via Google sign-in.
	Roles        Roles       // Claim-based authorization roles.
	Profile      UserProfile // Optional personal fields, owner-mutable.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile holds the optional personal fields a user maintains on their
// profile page. Created on registration, mutated only by the owning user,
// never deleted.
type UserProfile struct {
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	BirthDate string `json:"birth_date,omitempty"` // ISO date, no time component.
	Gender    string `json:"gender,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

// GrantRole adds a role if not already present.
func (u *User) GrantRole(role Role) {
	if !u.Roles.Contains(role) {
		u.Roles = append(u.Roles, role)
	}
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires,
// without requiring credentials.
type RefreshToken struct {
	ID        string    // Document identifier for this session record.
	UserID    string    // Links the session to its user.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When the session was created (login time).
}
