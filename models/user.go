package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned at
	// creation time by the database and immutable afterwards.
	ID int64 `json:"id"`

	// Username is the unique login name of the user, stored lowercased.
	Username string `json:"username"`

	// Email is the unique email address of the user, stored lowercased.
	// Either Username or Email is accepted as a login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext. It is excluded from
	// JSON serialization and must never be logged.
	PasswordHash string `json:"-"`

	// FirstName and LastName are optional display attributes.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// ProfileImageURL is an optional URL of the user's avatar, populated
	// from the external identity provider on auto-provisioned accounts.
	ProfileImageURL string `json:"profile_image_url,omitempty"`

	// IsSuperuser marks privileged accounts.
	IsSuperuser bool `json:"is_superuser"`

	// LastLoginAt is updated best-effort after each successful
	// authentication. It is nil until the first login and never part of
	// the authentication decision itself.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// IsDeleted is the soft-delete flag. A deleted user is never
	// authenticatable even while the row remains in storage.
	IsDeleted bool `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Snapshot returns the denormalized identity fields embedded into session
// tokens at issuance time. The snapshot is a plain value copy: token
// verification must never need a round-trip to the credential store.
func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Image:    u.ProfileImageURL,
	}
}
