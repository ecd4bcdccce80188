package store

import (
	"context"

	"github.com/Killjoy99/eNtweniBooking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store: the single shared mutable resource
// of the authentication subsystem. Identifiers are lowercased before storage
// and lookup. Soft-deleted rows stay in the table but are invisible to every
// lookup; callers observe deletion only as ErrUserNotFound.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrUserAlreadyExists when the username or
	// email is already taken by a non-deleted user.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindByLoginIdentifier looks a non-deleted user up by username OR
	// email in a single disjunctive query. The identifier may be either;
	// it is lowercased before matching. Returns ErrUserNotFound when no
	// non-deleted row matches.
	FindByLoginIdentifier(ctx context.Context, loginIdentifier string) (models.User, error)

	// FindByEmail looks a non-deleted user up by email only. Used as the
	// provisioning key for external-identity logins.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateLastLogin stamps the user's last_login_at with the current
	// time. Best-effort: concurrent logins for the same user may race on
	// this write, which is acceptable (last-write-wins).
	UpdateLastLogin(ctx context.Context, userID int64) error
}
