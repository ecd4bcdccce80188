package service

import (
	"context"

	"github.com/Killjoy99/eNtweniBooking/models"
)

// AuthService verifies credentials against the credential store and creates
// local accounts.
type AuthService interface {
	// RegisterUser creates a new local account from a signup request,
	// hashing the password before persistence.
	RegisterUser(ctx context.Context, signup models.SignupRequest) (models.User, error)

	// Authenticate verifies a login identifier (username or email) and
	// password. It applies a fixed minimum latency regardless of outcome
	// and returns the uniform ErrInvalidCredentials for both unknown
	// identifiers and wrong passwords.
	Authenticate(ctx context.Context, loginIdentifier, password string) (models.User, error)
}

// SessionService mints, refreshes, and verifies session token pairs.
type SessionService interface {
	// IssueSession mints an access+refresh pair for the given subject,
	// embedding the identity snapshot in both tokens.
	IssueSession(ctx context.Context, subject string, snapshot models.UserSnapshot) (models.TokenPair, error)

	// RefreshSession validates a refresh token, reloads the subject from
	// the credential store, and mints a new extended-lifetime access
	// token. The refresh token itself is not rotated.
	RefreshSession(ctx context.Context, refreshToken string) (string, error)

	// ParseAccessToken verifies an access token and returns its claims.
	ParseAccessToken(ctx context.Context, tokenString string) (*models.SessionClaims, error)
}

// GoogleAuthService is the external identity verifier: it exchanges an
// authorization code for provider profile claims and resolves them to a
// local account.
type GoogleAuthService interface {
	// AuthCodeURL returns the provider authorization URL the login
	// handler redirects browsers to.
	AuthCodeURL() string

	// ExchangeAndVerify performs the code->token exchange followed by the
	// userinfo fetch, validating that the profile carries email, given
	// name and family name. The returned email is lowercased.
	ExchangeAndVerify(ctx context.Context, authorizationCode string) (models.ExternalProfile, error)

	// LoginOrProvision loads the local user keyed by the profile email,
	// auto-provisioning an account with a generated password on first
	// login. Provisioning is idempotent per lowercased email.
	LoginOrProvision(ctx context.Context, profile models.ExternalProfile) (models.User, error)
}
