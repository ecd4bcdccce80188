// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, session cookies, JWT token generation and
// validation, and other common operations.
package utils

import (
	"context"

	"github.com/Killjoy99/eNtweniBooking/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionClaimsCtxKey is the key under which the auth middleware stores the
// decoded access-token claims of the current request. Downstream handlers
// read the identity snapshot from here instead of re-parsing the cookie.
var SessionClaimsCtxKey = contextKey("sessionClaims")

// SessionClaimsToContext returns a copy of ctx carrying the given claims.
func SessionClaimsToContext(ctx context.Context, claims *models.SessionClaims) context.Context {
	return context.WithValue(ctx, SessionClaimsCtxKey, claims)
}

// SessionClaimsFromContext retrieves the decoded session claims from the
// context.
//
// Returns the claims and an ok flag:
//   - ok == true  — claims are present and have the correct type
//   - ok == false — no auth middleware ran for this request
func SessionClaimsFromContext(ctx context.Context) (*models.SessionClaims, bool) {
	claims, ok := ctx.Value(SessionClaimsCtxKey).(*models.SessionClaims)
	return claims, ok
}
