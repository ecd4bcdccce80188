package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the uniform authentication failure: callers
	// must not be able to distinguish "no such user" from "wrong password"
	// by error value, response shape, or timing.
	ErrInvalidCredentials = errors.New("incorrect email/user or password")

	// ErrAccountInactive is returned when a refresh token resolves to a
	// missing or soft-deleted account.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrNoSubject is returned when a decoded refresh token carries no
	// sub claim.
	ErrNoSubject = errors.New("token has no subject")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// External identity provider failures, one per protocol step.
var (
	// ErrExternalProvider covers network failures and non-2xx responses
	// from the provider's token endpoint.
	ErrExternalProvider = errors.New("external identity provider error")

	// ErrInvalidProviderResponse is returned when the token endpoint
	// answers 2xx but the response carries no access token.
	ErrInvalidProviderResponse = errors.New("invalid provider response")

	// ErrTokenVerificationFailed is returned when the userinfo endpoint
	// rejects the provider access token.
	ErrTokenVerificationFailed = errors.New("provider token verification failed")

	// ErrExternalProfileIncomplete is returned when the userinfo response
	// lacks a required claim (email, given_name, family_name). A partial
	// profile is a verification failure, never a partial success.
	ErrExternalProfileIncomplete = errors.New("external profile is incomplete")
)
