package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserSnapshot is the denormalized identity block embedded in every session
// token at issuance time. It is deliberately a stale copy: authenticated
// requests read identity from the token itself rather than re-querying the
// credential store. Freshness is only enforced on the refresh path.
type UserSnapshot struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
}

// SessionClaims is the signed payload of both access and refresh tokens.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, exp,
// iat) and adds the user_data snapshot. The same claim shape is used for
// both token kinds; what distinguishes them is the signing secret.
type SessionClaims struct {
	jwt.RegisteredClaims

	// UserData is the identity snapshot captured when the token was minted.
	UserData UserSnapshot `json:"user_data"`
}

// TokenPair carries the two cookies' worth of session state produced by a
// successful login or registration.
type TokenPair struct {
	// AccessToken is the short-lived token presented on every
	// authenticated request.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived token used only to mint new access
	// tokens without re-prompting credentials.
	RefreshToken string `json:"refresh_token"`
}

// ExternalProfile holds the validated claims returned by the external
// identity provider's userinfo endpoint. Email is lowercased before it is
// used as a lookup or provisioning key.
type ExternalProfile struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture,omitempty"`
}
