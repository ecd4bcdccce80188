package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Killjoy99/eNtweniBooking/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token decode failure kinds. Access and refresh decoding share the same
// taxonomy; callers match with errors.Is and map to HTTP 401 responses.
var (
	// ErrTokenExpired is returned when the exp claim lies in the past at
	// decode time. There is no grace window.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenSignatureInvalid is returned when the signature does not
	// verify under the supplied secret. A token signed with the refresh
	// secret fails access-token decoding with this error, and vice versa.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenMalformed is returned for anything that is not a structurally
	// valid JWT of the expected algorithm.
	ErrTokenMalformed = errors.New("token is malformed")
)

// GenerateSessionToken creates a signed JWT carrying the session claims for
// the given subject.
//
// The token includes the following claims:
//   - Subject   (sub): the login identifier the token was issued for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - user_data      : the identity snapshot captured at issuance
//
// The signing algorithm is selected by algorithm (e.g. "HS256"); only
// HMAC-family algorithms are supported because both token kinds use
// symmetric secrets. Returns an error if any parameter is empty or zero.
func GenerateSessionToken(subject string, snapshot models.UserSnapshot, tokenDuration time.Duration, signKey, algorithm string) (string, error) {
	if subject == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating session token")
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return "", fmt.Errorf("unsupported signing algorithm: %q", algorithm)
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserData: snapshot,
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, nil
}

// ParseSessionToken verifies the signature and expiry of a raw session token
// string and returns its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Algorithm check against the configured algorithm identifier
//   - Expiration (exp) claim check against wall-clock time
//
// Failures are classified into ErrTokenExpired, ErrTokenSignatureInvalid and
// ErrTokenMalformed so callers never need to inspect low-level JWT errors.
// The raw token string and the secret are never included in the returned
// error.
func ParseSessionToken(tokenString, signKey, algorithm string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{algorithm}))
	if err != nil {
		return nil, classifyTokenError(err)
	}

	return claims, nil
}

// classifyTokenError maps golang-jwt parse errors onto the package's decode
// failure kinds. Expiry is checked before signature because golang-jwt joins
// both into a single error chain when a token is expired and tampered with.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	default:
		return ErrTokenMalformed
	}
}
