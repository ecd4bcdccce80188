package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash is returned by VerifyPassword when the stored hash is not
// a valid bcrypt string. It is deliberately distinct from a plain mismatch:
// a corrupted credential record is an internal fault, never "verified" and
// never a silent authentication failure.
var ErrMalformedHash = errors.New("stored password hash is malformed")

// HashPassword hashes a plaintext password with bcrypt at the default cost.
// The salt is generated internally and embedded in the returned string, so
// verification needs no additional state.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the bcrypt hash stored for
// the user.
//
// Returns:
//   - (true, nil) on a match
//   - (false, nil) on a mismatch
//   - (false, ErrMalformedHash) when the stored value is not a bcrypt hash
func VerifyPassword(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

// passwordAlphabet is the character set used for generated passwords on
// auto-provisioned accounts. The user never sees this password; it only has
// to be unguessable.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_!@#$%^&*"

// GenerateSecurePassword returns a random password of the given length drawn
// from a crypto/rand source. Used when a local account is provisioned from
// external identity credentials and no password was ever chosen by the user.
func GenerateSecurePassword(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("password length must be positive")
	}

	password := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error generating random password: %w", err)
		}
		password[i] = passwordAlphabet[n.Int64()]
	}

	return string(password), nil
}
