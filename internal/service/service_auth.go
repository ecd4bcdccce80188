package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/store"
	"github.com/Killjoy99/eNtweniBooking/internal/utils"
	"github.com/Killjoy99/eNtweniBooking/models"
)

// enumerationDelay is the fixed minimum latency applied to every
// authentication attempt, successful or not. It flattens the timing
// difference between "user not found" and "user found, password wrong" so
// callers cannot enumerate accounts by measuring response times. The sleep
// is approximate equalization, not constant-time: tests assert bounded
// variance, not zero variance.
const enumerationDelay = 100 * time.Millisecond

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// minDelay is the enumeration-mitigation floor. Set to
	// enumerationDelay in production; tests may shorten it.
	minDelay time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		minDelay:       enumerationDelay,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that username, email and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// Identifier lowercasing happens at the repository layer.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. identifier
//     already taken — see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, signup models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if signup.Username == "" || signup.Email == "" || signup.Password == "" {
		log.Error().Str("username", signup.Username).Str("email", signup.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(signup.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     signup.Username,
		Email:        signup.Email,
		PasswordHash: passwordHash,
		FirstName:    signup.FirstName,
		LastName:     signup.LastName,
	})
	if err != nil {
		log.Err(err).Str("username", signup.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies a login identifier and password.
//
// Algorithm:
//  1. Wait out the fixed minimum latency, aborting early only if the caller
//     disconnects. The delay applies to every outcome.
//  2. Look the user up across both username and email in one disjunctive
//     query (the identifier may be either).
//  3. No non-deleted match → ErrInvalidCredentials.
//  4. Password mismatch → the same ErrInvalidCredentials. A corrupted
//     stored hash is surfaced as an internal error instead, never as
//     "verified".
//  5. On success, return the full user record. Recording the last-login
//     timestamp is the caller's concern and happens out-of-band so login
//     latency is not coupled to a write.
//
// The plaintext password is never logged on any path.
func (a *authService) Authenticate(ctx context.Context, loginIdentifier, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	timer := time.NewTimer(a.minDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return models.User{}, ctx.Err()
	case <-timer.C:
	}

	if loginIdentifier == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindByLoginIdentifier(ctx, strings.TrimSpace(loginIdentifier))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("authentication failed")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	ok, err := utils.VerifyPassword(password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("stored password hash could not be verified")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Msg("authentication failed")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
