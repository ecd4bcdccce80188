package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Killjoy99/eNtweniBooking/internal/config"
	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/store"
	"github.com/Killjoy99/eNtweniBooking/internal/utils"
	"github.com/Killjoy99/eNtweniBooking/models"
)

// sessionService is the concrete implementation of SessionService. It owns
// the session token lifecycle: issuance at login, refresh-driven reissue,
// and access-token verification.
//
// No session state is written server-side: the protocol is fully
// self-contained in the signed tokens.
type sessionService struct {
	// userRepository is consulted on the refresh path only. Refresh is the
	// one place fresh data IS required, because a soft-deleted account
	// must be caught; everywhere else, the snapshot inside the token is
	// authoritative.
	userRepository store.UserRepository

	// cfg carries the token secrets, the algorithm identifier, and the
	// three lifetimes (login access, refreshed access, refresh).
	cfg config.Auth

	logger *logger.Logger
}

// NewSessionService constructs a SessionService with security parameters
// from cfg. The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewSessionService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) SessionService {
	return &sessionService{
		userRepository: userRepository,
		cfg:            cfg,
		logger:         logger,
	}
}

// IssueSession mints the access+refresh token pair for a freshly
// authenticated subject.
//
// The access token expires after AccessTokenTTL, the refresh token after
// RefreshTokenTTL, and each is signed with its own secret so the two kinds
// are never interchangeable. Both tokens carry the identical identity
// snapshot captured at issuance.
func (s *sessionService) IssueSession(ctx context.Context, subject string, snapshot models.UserSnapshot) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	accessToken, err := utils.GenerateSessionToken(subject, snapshot, s.cfg.AccessTokenTTL, s.cfg.AccessSecretKey, s.cfg.Algorithm)
	if err != nil {
		log.Err(err).Msg("access token creation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateSessionToken(subject, snapshot, s.cfg.RefreshTokenTTL, s.cfg.RefreshSecretKey, s.cfg.Algorithm)
	if err != nil {
		log.Err(err).Msg("refresh token creation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshSession validates a refresh token and mints a new access token
// without re-prompting credentials.
//
// The flow is strictly linear; any failure exits to rejection:
//  1. Decode the refresh token with the refresh secret. Expired, invalid
//     or malformed tokens propagate the codec's failure kind.
//  2. Extract the subject; absence → ErrNoSubject.
//  3. Reload the user by that identifier from the credential store — NOT
//     from the stale embedded snapshot.
//  4. Missing or soft-deleted user → ErrAccountInactive.
//  5. Mint a new access token with the extended TTL and a fresh snapshot.
//
// The refresh token itself is not rotated: the same token stays valid until
// its natural expiry. Rotation on every use would be the stronger policy;
// preserving the reusable-token behaviour is a deliberate choice.
func (s *sessionService) RefreshSession(ctx context.Context, refreshToken string) (string, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ParseSessionToken(refreshToken, s.cfg.RefreshSecretKey, s.cfg.Algorithm)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")
		return "", err
	}

	subject := claims.Subject
	if subject == "" {
		log.Debug().Msg("refresh token has no subject")
		return "", ErrNoSubject
	}

	user, err := s.userRepository.FindByLoginIdentifier(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("sub", subject).Msg("refresh rejected: inactive account")
			return "", ErrAccountInactive
		}
		log.Err(err).Msg("user reload failed during refresh")
		return "", fmt.Errorf("user reload failed during refresh: %w", err)
	}

	accessToken, err := utils.GenerateSessionToken(subject, user.Snapshot(), s.cfg.ExtendedAccessTokenTTL, s.cfg.AccessSecretKey, s.cfg.Algorithm)
	if err != nil {
		log.Err(err).Msg("access token reissue failed")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return accessToken, nil
}

// ParseAccessToken validates and parses a raw access token string.
//
// It delegates to the token codec with the access secret; the codec's
// failure kinds (expired, signature, malformed) pass through unchanged so
// the transport layer can log the kind while returning a generic 401.
func (s *sessionService) ParseAccessToken(ctx context.Context, tokenString string) (*models.SessionClaims, error) {
	claims, err := utils.ParseSessionToken(tokenString, s.cfg.AccessSecretKey, s.cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
