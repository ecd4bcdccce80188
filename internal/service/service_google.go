package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Killjoy99/eNtweniBooking/internal/config"
	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/store"
	"github.com/Killjoy99/eNtweniBooking/internal/utils"
	"github.com/Killjoy99/eNtweniBooking/models"
)

// generatedPasswordLength is the length of the random password assigned to
// auto-provisioned accounts. The user never sees it; it only exists because
// every account row carries a password hash.
const generatedPasswordLength = 20

// googleAuthService is the concrete implementation of GoogleAuthService.
// It talks to the provider's token and userinfo endpoints over a resty
// client and resolves verified profiles to local accounts.
type googleAuthService struct {
	userRepository store.UserRepository

	client *utils.HTTPClient
	cfg    config.Google

	logger *logger.Logger
}

// tokenEndpointResponse is the subset of the provider's token response the
// verifier needs.
type tokenEndpointResponse struct {
	AccessToken string `json:"access_token"`
}

// NewGoogleAuthService constructs a GoogleAuthService wired to the given
// UserRepository and provider settings. The underlying HTTP client applies
// cfg.RequestTimeout to every provider call so an outage degrades to a
// clean error instead of a hung login.
func NewGoogleAuthService(userRepository store.UserRepository, cfg config.Google, logger *logger.Logger) GoogleAuthService {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	return &googleAuthService{
		userRepository: userRepository,
		client:         client,
		cfg:            cfg,
		logger:         logger,
	}
}

// AuthCodeURL builds the provider authorization URL for the browser
// redirect, requesting the openid/email/profile scopes.
func (g *googleAuthService) AuthCodeURL() string {
	params := url.Values{}
	params.Set("client_id", g.cfg.ClientID)
	params.Set("redirect_uri", g.cfg.RedirectURI)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")

	return g.cfg.AuthURL + "?" + params.Encode()
}

// ExchangeAndVerify runs the provider protocol, one failure mode per step:
//
//  1. POST the authorization code, client credentials, redirect URI and
//     grant type to the token endpoint. Network failure or a non-2xx
//     response → ErrExternalProvider.
//  2. Extract the bearer access token from the JSON response. Missing
//     field → ErrInvalidProviderResponse.
//  3. GET the userinfo endpoint with that bearer token. Non-2xx →
//     ErrTokenVerificationFailed.
//  4. Require email, given_name and family_name in the returned profile;
//     any absence → ErrExternalProfileIncomplete.
//  5. Lowercase the email before it becomes a lookup/provisioning key.
//
// The method has no side effects; the caller decides whether to look up or
// auto-provision a local user.
func (g *googleAuthService) ExchangeAndVerify(ctx context.Context, authorizationCode string) (models.ExternalProfile, error) {
	log := logger.FromContext(ctx)

	var tokenResp tokenEndpointResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"code":          authorizationCode,
			"client_id":     g.cfg.ClientID,
			"client_secret": g.cfg.ClientSecret,
			"redirect_uri":  g.cfg.RedirectURI,
			"grant_type":    "authorization_code",
		}).
		SetResult(&tokenResp).
		Post(g.cfg.TokenURL)
	if err != nil {
		log.Err(err).Msg("token exchange request failed")
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrExternalProvider, err)
	}
	if !resp.IsSuccess() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("token endpoint returned non-2xx")
		return models.ExternalProfile{}, fmt.Errorf("%w: token endpoint status %d", ErrExternalProvider, resp.StatusCode())
	}

	if tokenResp.AccessToken == "" {
		log.Error().Msg("token endpoint response carries no access token")
		return models.ExternalProfile{}, ErrInvalidProviderResponse
	}

	var profile models.ExternalProfile
	userinfoResp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(tokenResp.AccessToken).
		SetResult(&profile).
		Get(g.cfg.UserinfoURL)
	if err != nil {
		log.Err(err).Msg("userinfo request failed")
		return models.ExternalProfile{}, fmt.Errorf("%w: %w", ErrTokenVerificationFailed, err)
	}
	if !userinfoResp.IsSuccess() {
		log.Error().Int("status", userinfoResp.StatusCode()).Msg("userinfo endpoint returned non-2xx")
		return models.ExternalProfile{}, fmt.Errorf("%w: userinfo status %d", ErrTokenVerificationFailed, userinfoResp.StatusCode())
	}

	if profile.Email == "" || profile.GivenName == "" || profile.FamilyName == "" {
		log.Error().Msg("provider profile is missing required claims")
		return models.ExternalProfile{}, ErrExternalProfileIncomplete
	}

	profile.Email = strings.ToLower(profile.Email)
	return profile, nil
}

// LoginOrProvision resolves a verified external profile to a local account.
//
// The lowercased email is the provisioning key: the first login creates a
// user with a randomly generated password; every subsequent login for the
// same email loads that same row. A creation race between two concurrent
// first logins collapses onto the winner via the unique index, so exactly
// one row ever exists per email.
func (g *googleAuthService) LoginOrProvision(ctx context.Context, profile models.ExternalProfile) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := g.userRepository.FindByEmail(ctx, profile.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("user lookup by email failed")
		return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	password, err := utils.GenerateSecurePassword(generatedPasswordLength)
	if err != nil {
		log.Err(err).Msg("password generation failed")
		return models.User{}, fmt.Errorf("password generation failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := g.userRepository.CreateUser(ctx, models.User{
		Username:        profile.Email, // the provider email doubles as the username
		Email:           profile.Email,
		PasswordHash:    passwordHash,
		FirstName:       profile.GivenName,
		LastName:        profile.FamilyName,
		ProfileImageURL: profile.Picture,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			// lost the provisioning race; the winner's row is ours
			return g.userRepository.FindByEmail(ctx, profile.Email)
		}
		log.Err(err).Msg("user auto-provisioning failed")
		return models.User{}, fmt.Errorf("user auto-provisioning failed: %w", err)
	}

	log.Info().Int64("id", created.ID).Msg("auto-provisioned user from external identity")
	return created, nil
}
