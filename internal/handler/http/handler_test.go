package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Killjoy99/eNtweniBooking/internal/config"
	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/service"
	"github.com/Killjoy99/eNtweniBooking/internal/utils"
	"github.com/Killjoy99/eNtweniBooking/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, signup models.SignupRequest) (models.User, error)
	authenticateFn func(ctx context.Context, loginIdentifier, password string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, signup models.SignupRequest) (models.User, error) {
	return m.registerUserFn(ctx, signup)
}

func (m *mockAuthService) Authenticate(ctx context.Context, loginIdentifier, password string) (models.User, error) {
	return m.authenticateFn(ctx, loginIdentifier, password)
}

// mockSessionService implements service.SessionService for unit tests.
type mockSessionService struct {
	issueSessionFn     func(ctx context.Context, subject string, snapshot models.UserSnapshot) (models.TokenPair, error)
	refreshSessionFn   func(ctx context.Context, refreshToken string) (string, error)
	parseAccessTokenFn func(ctx context.Context, tokenString string) (*models.SessionClaims, error)
}

func (m *mockSessionService) IssueSession(ctx context.Context, subject string, snapshot models.UserSnapshot) (models.TokenPair, error) {
	return m.issueSessionFn(ctx, subject, snapshot)
}

func (m *mockSessionService) RefreshSession(ctx context.Context, refreshToken string) (string, error) {
	return m.refreshSessionFn(ctx, refreshToken)
}

func (m *mockSessionService) ParseAccessToken(ctx context.Context, tokenString string) (*models.SessionClaims, error) {
	return m.parseAccessTokenFn(ctx, tokenString)
}

// mockGoogleAuthService implements service.GoogleAuthService for unit tests.
type mockGoogleAuthService struct {
	authCodeURLFn       func() string
	exchangeAndVerifyFn func(ctx context.Context, code string) (models.ExternalProfile, error)
	loginOrProvisionFn  func(ctx context.Context, profile models.ExternalProfile) (models.User, error)
}

func (m *mockGoogleAuthService) AuthCodeURL() string {
	return m.authCodeURLFn()
}

func (m *mockGoogleAuthService) ExchangeAndVerify(ctx context.Context, code string) (models.ExternalProfile, error) {
	return m.exchangeAndVerifyFn(ctx, code)
}

func (m *mockGoogleAuthService) LoginOrProvision(ctx context.Context, profile models.ExternalProfile) (models.User, error) {
	return m.loginOrProvisionFn(ctx, profile)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// recordingLoginRecorder captures IDs passed to Record.
type recordingLoginRecorder struct {
	recorded []int64
}

func (r *recordingLoginRecorder) Record(userID int64) {
	r.recorded = append(r.recorded, userID)
}

func testHandlerConfig() config.Auth {
	return config.Auth{
		AccessSecretKey:        "access-secret-for-tests",
		RefreshSecretKey:       "refresh-secret-for-tests",
		Algorithm:              "HS256",
		AccessTokenTTL:         30 * time.Minute,
		ExtendedAccessTokenTTL: 120 * time.Minute,
		RefreshTokenTTL:        24 * time.Hour,
	}
}

// newTestHandler builds a Handler over the given mocks. Nil mocks are left
// nil: a test touching an unconfigured service panics, which is the point.
func newTestHandler(t *testing.T, auth service.AuthService, session service.SessionService, google service.GoogleAuthService) (*Handler, *recordingLoginRecorder) {
	t.Helper()

	recorder := &recordingLoginRecorder{}
	svcs := &service.Services{
		AuthService:       auth,
		SessionService:    session,
		GoogleAuthService: google,
	}
	return NewHandler(svcs, recorder, testHandlerConfig(), logger.Nop()), recorder
}

// findCookie returns the named cookie from a response, or nil.
func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// sessionIssuer returns a mockSessionService that mints a fixed token pair.
func sessionIssuer(pair models.TokenPair) *mockSessionService {
	return &mockSessionService{
		issueSessionFn: func(_ context.Context, _ string, _ models.UserSnapshot) (models.TokenPair, error) {
			return pair, nil
		},
	}
}

// authenticatedRequest attaches session claims to the request context the
// same way the auth middleware would.
func authenticatedRequest(r *http.Request, claims *models.SessionClaims) *http.Request {
	return r.WithContext(utils.SessionClaimsToContext(r.Context(), claims))
}
