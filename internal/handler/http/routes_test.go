package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/Killjoy99/eNtweniBooking/internal/service"
	"github.com/Killjoy99/eNtweniBooking/internal/utils"
	"github.com/Killjoy99/eNtweniBooking/models"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
)

// Route-level tests: the full chi router with middleware, mocked services.

func TestRoutes_LoginFlow(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, loginIdentifier, password string) (models.User, error) {
			if loginIdentifier == "alice" && password == "s3cret" {
				return models.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil
			}
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	session := sessionIssuer(models.TokenPair{AccessToken: "signed.access", RefreshToken: "signed.refresh"})

	h, _ := newTestHandler(t, auth, session, nil)
	router := h.Init()

	apitest.New().
		Handler(router).
		Post("/login").
		JSON(`{"login_identifier":"alice","password":"s3cret"}`).
		Expect(t).
		Status(http.StatusAccepted).
		Assert(jsonpath.Equal(`$.detail`, "LOGIN_SUCCESS")).
		CookiePresent(utils.AccessTokenCookie).
		CookiePresent(utils.RefreshTokenCookie).
		End()

	apitest.New().
		Handler(router).
		Post("/login").
		JSON(`{"login_identifier":"alice","password":"wrong"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.error`, "Incorrect email/user or password")).
		CookieNotPresent(utils.AccessTokenCookie).
		CookieNotPresent(utils.RefreshTokenCookie).
		End()
}

func TestRoutes_RefreshFlow(t *testing.T) {
	session := &mockSessionService{
		refreshSessionFn: func(_ context.Context, refreshToken string) (string, error) {
			if refreshToken == "valid.refresh" {
				return "signed.new-access", nil
			}
			return "", utils.ErrTokenExpired
		},
	}

	h, _ := newTestHandler(t, nil, session, nil)
	router := h.Init()

	apitest.New().
		Handler(router).
		Post("/refresh/").
		Cookie(utils.RefreshTokenCookie, "valid.refresh").
		Expect(t).
		Status(http.StatusOK).
		CookiePresent(utils.AccessTokenCookie).
		End()

	apitest.New().
		Handler(router).
		Post("/refresh/").
		Cookie(utils.RefreshTokenCookie, "expired.refresh").
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal(`$.error`, "Token Expired")).
		End()
}

// TestRoutes_ProtectedEndpoints verifies /me and /logout/ sit behind the
// auth middleware while the login-side routes do not.
func TestRoutes_ProtectedEndpoints(t *testing.T) {
	session := &mockSessionService{
		parseAccessTokenFn: func(_ context.Context, tokenString string) (*models.SessionClaims, error) {
			if tokenString == "valid.access" {
				return &models.SessionClaims{
					UserData: models.UserSnapshot{ID: 7, Username: "alice", Email: "alice@example.com"},
				}, nil
			}
			return nil, utils.ErrTokenSignatureInvalid
		},
	}

	h, _ := newTestHandler(t, nil, session, nil)
	router := h.Init()

	apitest.New().
		Handler(router).
		Get("/me").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	apitest.New().
		Handler(router).
		Get("/me").
		Cookie(utils.AccessTokenCookie, "valid.access").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.username`, "alice")).
		Assert(jsonpath.Equal(`$.email`, "alice@example.com")).
		End()

	apitest.New().
		Handler(router).
		Post("/logout/").
		Cookie(utils.AccessTokenCookie, "valid.access").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.detail`, "LOGOUT_SUCCESS")).
		End()
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t, nil, &mockSessionService{
		parseAccessTokenFn: func(_ context.Context, _ string) (*models.SessionClaims, error) {
			return nil, utils.ErrTokenMalformed
		},
	}, nil)
	router := h.Init()

	apitest.New().
		Handler(router).
		Get("/me").
		Header(traceIDHeader, "trace-abc").
		Expect(t).
		Status(http.StatusUnauthorized).
		Header(traceIDHeader, "trace-abc").
		End()
}
