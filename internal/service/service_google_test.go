package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Killjoy99/eNtweniBooking/internal/config"
	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/mock"
	"github.com/Killjoy99/eNtweniBooking/internal/store"
	"github.com/Killjoy99/eNtweniBooking/internal/utils"
	"github.com/Killjoy99/eNtweniBooking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeProvider stands in for the identity provider's token and userinfo
// endpoints. Handlers can be swapped per test.
type fakeProvider struct {
	server *httptest.Server

	tokenHandler    http.HandlerFunc
	userinfoHandler http.HandlerFunc
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) { p.tokenHandler(w, r) })
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) { p.userinfoHandler(w, r) })

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)

	// defaults: successful exchange for a complete profile
	p.tokenHandler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "provider-access-token"})
	}
	p.userinfoHandler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"email":       "Alice@Example.com",
			"given_name":  "Alice",
			"family_name": "Smith",
			"picture":     "https://img.example.com/alice.png",
		})
	}

	return p
}

func (p *fakeProvider) config() config.Google {
	return config.Google{
		ClientID:       "test-client-id",
		ClientSecret:   "test-client-secret",
		RedirectURI:    "http://localhost:8000/callback",
		AuthURL:        p.server.URL + "/auth",
		TokenURL:       p.server.URL + "/token",
		UserinfoURL:    p.server.URL + "/userinfo",
		RequestTimeout: 5 * time.Second,
	}
}

func newTestGoogleSvc(t *testing.T, ctrl *gomock.Controller, provider *fakeProvider) (*googleAuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewGoogleAuthService(repo, provider.config(), logger.Nop()).(*googleAuthService)
	return svc, repo
}

// ── AuthCodeURL ──────────────────────────────────────────────────────────────

func TestAuthCodeURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t)
	svc, _ := newTestGoogleSvc(t, ctrl, provider)

	parsed, err := url.Parse(svc.AuthCodeURL())
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "test-client-id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8000/callback", query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
}

// ── ExchangeAndVerify ────────────────────────────────────────────────────────

func TestExchangeAndVerify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t)
	var gotForm url.Values
	var gotAuthHeader string

	defaultToken := provider.tokenHandler
	provider.tokenHandler = func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		defaultToken(w, r)
	}
	defaultUserinfo := provider.userinfoHandler
	provider.userinfoHandler = func(w http.ResponseWriter, r *http.Request) {
		gotAuthHeader = r.Header.Get("Authorization")
		defaultUserinfo(w, r)
	}

	svc, _ := newTestGoogleSvc(t, ctrl, provider)

	profile, err := svc.ExchangeAndVerify(context.Background(), "auth-code-123")
	require.NoError(t, err)

	assert.Equal(t, "auth-code-123", gotForm.Get("code"))
	assert.Equal(t, "test-client-id", gotForm.Get("client_id"))
	assert.Equal(t, "test-client-secret", gotForm.Get("client_secret"))
	assert.Equal(t, "authorization_code", gotForm.Get("grant_type"))
	assert.Equal(t, "Bearer provider-access-token", gotAuthHeader)

	// the email is normalized to lowercase before it becomes a key
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "Alice", profile.GivenName)
	assert.Equal(t, "Smith", profile.FamilyName)
	assert.Equal(t, "https://img.example.com/alice.png", profile.Picture)
}

func TestExchangeAndVerify_TokenEndpointFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t)
	provider.tokenHandler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}

	svc, _ := newTestGoogleSvc(t, ctrl, provider)

	_, err := svc.ExchangeAndVerify(context.Background(), "stale-code")
	assert.ErrorIs(t, err, ErrExternalProvider)
}

func TestExchangeAndVerify_NoAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t)
	provider.tokenHandler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	}

	svc, _ := newTestGoogleSvc(t, ctrl, provider)

	_, err := svc.ExchangeAndVerify(context.Background(), "auth-code-123")
	assert.ErrorIs(t, err, ErrInvalidProviderResponse)
}

func TestExchangeAndVerify_UserinfoRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t)
	provider.userinfoHandler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
	}

	svc, _ := newTestGoogleSvc(t, ctrl, provider)

	_, err := svc.ExchangeAndVerify(context.Background(), "auth-code-123")
	assert.ErrorIs(t, err, ErrTokenVerificationFailed)
}

// TestExchangeAndVerify_IncompleteProfile verifies that a profile missing a
// required claim is rejected before any account is touched: ExchangeAndVerify
// never calls the repository, so no partial user can be created.
func TestExchangeAndVerify_IncompleteProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile map[string]string
	}{
		{"missing email", map[string]string{"given_name": "Alice", "family_name": "Smith"}},
		{"missing given_name", map[string]string{"email": "a@e.com", "family_name": "Smith"}},
		{"missing family_name", map[string]string{"email": "a@e.com", "given_name": "Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := newFakeProvider(t)
			provider.userinfoHandler = func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(tt.profile)
			}

			// no repository expectations: any call fails the test
			svc, _ := newTestGoogleSvc(t, ctrl, provider)

			_, err := svc.ExchangeAndVerify(context.Background(), "auth-code-123")
			assert.ErrorIs(t, err, ErrExternalProfileIncomplete)
		})
	}
}

// ── LoginOrProvision ─────────────────────────────────────────────────────────

func externalProfile() models.ExternalProfile {
	return models.ExternalProfile{
		Email:      "alice@example.com",
		GivenName:  "Alice",
		FamilyName: "Smith",
		Picture:    "https://img.example.com/alice.png",
	}
}

func TestLoginOrProvision_ExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t)
	svc, repo := newTestGoogleSvc(t, ctrl, provider)

	existing := models.User{ID: 3, Username: "alice@example.com", Email: "alice@example.com"}
	repo.EXPECT().
		FindByEmail(gomock.Any(), "alice@example.com").
		Return(existing, nil)

	got, err := svc.LoginOrProvision(context.Background(), externalProfile())
	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestLoginOrProvision_FirstLoginCreatesUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t)
	svc, repo := newTestGoogleSvc(t, ctrl, provider)

	repo.EXPECT().
		FindByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice@example.com", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "Alice", user.FirstName)
			assert.Equal(t, "Smith", user.LastName)
			assert.Equal(t, "https://img.example.com/alice.png", user.ProfileImageURL)

			// a real bcrypt hash of some generated password, not a blank
			require.NotEmpty(t, user.PasswordHash)
			_, err := utils.VerifyPassword("anything", user.PasswordHash)
			assert.NoError(t, err)

			user.ID = 42
			return user, nil
		})

	got, err := svc.LoginOrProvision(context.Background(), externalProfile())
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
}

// TestLoginOrProvision_Idempotent verifies repeated logins for the same email
// resolve to the same account: the second login only looks up, never creates.
func TestLoginOrProvision_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t)
	svc, repo := newTestGoogleSvc(t, ctrl, provider)

	var provisioned models.User

	first := repo.EXPECT().
		FindByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			user.ID = 42
			provisioned = user
			return user, nil
		})
	repo.EXPECT().
		FindByEmail(gomock.Any(), "alice@example.com").
		After(first).
		DoAndReturn(func(context.Context, string) (models.User, error) {
			return provisioned, nil
		})

	firstLogin, err := svc.LoginOrProvision(context.Background(), externalProfile())
	require.NoError(t, err)

	secondLogin, err := svc.LoginOrProvision(context.Background(), externalProfile())
	require.NoError(t, err)
	assert.Equal(t, firstLogin.ID, secondLogin.ID)
}

// TestLoginOrProvision_CreationRace verifies the lost-race path: a unique
// violation on create falls back to loading the winner's row.
func TestLoginOrProvision_CreationRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newFakeProvider(t)
	svc, repo := newTestGoogleSvc(t, ctrl, provider)

	winner := models.User{ID: 9, Username: "alice@example.com", Email: "alice@example.com"}

	first := repo.EXPECT().
		FindByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUserAlreadyExists)
	repo.EXPECT().
		FindByEmail(gomock.Any(), "alice@example.com").
		After(first).
		Return(winner, nil)

	got, err := svc.LoginOrProvision(context.Background(), externalProfile())
	require.NoError(t, err)
	assert.Equal(t, winner, got)
}
