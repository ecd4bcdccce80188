package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func findCookie(t *testing.T, rr *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSetSessionCookie_Attributes(t *testing.T) {
	rr := httptest.NewRecorder()
	SetSessionCookie(rr, AccessTokenCookie, "signed.jwt.token", 30*time.Minute)

	c := findCookie(t, rr, AccessTokenCookie)
	if c.Value != "signed.jwt.token" {
		t.Errorf("expected token value, got %q", c.Value)
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly=true")
	}
	if !c.Secure {
		t.Error("expected Secure=true")
	}
	if c.SameSite != http.SameSiteNoneMode {
		t.Errorf("expected SameSite=None, got %v", c.SameSite)
	}
	if c.MaxAge != int((30 * time.Minute).Seconds()) {
		t.Errorf("expected MaxAge=1800, got %d", c.MaxAge)
	}
}

func TestExpireSessionCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	ExpireSessionCookie(rr, RefreshTokenCookie)

	c := findCookie(t, rr, RefreshTokenCookie)
	if c.Value != "" {
		t.Errorf("expected empty value, got %q", c.Value)
	}
	if c.MaxAge >= 0 {
		t.Errorf("expected negative MaxAge, got %d", c.MaxAge)
	}
	if !c.Expires.Before(time.Now()) {
		t.Errorf("expected expiry in the past, got %v", c.Expires)
	}
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteNoneMode {
		t.Error("expired cookie must keep HttpOnly/Secure/SameSite=None attributes")
	}
}
