package http

import (
	"errors"
	"net/http"

	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/service"
	"github.com/Killjoy99/eNtweniBooking/internal/utils"
	"github.com/Killjoy99/eNtweniBooking/models"
)

// googleLogin redirects the browser to the provider's authorization page.
func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.services.GoogleAuthService.AuthCodeURL(), http.StatusTemporaryRedirect)
}

// googleCallback completes the authorization-code flow: it exchanges the
// code, verifies the profile, loads or auto-provisions the local account,
// sets the session cookies, and redirects home.
//
// Verification failures map to distinct statuses: an incomplete profile is
// the client's problem (400), a provider outage is upstream's (502). No
// account is created on any failure path.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authorizationCode := r.URL.Query().Get("code")
	if authorizationCode == "" {
		log.Debug().Msg("callback without authorization code")
		utils.WriteJSON(w, models.ErrorResponse{Error: "missing authorization code"}, http.StatusBadRequest)
		return
	}

	profile, err := h.services.GoogleAuthService.ExchangeAndVerify(ctx, authorizationCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExternalProfileIncomplete):
			log.Err(err).Msg("external profile incomplete")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgProfileIncomplete}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrExternalProvider),
			errors.Is(err, service.ErrInvalidProviderResponse),
			errors.Is(err, service.ErrTokenVerificationFailed):
			log.Err(err).Msg("external identity verification failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgProviderError}, http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during external login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	user, err := h.services.GoogleAuthService.LoginOrProvision(ctx, profile)
	if err != nil {
		log.Err(err).Msg("user provisioning failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	tokenPair, err := h.services.SessionService.IssueSession(ctx, user.Username, user.Snapshot())
	if err != nil {
		log.Err(err).Msg("session issuance failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if ctx.Err() != nil {
		return
	}

	utils.SetSessionCookie(w, utils.AccessTokenCookie, tokenPair.AccessToken, h.authCfg.AccessTokenTTL)
	utils.SetSessionCookie(w, utils.RefreshTokenCookie, tokenPair.RefreshToken, h.authCfg.RefreshTokenTTL)

	h.loginRecorder.Record(user.ID)

	log.Info().Int64("id", user.ID).Msg("user logged in via external identity")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
