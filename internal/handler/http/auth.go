package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/service"
	"github.com/Killjoy99/eNtweniBooking/internal/store"
	"github.com/Killjoy99/eNtweniBooking/internal/utils"
	"github.com/Killjoy99/eNtweniBooking/models"
)

// login authenticates a username-or-email + password pair and, on success,
// sets the access and refresh session cookies.
//
// Success is HTTP 202 with {"detail": "LOGIN_SUCCESS"}. Every credential
// failure is HTTP 400 with the same uniform body, so the response does not
// reveal whether the identifier exists.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var loginRequest models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidRequestBody}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Authenticate(ctx, loginRequest.LoginIdentifier, loginRequest.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Msg("login rejected")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgIncorrectCredentials}, http.StatusBadRequest)
			return
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// caller disconnected mid-flow; nothing to send
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	tokenPair, err := h.services.SessionService.IssueSession(ctx, foundUser.Username, foundUser.Snapshot())
	if err != nil {
		log.Err(err).Msg("session issuance failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// do not send partially issued cookies to a caller that is already gone
	if ctx.Err() != nil {
		return
	}

	utils.SetSessionCookie(w, utils.AccessTokenCookie, tokenPair.AccessToken, h.authCfg.AccessTokenTTL)
	utils.SetSessionCookie(w, utils.RefreshTokenCookie, tokenPair.RefreshToken, h.authCfg.RefreshTokenTTL)

	h.loginRecorder.Record(foundUser.ID)

	log.Info().Int64("id", foundUser.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.DetailResponse{Detail: msgLoginSuccess}, http.StatusAccepted)
}

// signup registers a new account. The response carries no session cookies;
// the client logs in separately.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var signupRequest models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&signupRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidRequestBody}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, signupRequest)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("identifier already registered")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgIdentifierTaken}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")
	utils.WriteJSON(w, models.DetailResponse{Detail: msgSignupSuccess}, http.StatusCreated)
}

// refresh exchanges a valid refresh-token cookie for a new access-token
// cookie. The refresh cookie itself is left untouched.
//
// Rejections are HTTP 401 with a reason string keyed to the failure kind;
// the reason never echoes the token itself.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	refreshCookie, err := r.Cookie(utils.RefreshTokenCookie)
	if err != nil || refreshCookie.Value == "" {
		log.Debug().Msg("refresh requested without refresh cookie")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgCannotValidate}, http.StatusUnauthorized)
		return
	}

	newAccessToken, err := h.services.SessionService.RefreshSession(ctx, refreshCookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrTokenExpired):
			log.Debug().Msg("refresh rejected: token expired")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgTokenExpired}, http.StatusUnauthorized)
			return
		case errors.Is(err, utils.ErrTokenSignatureInvalid), errors.Is(err, utils.ErrTokenMalformed):
			log.Debug().Msg("refresh rejected: invalid token")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidAccessToken}, http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrNoSubject), errors.Is(err, service.ErrAccountInactive):
			log.Debug().Msg("refresh rejected: credentials could not be validated")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgCannotValidate}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during session refresh")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if ctx.Err() != nil {
		return
	}

	utils.SetSessionCookie(w, utils.AccessTokenCookie, newAccessToken, h.authCfg.ExtendedAccessTokenTTL)
	utils.WriteJSON(w, models.DetailResponse{Detail: "Access token refreshed"}, http.StatusOK)
}

// logout overwrites both session cookies with empty, already-expired values.
// There is no server-side blacklist: a copy of a still-unexpired token taken
// before logout stays verifiable until its natural expiry.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	utils.ExpireSessionCookie(w, utils.AccessTokenCookie)
	utils.ExpireSessionCookie(w, utils.RefreshTokenCookie)

	log.Info().Msg("user logged out")
	utils.WriteJSON(w, models.DetailResponse{Detail: msgLogoutSuccess}, http.StatusOK)
}

// me returns the identity summary of the authenticated caller, straight from
// the access token's embedded snapshot. No store read happens here: the
// snapshot is authoritative for the token's lifetime.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.SessionClaimsFromContext(r.Context())
	if !ok {
		// unreachable behind the auth middleware
		log.Error().Msg("no session claims in authenticated request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, claims.UserData, http.StatusOK)
}
