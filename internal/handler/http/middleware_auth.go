package http

import (
	"errors"
	"net/http"

	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/utils"
	"github.com/Killjoy99/eNtweniBooking/models"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the access-token cookie, validates it via the session service,
// and — on success — stores the decoded session claims in the request
// context under [utils.SessionClaimsCtxKey] before delegating to the next
// handler.
//
// Requests are rejected with HTTP 401 when the cookie is absent or empty,
// when the token is expired, and when the signature does not verify. The
// client-facing reason mirrors the refresh endpoint's taxonomy; the precise
// failure kind is logged, never the token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		accessCookie, err := r.Cookie(utils.AccessTokenCookie)
		if err != nil || accessCookie.Value == "" {
			log.Debug().Msg("request without access-token cookie")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgCannotValidate}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.SessionService.ParseAccessToken(ctx, accessCookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				log.Debug().Msg("access token expired")
				utils.WriteJSON(w, models.ErrorResponse{Error: msgTokenExpired}, http.StatusUnauthorized)
				return
			default:
				log.Debug().Err(err).Msg("access token rejected")
				utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidAccessToken}, http.StatusUnauthorized)
				return
			}
		}

		// Store the decoded claims in the context so downstream handlers can
		// read the identity snapshot without re-parsing the token.
		ctx = utils.SessionClaimsToContext(ctx, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
