package http

import (
	"github.com/Killjoy99/eNtweniBooking/internal/config"
	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/service"
)

// LoginRecorder receives the IDs of users that just authenticated so their
// last-login timestamp can be persisted off the request path. Record must
// never block.
type LoginRecorder interface {
	Record(userID int64)
}

// noopLoginRecorder discards login notifications. Used when no recorder is
// wired (tests).
type noopLoginRecorder struct{}

func (noopLoginRecorder) Record(int64) {}

type Handler struct {
	services *service.Services

	// loginRecorder is notified after every successful credential or
	// external-identity login. Failures there never fail the login.
	loginRecorder LoginRecorder

	// authCfg supplies the session TTLs used for cookie lifetimes.
	authCfg config.Auth

	logger *logger.Logger
}

func NewHandler(services *service.Services, loginRecorder LoginRecorder, authCfg config.Auth, logger *logger.Logger) *Handler {
	if loginRecorder == nil {
		loginRecorder = noopLoginRecorder{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		loginRecorder: loginRecorder,
		authCfg:       authCfg,
		logger:        logger,
	}
}
