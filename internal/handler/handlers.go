package handler

import (
	"github.com/Killjoy99/eNtweniBooking/internal/config"
	"github.com/Killjoy99/eNtweniBooking/internal/handler/http"
	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, loginRecorder http.LoginRecorder, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, loginRecorder, cfg.Auth, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
