package service

import (
	"github.com/Killjoy99/eNtweniBooking/internal/config"
	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/store"
)

type Services struct {
	AuthService       AuthService
	SessionService    SessionService
	GoogleAuthService GoogleAuthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, logger),
		SessionService:    NewSessionService(storages.UserRepository, cfg.Auth, logger),
		GoogleAuthService: NewGoogleAuthService(storages.UserRepository, cfg.Google, logger),
	}
}
