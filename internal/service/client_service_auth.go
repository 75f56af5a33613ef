package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/adapter"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("registration on server ended with error")
		return models.User{}, fmt.Errorf("register on server: %w", err)
	}

	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	user, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("login on server ended with error")
		return models.User{}, fmt.Errorf("login on server: %w", err)
	}

	return user, nil
}
