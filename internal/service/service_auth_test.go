// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/fleet-tracker/internal/config"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/internal/validators"
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn     func(ctx context.Context, user models.User) (models.User, error)
	findFn       func(ctx context.Context, email string) (models.User, error)
	listByRoleFn func(ctx context.Context, role models.Role) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	if m.listByRoleFn != nil {
		return m.listByRoleFn(ctx, role)
	}
	return nil, nil
}

func newTestAuthService(repo store.UserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "fleet-tracker-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, validators.NewFleetValidator(), logger.NewLogger("test"))
}

func TestAuthService_Register_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	req := models.RegisterRequest{
		Email:    "captain@fleet.io",
		Password: "s3cret",
		Role:     models.RoleCaptain,
		FullName: "John Silver",
		License:  "LIC-9",
	}

	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, models.RoleCaptain, user.Role)
	assert.True(t, user.IsActive)

	// the stored value carries a bcrypt hash, never the plaintext
	assert.NotEqual(t, req.Password, persisted.HashedPassword)
	assert.True(t, utils.CheckPassword(req.Password, persisted.HashedPassword))
}

func TestAuthService_Register_InvalidPayload(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "captain@fleet.io",
		Role:  models.RoleCaptain,
	})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "captain@fleet.io",
		Password: "s3cret",
		Role:     models.RoleCaptain,
	})

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, HashedPassword: hash, Role: models.RoleOperator}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{Email: "op@fleet.io", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, HashedPassword: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "op@fleet.io", Password: "wrong"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@fleet.io", Password: "s3cret"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	user := models.User{UserID: 7, Email: "op@fleet.io"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.Email, parsed.Email)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ResolveUser_Gone(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.ResolveUser(context.Background(), "deleted@fleet.io")
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_ListCaptains(t *testing.T) {
	repo := &mockUserRepository{
		listByRoleFn: func(_ context.Context, role models.Role) ([]models.User, error) {
			require.Equal(t, models.RoleCaptain, role)
			return []models.User{{UserID: 1}, {UserID: 2}}, nil
		},
	}
	svc := newTestAuthService(repo)

	captains, err := svc.ListCaptains(context.Background())
	require.NoError(t, err)
	assert.Len(t, captains, 2)
}

func TestAuthService_ListCaptains_Error(t *testing.T) {
	repo := &mockUserRepository{
		listByRoleFn: func(_ context.Context, _ models.Role) ([]models.User, error) {
			return nil, errors.New("boom")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.ListCaptains(context.Background())
	require.Error(t, err)
}
