// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fleet-tracker/internal/service"
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authFor returns an AuthService mock that accepts any bearer token and
// resolves it to the given user.
func authFor(user models.User) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Email: user.Email}, nil
		},
		resolveUserFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}
}

func TestRouter_PublicRoot(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRouter_AuthenticatedRoutesRejectAnonymous(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestRouter_OperatorGroupRejectsCaptain(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authFor(testCaptain)})
	router := h.Init()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/operator/ships", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_CaptainGroupRejectsOperator(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authFor(testOperator)})
	router := h.Init()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/captain/routes", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ReportCreationIsCaptainOnly(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authFor(testOperator)})
	router := h.Init()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reports", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ApproveIsOperatorOnly(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authFor(testCaptain)})
	router := h.Init()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reports/3/approve", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_StubsAnswerNotImplemented(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authFor(testOperator)})
	router := h.Init()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/operator/export", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestRouter_Me(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authFor(testCaptain)})
	router := h.Init()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
