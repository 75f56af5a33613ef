// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/service"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	resolveUserFn  func(ctx context.Context, email string) (models.User, error)
	listCaptainsFn func(ctx context.Context) ([]models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, email string) (models.User, error) {
	return m.resolveUserFn(ctx, email)
}

func (m *mockAuthService) ListCaptains(ctx context.Context) ([]models.User, error) {
	return m.listCaptainsFn(ctx)
}

// ─────────────────────────────────────────────
// Mock: service.ReportService
// ─────────────────────────────────────────────

type mockReportService struct {
	createFn      func(ctx context.Context, captain models.User, req models.ReportCreateRequest) (models.Report, error)
	getFn         func(ctx context.Context, reportID int64) (models.Report, error)
	listFn        func(ctx context.Context, principal models.User, offset, limit int64) ([]models.Report, error)
	listByRouteFn func(ctx context.Context, routeID int64) ([]models.Report, error)
	confirmFn     func(ctx context.Context, reportID int64) (models.Report, error)
	rejectFn      func(ctx context.Context, reportID int64) (models.Report, error)
	cancelFn      func(ctx context.Context, captain models.User, reportID int64) (models.Report, error)
}

func (m *mockReportService) CreateReport(ctx context.Context, captain models.User, req models.ReportCreateRequest) (models.Report, error) {
	return m.createFn(ctx, captain, req)
}

func (m *mockReportService) GetReport(ctx context.Context, reportID int64) (models.Report, error) {
	return m.getFn(ctx, reportID)
}

func (m *mockReportService) ListReports(ctx context.Context, principal models.User, offset, limit int64) ([]models.Report, error) {
	return m.listFn(ctx, principal, offset, limit)
}

func (m *mockReportService) ListReportsByRoute(ctx context.Context, routeID int64) ([]models.Report, error) {
	return m.listByRouteFn(ctx, routeID)
}

func (m *mockReportService) ConfirmReport(ctx context.Context, reportID int64) (models.Report, error) {
	return m.confirmFn(ctx, reportID)
}

func (m *mockReportService) RejectReport(ctx context.Context, reportID int64) (models.Report, error) {
	return m.rejectFn(ctx, reportID)
}

func (m *mockReportService) CancelReport(ctx context.Context, captain models.User, reportID int64) (models.Report, error) {
	return m.cancelFn(ctx, captain, reportID)
}

// ─────────────────────────────────────────────
// Mock: service.FleetService
// ─────────────────────────────────────────────

type mockFleetService struct {
	createShipFn func(ctx context.Context, operatorID int64, ship models.Ship) (models.Ship, error)
	listShipsFn  func(ctx context.Context, operatorID int64) ([]models.Ship, error)
	updateShipFn func(ctx context.Context, operatorID int64, ship models.Ship) (models.Ship, error)
	deleteShipFn func(ctx context.Context, operatorID int64, shipID int64) error

	createSpotFn      func(ctx context.Context, spot models.FishingSpot) (models.FishingSpot, error)
	listSpotsFn       func(ctx context.Context) ([]models.FishingSpot, error)
	updateSpotTimesFn func(ctx context.Context, captainID int64, spotID int64, update models.SpotTimeUpdate) (models.FishingSpot, error)
	deleteSpotFn      func(ctx context.Context, spotID int64) error
}

func (m *mockFleetService) CreateShip(ctx context.Context, operatorID int64, ship models.Ship) (models.Ship, error) {
	return m.createShipFn(ctx, operatorID, ship)
}

func (m *mockFleetService) ListShips(ctx context.Context, operatorID int64) ([]models.Ship, error) {
	return m.listShipsFn(ctx, operatorID)
}

func (m *mockFleetService) UpdateShip(ctx context.Context, operatorID int64, ship models.Ship) (models.Ship, error) {
	return m.updateShipFn(ctx, operatorID, ship)
}

func (m *mockFleetService) DeleteShip(ctx context.Context, operatorID int64, shipID int64) error {
	return m.deleteShipFn(ctx, operatorID, shipID)
}

func (m *mockFleetService) CreateSpot(ctx context.Context, spot models.FishingSpot) (models.FishingSpot, error) {
	return m.createSpotFn(ctx, spot)
}

func (m *mockFleetService) ListSpots(ctx context.Context) ([]models.FishingSpot, error) {
	return m.listSpotsFn(ctx)
}

func (m *mockFleetService) UpdateSpotTimes(ctx context.Context, captainID int64, spotID int64, update models.SpotTimeUpdate) (models.FishingSpot, error) {
	return m.updateSpotTimesFn(ctx, captainID, spotID, update)
}

func (m *mockFleetService) DeleteSpot(ctx context.Context, spotID int64) error {
	return m.deleteSpotFn(ctx, spotID)
}

// ─────────────────────────────────────────────
// Mock: service.VoyageService
// ─────────────────────────────────────────────

type mockVoyageService struct {
	createRouteFn  func(ctx context.Context, operatorID int64, route models.Route) (models.Route, error)
	listOperatorFn func(ctx context.Context, operatorID int64) ([]models.Route, error)
	listCaptainFn  func(ctx context.Context, captainID int64) ([]models.Route, error)
	searchFn       func(ctx context.Context, filter models.RouteFilter) ([]models.Route, error)
	deleteRouteFn  func(ctx context.Context, operatorID int64, routeID int64) error
	attachFn       func(ctx context.Context, routeID int64, spotIDs ...int64) error
	logCatchFn     func(ctx context.Context, operatorID int64, record models.Catch) (models.Catch, error)
	statsFn        func(ctx context.Context, filter models.CatchStatsFilter) (models.CatchStatistics, error)
}

func (m *mockVoyageService) CreateRoute(ctx context.Context, operatorID int64, route models.Route) (models.Route, error) {
	return m.createRouteFn(ctx, operatorID, route)
}

func (m *mockVoyageService) ListRoutesForOperator(ctx context.Context, operatorID int64) ([]models.Route, error) {
	return m.listOperatorFn(ctx, operatorID)
}

func (m *mockVoyageService) ListRoutesForCaptain(ctx context.Context, captainID int64) ([]models.Route, error) {
	return m.listCaptainFn(ctx, captainID)
}

func (m *mockVoyageService) SearchRoutes(ctx context.Context, filter models.RouteFilter) ([]models.Route, error) {
	return m.searchFn(ctx, filter)
}

func (m *mockVoyageService) DeleteRoute(ctx context.Context, operatorID int64, routeID int64) error {
	return m.deleteRouteFn(ctx, operatorID, routeID)
}

func (m *mockVoyageService) AttachFishingSpots(ctx context.Context, routeID int64, spotIDs ...int64) error {
	return m.attachFn(ctx, routeID, spotIDs...)
}

func (m *mockVoyageService) LogCatch(ctx context.Context, operatorID int64, record models.Catch) (models.Catch, error) {
	return m.logCatchFn(ctx, operatorID, record)
}

func (m *mockVoyageService) CatchStatistics(ctx context.Context, filter models.CatchStatsFilter) (models.CatchStatistics, error) {
	return m.statsFn(ctx, filter)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v into a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// asPrincipal stores user in the request context the way the auth middleware
// does, so individual handlers can be exercised without the middleware chain.
func asPrincipal(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, user)
	return r.WithContext(ctx)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

var (
	testOperator = models.User{UserID: 4, Email: "operator@fleet.io", Role: models.RoleOperator, IsActive: true}
	testCaptain  = models.User{UserID: 9, Email: "captain@fleet.io", Role: models.RoleCaptain, IsActive: true}
)
