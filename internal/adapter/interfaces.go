// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the fleet-tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples the console
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/fleet-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// fleet-tracker server. Implementations are responsible for serialisation,
// bearer-token management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. Registration does not
	// issue a token; call Login afterwards.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for a bearer token. On success the token is
	// stored via SetToken and the authenticated account is fetched from
	// /users/me.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Me fetches the account record of the currently authenticated user.
	Me(ctx context.Context) (models.User, error)

	// ListReports fetches reports visible to the caller. The server scopes
	// captains to their own reports.
	ListReports(ctx context.Context, offset, limit int64) ([]models.Report, error)

	// CreateReport files a new catch report. Captain accounts only.
	CreateReport(ctx context.Context, req models.ReportCreateRequest) (models.Report, error)

	// ApproveReport confirms a report. Operator accounts only.
	ApproveReport(ctx context.Context, reportID int64) (models.Report, error)

	// RejectReport rejects a report. Operator accounts only.
	RejectReport(ctx context.Context, reportID int64) (models.Report, error)

	// CancelReport cancels a report previously filed by the caller.
	CancelReport(ctx context.Context, reportID int64) (models.Report, error)
}
