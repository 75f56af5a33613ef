package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers can
// match against them with [errors.Is] regardless of the transport in use.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
