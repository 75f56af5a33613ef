package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/go-chi/chi/v5"
)

var errInvalidIDParam = errors.New("invalid `id` url parameter")

// idFromURL parses the `{id}` chi route parameter as a positive int64.
func idFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidIDParam
	}
	return id, nil
}

// principalFromRequest reads the authenticated user stored by the auth
// middleware. A missing principal means the route was mounted outside the
// authenticated group, which is a wiring bug rather than a caller error.
func principalFromRequest(r *http.Request) (models.User, error) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return models.User{}, ErrEmptyAuthorizationHeader
	}
	return principal, nil
}

// queryInt64 parses an optional integer query parameter, returning 0 when the
// parameter is absent or malformed.
func queryInt64(r *http.Request, name string) int64 {
	value, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// queryTime parses an optional RFC 3339 query parameter, returning nil when
// the parameter is absent or malformed.
func queryTime(r *http.Request, name string) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &parsed
}
