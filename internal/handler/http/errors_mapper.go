package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/service"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrRouteOwnership:          http.StatusForbidden,
	service.ErrReportOwnership:         http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrShipNotFound:       http.StatusNotFound,
	store.ErrSpotNotFound:       http.StatusNotFound,
	store.ErrRouteNotFound:      http.StatusNotFound,
	store.ErrReportNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status via statusFromError and writes a
// `{"message": "..."}` body. 401 responses additionally carry a
// `WWW-Authenticate: Bearer` header so clients know how to authenticate.
// Internal errors are logged with their cause but never expose it to the
// caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred during request handling")
		message = http.StatusText(http.StatusInternalServerError)
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
