// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, role authorization, logging, tracing
// and compression concerns are all handled at this layer before requests
// are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/service"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], resolves the subject to a
// full account record and — on success — stores the authenticated
// [models.User] in the request context under [utils.PrincipalCtxKey] before
// delegating to the next handler. Resolving the account on every request means
// a deleted user is rejected immediately even while their token is still
// formally valid.
//
// The middleware rejects requests with HTTP 401 Unauthorized (carrying a
// `WWW-Authenticate: Bearer` header) in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, tampered with or otherwise invalid
//     ([service.ErrTokenIsExpiredOrInvalid]).
//   - The subject no longer matches an account ([store.ErrNoUserWasFound]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		principal, err := h.services.AuthService.ResolveUser(ctx, token.Email)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Err(err).Str("email", token.Email).Msg("token subject no longer exists")
			default:
				log.Err(err).Msg("error occurred during resolving token subject")
			}
			writeError(w, r, store.ErrNoUserWasFound)
			return
		}

		// Store the full authenticated user in the context so that downstream
		// handlers and the role guard can read identity and role without
		// touching the database again.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
