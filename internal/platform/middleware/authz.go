// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

// Package middleware provides the HTTP middleware chain for the Hirelane API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, AuthZ/AuthN, and CORS.
package middleware

import (
	"net/http"
	"strings"

	"github.com/hirelane/hirelane/internal/platform/apperr"
	"github.com/hirelane/hirelane/internal/platform/constants"
	"github.com/hirelane/hirelane/internal/platform/ctxutil"
	"github.com/hirelane/hirelane/internal/platform/respond"
)

// TokenVerifier defines the interface needed to verify access tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec.TokenService]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyAccessToken(tokenString string) (subject string, err error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, parse and verify the JWT via [TokenVerifier].
//  4. Inject the subject user ID into the request context for downstream use.
//
// Verification is a pure signature/expiry check — the user record is not
// re-validated here. Endpoints that need a live record (e.g. /me) look it up.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			subject, err := verifier.VerifyAccessToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Token expired or invalid"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithUserID(request.Context(), subject)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if a subject user ID exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetUserID(request.Context()) == "" {
			respond.Error(writer, request, apperr.Unauthorized("Not authenticated"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
