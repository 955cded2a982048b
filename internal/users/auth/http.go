// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hirelane/hirelane/internal/platform/apperr"
	"github.com/hirelane/hirelane/internal/platform/constants"
	"github.com/hirelane/hirelane/internal/platform/middleware"
	requestutil "github.com/hirelane/hirelane/internal/platform/request"
	"github.com/hirelane/hirelane/internal/platform/respond"
	"github.com/hirelane/hirelane/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the session lifecycle entry points. Everything else in
// the API learns the caller's identity through [requestutil.RequiredUserID].
type Handler struct {
	authService *Service

	// secureCookies toggles the Secure attribute on the refresh cookie.
	// Off in development so the cookie works over plain http://localhost.
	secureCookies bool
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{authService: service, secureCookies: secureCookies}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /signup  : Creates a new employer account (no auto-login).
//   - POST /login   : Authenticates and returns the access token + user.
//   - POST /refresh : Mints a new access token from the refresh cookie.
//   - POST /logout  : Clears the refresh cookie. Idempotent.
//   - GET  /me      : Returns the authenticated employer's account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.me)
	})

	return router
}

// # Request Payloads

type signupRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Signup handles the creation of a new employer account.

POST /api/auth/signup

Description: Validates input, checks for identity conflicts, and persists
a new employer profile. The caller is NOT logged in afterwards — an explicit
login is required. On top of the required-fields rule, the email must parse
as an RFC 5322 address, so some exotic strings are rejected here with 400
before they ever reach the store.

Request:
  - Body: signupRequest (FullName, Username, Email, Password)

Response:
  - 201: User: Created employer profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Username or Email already exists
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// Canonical messages for the two cases clients branch on.
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Username) == "" ||
		strings.TrimSpace(input.Email) == "" || input.Password == "" {
		respond.Error(writer, request, apperr.ValidationError("All fields are required"))
		return
	}
	if len(input.Password) < MinPasswordLength {
		respond.Error(writer, request, apperr.ValidationError(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)))
		return
	}

	validator := &validate.Validator{}
	validator.Email(FieldEmail, input.Email)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Signup(request.Context(), SignupInput{
		FullName: input.FullName,
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		FieldMessage: "Account created. Please log in.",
		FieldUser:    user,
	})
}

/*
Login authenticates an employer and establishes a session.

POST /api/auth/login

Description: Verifies credentials, generates the JWT access token, and injects
the HTTP-only refresh token cookie into the response.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: Session: Access token and User profile
  - 400: ErrInvalidJSON: Missing email or password
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		respond.Error(writer, request, apperr.ValidationError("Email and password are required"))
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setRefreshCookie(writer, session.RefreshToken, session.RefreshTokenExpiresAt)

	respond.OK(writer, map[string]any{
		FieldAccessToken: session.AccessToken,
		FieldUser:        session.User,
	})
}

/*
Refresh issues a new access token using a valid refresh token.

POST /api/auth/refresh

Description: Validates the refresh token cookie and issues a fresh access
token. The refresh token itself is NOT rotated — the cookie stays as-is.

Response:
  - 200: New access token credentials
  - 401: ErrUnauthorized: Missing or invalid refresh token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		respond.Error(writer, request, apperr.Unauthorized("No refresh token"))
		return
	}

	accessToken, err := handler.authService.Refresh(request.Context(), cookie.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldAccessToken: accessToken,
		FieldTokenType:   "Bearer",
		FieldExpiresIn:   int64(handler.authService.AccessTokenTTL() / time.Second),
	})
}

/*
Logout terminates the current session on this client.

POST /api/auth/logout

Description: Clears the refresh cookie unconditionally. There is no
server-side session state to revoke, so this always succeeds and is
idempotent.

Response:
  - 200: Logged out
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    "",
		Path:     constants.RefreshTokenCookiePath,
		MaxAge:   -1,
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.OK(writer, map[string]string{
		FieldMessage: "Logged out",
	})
}

/*
Me returns the authenticated employer's public account record.

GET /api/auth/me

Description: Resolves the access token's subject against the store. Because
access tokens are stateless, this is the first point where a deleted account
is noticed after issuance — bounded by the read-through cache: a just-deleted
account may still resolve for up to [UserCacheTTL] before the 404 appears.

Response:
  - 200: User: Public account record
  - 401: ErrUnauthorized: Missing or invalid access token
  - 404: ErrNotFound: Account no longer exists
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.CurrentUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldUser: user,
	})
}

// setRefreshCookie attaches the HTTP-only refresh token cookie to the response.
//
// SameSite=Strict keeps the cookie off cross-site requests entirely;
// Path=/ lets the client hit /api/auth/refresh from anywhere in the app.
func (handler *Handler) setRefreshCookie(writer http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    token,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt) / time.Second),
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
