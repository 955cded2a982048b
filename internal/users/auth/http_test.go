// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelane/hirelane/internal/platform/middleware"
	"github.com/hirelane/hirelane/internal/platform/sec"
	"github.com/hirelane/hirelane/internal/users/auth"
)

// # HTTP Harness

// newAuthServer wires the auth handler behind the real middleware chain, the
// way the API server mounts it.
func newAuthServer(t *testing.T) (*httptest.Server, *memoryUserRepository) {
	t.Helper()

	tokenService, err := sec.NewTokenService(
		"http-test-access-secret", "http-test-refresh-secret",
		15*time.Minute, 168*time.Hour, "hirelane.io",
	)
	require.NoError(t, err)

	repository := newMemoryUserRepository()
	service := auth.NewService(repository, newMemoryUserCache(), tokenService)
	handler := auth.NewHandler(service, false)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokenService))
	router.Mount("/api/auth", handler.Routes())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, repository
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	response, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return response
}

// decodeEnvelope unmarshals the success envelope's data object.
func decodeEnvelope(t *testing.T, response *http.Response) map[string]json.RawMessage {
	t.Helper()
	defer response.Body.Close()

	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
	return envelope.Data
}

func decodeErrorMessage(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()

	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
	return envelope.Message
}

func signupAndLogin(t *testing.T, server *httptest.Server) (accessToken string, refreshCookie *http.Cookie) {
	t.Helper()

	response := postJSON(t, server.URL+"/api/auth/signup", map[string]string{
		"full_name": "Jordan Example",
		"username":  "jordan",
		"email":     "jordan@example.com",
		"password":  "s3cret-password",
	})
	require.Equal(t, http.StatusCreated, response.StatusCode)
	response.Body.Close()

	response = postJSON(t, server.URL+"/api/auth/login", map[string]string{
		"email":    "jordan@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, response.StatusCode)

	for _, cookie := range response.Cookies() {
		if cookie.Name == "refreshToken" {
			refreshCookie = cookie
		}
	}
	require.NotNil(t, refreshCookie, "login must set the refresh cookie")

	data := decodeEnvelope(t, response)
	require.NoError(t, json.Unmarshal(data["access_token"], &accessToken))
	require.NotEmpty(t, accessToken)
	return accessToken, refreshCookie
}

// # Signup & Login

/*
TestAuthHTTP_Signup covers the signup endpoint's status codes and messages.
*/
func TestAuthHTTP_Signup(t *testing.T) {
	server, _ := newAuthServer(t)

	t.Run("created", func(t *testing.T) {
		response := postJSON(t, server.URL+"/api/auth/signup", map[string]string{
			"full_name": "New Employer",
			"username":  "employer",
			"email":     "employer@example.com",
			"password":  "s3cret-password",
		})
		require.Equal(t, http.StatusCreated, response.StatusCode)

		data := decodeEnvelope(t, response)
		assert.Contains(t, data, "user")
		assert.Contains(t, data, "message")
		// The password hash must never appear on the wire
		assert.NotContains(t, string(data["user"]), "password")
	})

	t.Run("missing_fields", func(t *testing.T) {
		response := postJSON(t, server.URL+"/api/auth/signup", map[string]string{
			"username": "incomplete",
		})
		require.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.Equal(t, "All fields are required", decodeErrorMessage(t, response))
	})

	t.Run("short_password", func(t *testing.T) {
		response := postJSON(t, server.URL+"/api/auth/signup", map[string]string{
			"full_name": "New Employer",
			"username":  "shorty",
			"email":     "shorty@example.com",
			"password":  "abc",
		})
		require.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.Equal(t, "Password must be at least 6 characters", decodeErrorMessage(t, response))
	})

	t.Run("duplicate_email", func(t *testing.T) {
		response := postJSON(t, server.URL+"/api/auth/signup", map[string]string{
			"full_name": "Imposter",
			"username":  "imposter",
			"email":     "employer@example.com",
			"password":  "s3cret-password",
		})
		require.Equal(t, http.StatusConflict, response.StatusCode)
		assert.Equal(t, "Email already taken", decodeErrorMessage(t, response))
	})
}

/*
TestAuthHTTP_Login covers credential verification and cookie issuance.
*/
func TestAuthHTTP_Login(t *testing.T) {
	server, _ := newAuthServer(t)

	t.Run("success_sets_cookie", func(t *testing.T) {
		_, refreshCookie := signupAndLogin(t, server)

		assert.True(t, refreshCookie.HttpOnly)
		assert.Equal(t, "/", refreshCookie.Path)
		assert.Equal(t, http.SameSiteStrictMode, refreshCookie.SameSite)
		assert.NotEmpty(t, refreshCookie.Value)
	})

	t.Run("missing_credentials", func(t *testing.T) {
		response := postJSON(t, server.URL+"/api/auth/login", map[string]string{
			"email": "jordan@example.com",
		})
		require.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.Equal(t, "Email and password are required", decodeErrorMessage(t, response))
	})

	t.Run("wrong_password", func(t *testing.T) {
		response := postJSON(t, server.URL+"/api/auth/login", map[string]string{
			"email":    "jordan@example.com",
			"password": "wrong-password",
		})
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
		assert.Equal(t, "Invalid credentials", decodeErrorMessage(t, response))
	})
}

// # Refresh & Logout

/*
TestAuthHTTP_Refresh covers minting a new access token from the cookie.
*/
func TestAuthHTTP_Refresh(t *testing.T) {
	server, _ := newAuthServer(t)
	_, refreshCookie := signupAndLogin(t, server)

	t.Run("with_cookie", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodPost, server.URL+"/api/auth/refresh", nil)
		require.NoError(t, err)
		request.AddCookie(refreshCookie)

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)

		data := decodeEnvelope(t, response)
		assert.Contains(t, data, "access_token")
		assert.JSONEq(t, `"Bearer"`, string(data["token_type"]))
		assert.JSONEq(t, `900`, string(data["expires_in"]))
	})

	t.Run("without_cookie", func(t *testing.T) {
		response, err := http.Post(server.URL+"/api/auth/refresh", "application/json", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
		response.Body.Close()
	})

	t.Run("garbage_cookie", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodPost, server.URL+"/api/auth/refresh", nil)
		require.NoError(t, err)
		request.AddCookie(&http.Cookie{Name: "refreshToken", Value: "garbage"})

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
		assert.Equal(t, "Invalid refresh token", decodeErrorMessage(t, response))
	})
}

/*
TestAuthHTTP_Logout verifies the refresh cookie is expired on logout.
*/
func TestAuthHTTP_Logout(t *testing.T) {
	server, _ := newAuthServer(t)

	response := postJSON(t, server.URL+"/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var cleared *http.Cookie
	for _, cookie := range response.Cookies() {
		if cookie.Name == "refreshToken" {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	data := decodeEnvelope(t, response)
	assert.JSONEq(t, `"Logged out"`, string(data["message"]))
}

// # Identity

/*
TestAuthHTTP_Me covers the protected identity endpoint through the middleware.
*/
func TestAuthHTTP_Me(t *testing.T) {
	server, _ := newAuthServer(t)
	accessToken, _ := signupAndLogin(t, server)

	t.Run("authenticated", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodGet, server.URL+"/api/auth/me", nil)
		require.NoError(t, err)
		request.Header.Set("Authorization", "Bearer "+accessToken)

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)

		data := decodeEnvelope(t, response)
		var user auth.User
		require.NoError(t, json.Unmarshal(data["user"], &user))
		assert.Equal(t, "jordan@example.com", user.Email)
	})

	t.Run("anonymous", func(t *testing.T) {
		response, err := http.Get(server.URL + "/api/auth/me")
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
		assert.Equal(t, "Not authenticated", decodeErrorMessage(t, response))
	})

	t.Run("invalid_token", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodGet, server.URL+"/api/auth/me", nil)
		require.NoError(t, err)
		request.Header.Set("Authorization", "Bearer not-a-real-token")

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
		assert.Equal(t, "Token expired or invalid", decodeErrorMessage(t, response))
	})

	t.Run("bad_authorization_format", func(t *testing.T) {
		request, err := http.NewRequest(http.MethodGet, server.URL+"/api/auth/me", nil)
		require.NoError(t, err)
		request.Header.Set("Authorization", "Token abc")

		response, err := http.DefaultClient.Do(request)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
		assert.Equal(t, "Invalid authorization format", decodeErrorMessage(t, response))
	})
}
