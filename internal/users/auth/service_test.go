// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelane/hirelane/internal/platform/apperr"
	"github.com/hirelane/hirelane/internal/platform/sec"
	"github.com/hirelane/hirelane/internal/users/auth"
)

// # Test Doubles

// memoryUserRepository is an in-memory UserRepository for unit tests.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*auth.User)}
}

func (repository *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if user, ok := repository.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (repository *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	for _, user := range repository.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *memoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	for _, user := range repository.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	for _, existing := range repository.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return apperr.Conflict("User already exists")
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	repository.users[user.ID] = &copied
	return nil
}

func (repository *memoryUserRepository) delete(id string) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	delete(repository.users, id)
}

// memoryUserCache is an in-memory UserCache recording reads and writes.
type memoryUserCache struct {
	mu      sync.Mutex
	entries map[string]*auth.User
	gets    int
	sets    int
}

func newMemoryUserCache() *memoryUserCache {
	return &memoryUserCache{entries: make(map[string]*auth.User)}
}

func (cache *memoryUserCache) Get(_ context.Context, id string) (*auth.User, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.gets++
	if user, ok := cache.entries[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (cache *memoryUserCache) Set(_ context.Context, user *auth.User, _ time.Duration) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.sets++
	copied := *user
	cache.entries[user.ID] = &copied
	return nil
}

// # Harness

func newTestService(t *testing.T) (*auth.Service, *memoryUserRepository, *memoryUserCache) {
	t.Helper()

	tokenService, err := sec.NewTokenService(
		"unit-test-access-secret", "unit-test-refresh-secret",
		15*time.Minute, 168*time.Hour, "hirelane.io",
	)
	require.NoError(t, err)

	repository := newMemoryUserRepository()
	cache := newMemoryUserCache()
	return auth.NewService(repository, cache, tokenService), repository, cache
}

func signupTestUser(t *testing.T, service *auth.Service) *auth.User {
	t.Helper()
	user, err := service.Signup(context.Background(), auth.SignupInput{
		FullName: "Jordan Example",
		Username: "jordan",
		Email:    "jordan@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	return user
}

// # Signup

/*
TestService_Signup verifies account creation, normalization, and hashing.
*/
func TestService_Signup(t *testing.T) {
	service, _, _ := newTestService(t)

	user, err := service.Signup(context.Background(), auth.SignupInput{
		FullName: "  Jordan Example  ",
		Username: "  JORDAN  ",
		Email:    "  Jordan@Example.COM ",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	// Identity fields are trimmed and lowercased
	assert.Equal(t, "Jordan Example", user.FullName)
	assert.Equal(t, "jordan", user.Username)
	assert.Equal(t, "jordan@example.com", user.Email)
	assert.NotEmpty(t, user.ID)

	// Plain-text password is never stored
	assert.NotEqual(t, "s3cret-password", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cret-password", user.PasswordHash))
}

/*
TestService_Signup_Validation verifies the mandatory field and length rules.
*/
func TestService_Signup_Validation(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		name        string
		input       auth.SignupInput
		wantMessage string
	}{
		{
			"missing_full_name",
			auth.SignupInput{Username: "jordan", Email: "jordan@example.com", Password: "s3cret-password"},
			"All fields are required",
		},
		{
			"missing_email",
			auth.SignupInput{FullName: "Jordan", Username: "jordan", Password: "s3cret-password"},
			"All fields are required",
		},
		{
			"short_password",
			auth.SignupInput{FullName: "Jordan", Username: "jordan", Email: "jordan@example.com", Password: "abc"},
			"Password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Signup(context.Background(), tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.wantMessage, ae.Message)
		})
	}
}

/*
TestService_Signup_Conflicts verifies duplicate detection is case-insensitive.
*/
func TestService_Signup_Conflicts(t *testing.T) {
	service, _, _ := newTestService(t)
	signupTestUser(t, service)

	// Same email, different case
	_, err := service.Signup(context.Background(), auth.SignupInput{
		FullName: "Other Person",
		Username: "other",
		Email:    "JORDAN@example.com",
		Password: "another-password",
	})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Email already taken", ae.Message)

	// Same username, different case
	_, err = service.Signup(context.Background(), auth.SignupInput{
		FullName: "Other Person",
		Username: "Jordan",
		Email:    "other@example.com",
		Password: "another-password",
	})
	require.Error(t, err)
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Username already taken", ae.Message)
}

// # Login

/*
TestService_Login verifies credential checks and the issued token pair.
*/
func TestService_Login(t *testing.T) {
	service, _, _ := newTestService(t)
	user := signupTestUser(t, service)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "Jordan@Example.com", // Case-insensitive lookup
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.NotEqual(t, session.AccessToken, session.RefreshToken)
	assert.Equal(t, user.ID, session.User.ID)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), session.RefreshTokenExpiresAt, time.Minute)
}

/*
TestService_Login_InvalidCredentials verifies that unknown emails and wrong
passwords fail identically.
*/
func TestService_Login_InvalidCredentials(t *testing.T) {
	service, _, _ := newTestService(t)
	signupTestUser(t, service)

	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{"unknown_email", auth.LoginInput{Email: "nobody@example.com", Password: "s3cret-password"}},
		{"wrong_password", auth.LoginInput{Email: "jordan@example.com", Password: "wrong-password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "UNAUTHORIZED", ae.Code)
			assert.Equal(t, "Invalid credentials", ae.Message)
		})
	}
}

// # Refresh

/*
TestService_Refresh verifies a valid refresh token yields a working access token.
*/
func TestService_Refresh(t *testing.T) {
	service, _, _ := newTestService(t)
	user := signupTestUser(t, service)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "jordan@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	accessToken, err := service.Refresh(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)

	// The minted token must resolve to the same subject
	resolved, err := service.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

/*
TestService_Refresh_Rejections verifies all invalid refresh inputs share one
generic failure.
*/
func TestService_Refresh_Rejections(t *testing.T) {
	service, repository, _ := newTestService(t)
	user := signupTestUser(t, service)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "jordan@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	t.Run("garbage_token", func(t *testing.T) {
		_, err := service.Refresh(context.Background(), "not-a-token")
		requireUnauthorizedRefresh(t, err)
	})

	t.Run("access_token_as_refresh", func(t *testing.T) {
		// Signed with the access secret — must fail against the refresh secret.
		_, err := service.Refresh(context.Background(), session.AccessToken)
		requireUnauthorizedRefresh(t, err)
	})

	t.Run("deleted_account", func(t *testing.T) {
		repository.delete(user.ID)
		_, err := service.Refresh(context.Background(), session.RefreshToken)
		requireUnauthorizedRefresh(t, err)
	})
}

func requireUnauthorizedRefresh(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
	assert.Equal(t, "Invalid refresh token", ae.Message)
}

// # Identity Resolution

/*
TestService_CurrentUser verifies the read-through cache behavior on /me lookups.
*/
func TestService_CurrentUser(t *testing.T) {
	service, repository, cache := newTestService(t)
	user := signupTestUser(t, service)

	// First read: cache miss, database hit, cache populated
	first, err := service.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, first.ID)
	assert.Equal(t, 1, cache.sets)

	// Second read: served from cache even if the database row vanishes
	repository.delete(user.ID)
	second, err := service.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, second.ID)
	assert.Equal(t, 1, cache.sets)
}

/*
TestService_CurrentUser_NotFound verifies a missing account surfaces as 404.
*/
func TestService_CurrentUser_NotFound(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.CurrentUser(context.Background(), "missing-user-id")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}
