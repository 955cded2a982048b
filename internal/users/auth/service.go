// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

/*
Package auth implements the authentication core of the job board.

It handles employer signup, secure password hashing, the dual-token session
scheme (short-lived JWT access token + long-lived refresh token), and identity
resolution for every protected endpoint.

Architecture:

  - Service: Orchestrates business logic (Signup, Login, Refresh, CurrentUser).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (cache).
  - Security: Leverages bcrypt hashing and dual-secret HS256 JWTs.

Sessions are stateless: no token is persisted server-side, and a refresh token
stays valid until its embedded expiry elapses. There is no rotation or
revocation list — a known limitation, not an accident (see DESIGN.md).
*/
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hirelane/hirelane/internal/platform/apperr"
	"github.com/hirelane/hirelane/internal/platform/sec"
	"github.com/hirelane/hirelane/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for minting and checking session tokens.
//
// Access and refresh tokens are signed with distinct secrets; the provider
// owns both and never exposes them.
type TokenProvider interface {
	// IssueAccessToken creates a signed short-lived token for the subject user ID.
	IssueAccessToken(subject string) (string, error)

	// IssueRefreshToken creates a signed long-lived token for the subject user ID.
	IssueRefreshToken(subject string) (string, error)

	// VerifyRefreshToken validates a refresh token and returns its subject.
	VerifyRefreshToken(token string) (string, error)

	// AccessTTL reports the configured access token lifetime.
	AccessTTL() time.Duration

	// RefreshTTL reports the configured refresh token lifetime.
	RefreshTTL() time.Duration
}

// Service implements employer authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	userCache      UserCache
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
//
// userCache may be nil, in which case identity reads always hit the database.
func NewService(userRepo UserRepository, userCache UserCache, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		userCache:      userCache,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// SignupInput holds the data required to enroll a new employer.
type SignupInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

/*
Signup validates, hashes, and persists a brand new employer account.

The password is hashed here, as an explicit step of the operation — there is
no implicit storage-layer hook that could be bypassed or forgotten.

Signup never establishes a session: the caller must log in explicitly
afterwards.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *User: Created entity (public fields only; the hash never serializes)
  - error: ValidationError, Conflict (if identity exists), or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*User, error) {

	// Case-normalize identity fields so uniqueness is case-insensitive.
	fullName := strings.TrimSpace(input.FullName)
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Defense in depth: the handler validates too, but no caller may bypass
	// these rules.
	if fullName == "" || username == "" || email == "" || input.Password == "" {
		return nil, apperr.ValidationError("All fields are required")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, apperr.ValidationError(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}

	// Verify email uniqueness. Return a client-safe Conflict err.
	if _, err := service.userRepository.FindByEmail(context, email); err == nil {
		return nil, apperr.Conflict("Email already taken")
	}

	// Verify username uniqueness. Return a client-safe Conflict err.
	if _, err := service.userRepository.FindByUsername(context, username); err == nil {
		return nil, apperr.Conflict("Username already taken")
	}

	// Prevent storing plain-text passwords. Cost 12 balances security and
	// CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		FullName:     fullName,
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	// Persist the user to the database. A concurrent signup racing past the
	// lookups above still fails here on the unique constraints (Conflict).
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established employer session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

/*
Login validates employer credentials and issues the dual-token pair.

A miss on the email lookup burns a full-cost dummy hash comparison so that
"no such user" and "wrong password" take equivalent time, and both fail with
the same message to prevent account enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session credentials
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		// Equivalent-cost comparison against a dummy digest.
		sec.BurnPasswordCheck(input.Password)
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Constant-time comparison inside bcrypt.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Generate short-lived Access Token
	accessToken, err := service.tokenProvider.IssueAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_access_token_failed: %w", err)
	}

	// Generate long-lived Refresh Token
	refreshToken, err := service.tokenProvider.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: time.Now().Add(service.tokenProvider.RefreshTTL()),
		User:                  user,
	}, nil
}

// # Session Management

/*
Refresh mints a fresh access token from a valid refresh token.

The refresh token is NOT rotated: the same cookie remains valid until its
embedded expiry. Unlike per-request access-token checks, refresh re-validates
that the subject account still exists.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - string: New access token
  - err: Unauthorized when the token is missing, invalid, expired, or the
    account is gone
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (string, error) {

	subject, err := service.tokenProvider.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", apperr.Unauthorized("Invalid refresh token")
	}

	// The subject must still resolve to a live account. Same generic message
	// either way — a refresh caller learns nothing about account state.
	if _, err := service.userRepository.FindByID(context, subject); err != nil {
		return "", apperr.Unauthorized("Invalid refresh token")
	}

	accessToken, err := service.tokenProvider.IssueAccessToken(subject)
	if err != nil {
		return "", fmt.Errorf("auth_service_refresh_access_token_failed: %w", err)
	}

	return accessToken, nil
}

// AccessTokenTTL reports the configured access token lifetime, for callers
// that need to surface it (e.g. expires_in on the refresh response).
func (service *Service) AccessTokenTTL() time.Duration {
	return service.tokenProvider.AccessTTL()
}

// # Identity Resolution

/*
CurrentUser resolves a subject user ID into the public account record.

Reads go through the volatile cache first; misses fall back to the primary
database and repopulate the cache best-effort.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *User: Public account record
  - err: apperr.NotFound when the account no longer exists (possible because
    access tokens are stateless and not re-checked against the store until
    this call)
*/
func (service *Service) CurrentUser(context context.Context, userID string) (*User, error) {

	if service.userCache != nil {
		if cached, err := service.userCache.Get(context, userID); err == nil {
			return cached, nil
		}
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	// Cache population is best-effort: a cache outage must never fail reads.
	if service.userCache != nil {
		_ = service.userCache.Set(context, user, UserCacheTTL)
	}

	return user, nil
}
