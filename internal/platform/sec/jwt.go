// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces (TokenIssuer, TokenVerifier).
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failure modes.
//
// # Why sentinels?
//
// Handlers and middleware map each mode onto the same 401 response, but logs
// and tests need to distinguish an expired token from a forged or garbled one.
var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but its expiry has elapsed.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenMalformed means the presented string is not a decodable JWT.
	ErrTokenMalformed = errors.New("sec: token malformed")

	// ErrTokenInvalid means the signature check failed — wrong secret,
	// wrong algorithm, or tampered payload.
	ErrTokenInvalid = errors.New("sec: token invalid")
)

// Claims is the payload embedded inside every Hirelane JWT.
//
// Tokens deliberately carry nothing beyond the registered claims: the
// subject is the user ID, and validity is determined purely by signature
// and expiry. No database lookup happens at verification time.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService mints and verifies HS256 JWTs for the dual-token session scheme.
//
// Access and refresh tokens are signed with distinct secrets so that a leaked
// access secret can never mint refresh tokens, and a token presented to the
// wrong verifier is always rejected.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

// NewTokenService creates a new TokenService.
//
// It fails when either secret is empty. Callers treat that failure as fatal
// at startup — the server must never bind its port without signing keys.
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, issuer string) (*TokenService, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("sec: access and refresh token secrets must both be set")
	}
	if accessSecret == refreshSecret {
		return nil, errors.New("sec: access and refresh token secrets must differ")
	}

	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        issuer,
	}, nil
}

// IssueAccessToken creates a short-lived access token for the given subject.
func (service *TokenService) IssueAccessToken(subject string) (string, error) {
	return service.issue(subject, service.accessSecret, service.accessTTL)
}

// IssueRefreshToken creates a long-lived refresh token for the given subject.
func (service *TokenService) IssueRefreshToken(subject string) (string, error) {
	return service.issue(subject, service.refreshSecret, service.refreshTTL)
}

// VerifyAccessToken validates an access token and returns its subject user ID.
func (service *TokenService) VerifyAccessToken(tokenString string) (string, error) {
	return service.verify(tokenString, service.accessSecret)
}

// VerifyRefreshToken validates a refresh token and returns its subject user ID.
func (service *TokenService) VerifyRefreshToken(tokenString string) (string, error) {
	return service.verify(tokenString, service.refreshSecret)
}

// AccessTTL returns the configured access token lifetime.
func (service *TokenService) AccessTTL() time.Duration { return service.accessTTL }

// RefreshTTL returns the configured refresh token lifetime.
func (service *TokenService) RefreshTTL() time.Duration { return service.refreshTTL }

// issue signs a token binding the subject to an expiry with the given secret.
func (service *TokenService) issue(subject string, secret []byte, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// verify checks the signature and validity of a JWT string against one secret.
//
// Pure function of the token and the secret — no I/O.
func (service *TokenService) verify(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrTokenMalformed
		default:
			return "", ErrTokenInvalid
		}
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
