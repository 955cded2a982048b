// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for employer accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given (lowercased) email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByUsername returns the account with the given (lowercased) username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a brand-new employer account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on unique violations, other persistence failures
	*/
	Create(context context.Context, user *User) error
}

// # Volatile Data Access

// UserCache defines the contract for the short-lived public user-record cache
// that fronts the primary database on hot identity reads (/me).
type UserCache interface {

	/*
		Get returns the cached user, or apperr.NotFound on a cache miss.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Cached entity
		  - error: apperr.NotFound or connectivity failures
	*/
	Get(context context.Context, id string) (*User, error)

	/*
		Set stores the user for the given duration.

		Parameters:
		  - context: context.Context
		  - user: *User
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Set(context context.Context, user *User, ttl time.Duration) error
}
