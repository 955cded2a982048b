// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package auth

import "time"

// # Authentication Constraints

const (
	// UserCacheTTL is how long a public user record may be served from the
	// cache before the primary database is consulted again. Accounts are
	// immutable after signup, so a short TTL only bounds staleness of the
	// "user still exists" check on /me.
	UserCacheTTL = 5 * time.Minute
)
