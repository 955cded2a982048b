// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hirelane/hirelane/internal/platform/apperr"
	"github.com/hirelane/hirelane/internal/platform/constants"
)

// # User Cache

// RedisUserCache implements UserCache using Redis.
//
// Records are stored as JSON under a per-user key. PasswordHash carries the
// `json:"-"` tag, so the digest never reaches the cache.
type RedisUserCache struct {
	client *redis.Client
}

// NewUserCache creates a new Redis-backed UserCache.
func NewUserCache(client *redis.Client) *RedisUserCache {
	return &RedisUserCache{client: client}
}

/*
Get retrieves the cached public record for a user ID.

Description: Returns apperr.NotFound on a cache miss, which callers treat as
"fall back to the primary database", not as an absent account.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *User: Cached public record
  - error: apperr.NotFound or connectivity errors
*/
func (cache *RedisUserCache) Get(context context.Context, id string) (*User, error) {

	// Use constants for key prefix
	key := fmt.Sprintf("%s%s", constants.RedisPrefixUser, id)

	// Get the record from Redis
	payload, err := cache.client.Get(context, key).Bytes()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("redis_user_cache_get_failed: %w", err)
	}

	// Decode the cached JSON
	user := &User{}
	if err := json.Unmarshal(payload, user); err != nil {
		return nil, fmt.Errorf("redis_user_cache_decode_failed: %w", err)
	}

	return user, nil
}

/*
Set stores the public user record for the given duration.

Parameters:
  - context: context.Context
  - user: *User
  - ttl: time.Duration

Returns:
  - error: Encoding or storage failures
*/
func (cache *RedisUserCache) Set(context context.Context, user *User, ttl time.Duration) error {

	// Use constants for key prefix
	key := fmt.Sprintf("%s%s", constants.RedisPrefixUser, user.ID)

	// Encode the public record
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("redis_user_cache_encode_failed: %w", err)
	}

	// Set the record with TTL
	if err := cache.client.Set(context, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_user_cache_set_failed: %w", err)
	}

	// Return nil on success
	return nil
}
