// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirelane/hirelane/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies hashing and successful comparison.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
}

/*
TestHashPassword_Cost verifies the stored digests carry the configured work factor.
*/
func TestHashPassword_Cost(t *testing.T) {
	hash, err := sec.HashPassword("some-password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}

/*
TestHashPassword_UniqueSalts verifies two hashes of one password differ.
*/
func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := sec.HashPassword("same-password")
	require.NoError(t, err)

	second, err := sec.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestBurnPasswordCheck always reports false regardless of input.
*/
func TestBurnPasswordCheck(t *testing.T) {
	assert.False(t, sec.BurnPasswordCheck(""))
	assert.False(t, sec.BurnPasswordCheck("any-password"))
}
