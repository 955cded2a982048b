// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor for stored credentials.
// 12 keeps a single comparison around 250ms on commodity hardware.
const passwordHashCost = 12

// dummyHash is a bcrypt digest of an unguessable throwaway value, compared
// against when a login targets a nonexistent account so that lookup misses
// and password mismatches take equivalent time (no user enumeration via timing).
const dummyHash = "$2a$12$5cARqkfIAQ2rperlWLtO7OXqq/JU0hr1WSqjyOPsZyyGMhk9C8Oda"

// HashPassword hashes a plain-text password using the bcrypt algorithm.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// BurnPasswordCheck performs a full-cost bcrypt comparison against a dummy
// digest. It always reports false.
func BurnPasswordCheck(plainTextPassword string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plainTextPassword))
	return false
}
