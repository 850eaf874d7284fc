// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// signKeySize is the number of random bytes in a generated signing key.
const signKeySize = 32

// HashPassword returns the bcrypt hash of password at the default cost.
// It is used to seed the credentials file; the server itself never writes
// hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// A malformed hash is reported as a mismatch.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateSignKey returns a hex-encoded random key suitable for HMAC token
// signing.
func GenerateSignKey() (string, error) {
	key := make([]byte, signKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("error generating sign key: %w", err)
	}

	return hex.EncodeToString(key), nil
}
