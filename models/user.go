// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User carries the credentials submitted to the login endpoint.
// Password is plain text and must never be logged or persisted.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Credentials is the persisted mapping of username to bcrypt password hash.
// It is managed out of band and is read-only to the server.
type Credentials map[string]string

// PasswordHash returns the stored hash for username and whether the user
// exists.
func (c Credentials) PasswordHash(username string) (string, bool) {
	hash, ok := c[username]
	return hash, ok
}
