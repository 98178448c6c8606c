// Package auth provides the credential checkers behind the login form.
//
// The front-end authenticates a single configured operator account. The
// account is injected from configuration, never hardcoded, and may store its
// password either plain (recoverable through the forgot-password page) or as
// a bcrypt hash (not recoverable).
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kevinmliu/vestibule/pkg/vestibule/config"
	"github.com/kevinmliu/vestibule/pkg/vestibule/nav"
)

// Static checks credentials against a plain username/password pair.
// The stored password is recoverable through the forgot-password page.
type Static struct {
	username string
	password string
}

// NewStatic creates a checker for a plain credential pair.
func NewStatic(username, password string) *Static {
	return &Static{username: username, password: password}
}

// Verify reports whether both fields match the stored pair. Comparison is
// constant-time so the response does not leak which field was wrong.
func (s *Static) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	return (userOK & passOK) == 1
}

// RecoverPassword returns the stored password when the username matches.
func (s *Static) RecoverPassword(username string) (string, bool) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return "", false
	}
	return s.password, true
}

// Hashed checks credentials against a bcrypt password hash.
type Hashed struct {
	username string
	hash     []byte
}

// NewHashed creates a checker for a username with a bcrypt-hashed password.
// The hash is validated eagerly so a malformed config fails at startup
// rather than on the first login attempt.
func NewHashed(username, hash string) (*Hashed, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("auth: invalid bcrypt hash: %w", err)
	}
	return &Hashed{username: username, hash: []byte(hash)}, nil
}

// Verify reports whether the username matches and the password matches the
// stored hash.
func (h *Hashed) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(h.hash, []byte(password)) == nil
	return userOK && passOK
}

// RecoverPassword always misses: a hash is one-way, so there is nothing to
// reveal. The forgot-password page reports the username as not found.
func (h *Hashed) RecoverPassword(username string) (string, bool) {
	return "", false
}

// FromConfig builds a checker from the configured credentials. A password
// hash takes precedence over a plain password when both are set.
func FromConfig(creds config.Credentials) (nav.CredentialChecker, error) {
	if creds.Username == "" {
		return nil, fmt.Errorf("auth: no username configured")
	}

	if creds.PasswordHash != "" {
		return NewHashed(creds.Username, creds.PasswordHash)
	}

	if creds.Password == "" {
		return nil, fmt.Errorf("auth: no password or password hash configured")
	}

	return NewStatic(creds.Username, creds.Password), nil
}
