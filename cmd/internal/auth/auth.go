// Package auth issues admin tokens. The booking routes never check them;
// keeping the mechanism behind Authenticator lets it be swapped without
// touching booking logic.
package auth

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Authenticator interface {
	Authenticate(username, password string) (string, error)
}

type Credentials struct {
	Username string
	Password string
}

func (c Credentials) matches(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(c.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
	return userOK && passOK
}

// StaticAuthenticator checks one fixed credential pair and hands out one
// fixed token. It is a placeholder, not something to base trust decisions on.
type StaticAuthenticator struct {
	creds Credentials
	token string
}

func NewStaticAuthenticator(creds Credentials, token string) *StaticAuthenticator {
	return &StaticAuthenticator{creds: creds, token: token}
}

func (s *StaticAuthenticator) Authenticate(username, password string) (string, error) {
	if !s.creds.matches(username, password) {
		return "", ErrInvalidCredentials
	}
	return s.token, nil
}
