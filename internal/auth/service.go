package auth

import (
	"crypto/subtle"
	"errors"
)

// Service authenticates the single admin account configured by env.
type Service struct {
	username string
	password string
}

func NewService(username, password string) *Service {
	return &Service{username: username, password: password}
}

// Login checks the credentials and issues a token.
func (s *Service) Login(username, password string) (string, error) {
	if s.username == "" || s.password == "" {
		return "", errors.New("admin account not configured")
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", errors.New("invalid credentials")
	}

	return GenerateToken(username)
}
