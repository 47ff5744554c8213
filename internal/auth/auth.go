// Package auth is the credential-check capability behind the session
// store. The policy is a local placeholder (no credential backend
// exists): any username of at least 3 characters with a password of at
// least 4 characters is accepted.
package auth

import (
	"context"
	"errors"

	"bookfinder/internal/entity"
	"bookfinder/internal/validate"
)

// ErrInvalidCredentials is the only failure mode; it is recoverable by
// re-prompting and never fatal.
var ErrInvalidCredentials = errors.New("invalid username or password")

type credentials struct {
	Username string `validate:"required,min=3"`
	Password string `validate:"required,min=4"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Login(ctx context.Context, username, password string) (entity.User, error) {
	if errs := validate.Struct(credentials{Username: username, Password: password}); errs != nil {
		return entity.User{}, ErrInvalidCredentials
	}
	return entity.User{
		Username:        username,
		IsAuthenticated: true,
	}, nil
}
