package services

import (
	"Stocked/internal/config"
	"errors"
	"fmt"

	"github.com/authorizerdev/authorizer-go"
)

// Session identifies the signed-in user as reported by the identity
// provider. Email may be empty.
type Session struct {
	UserID string
	Email  string
}

// SessionValidator is what the auth middleware depends on; AuthService is
// the Authorizer-backed implementation.
type SessionValidator interface {
	Validate(cookie string) (*Session, error)
}

type AuthService struct {
	client     *authorizer.AuthorizerClient
	logService LogService
}

func NewAuthService(configuration *config.Configuration, logService LogService) (*AuthService, error) {
	client, err := authorizer.NewAuthorizerClient(
		configuration.Auth.ClientID,
		configuration.Auth.URL,
		configuration.Auth.RedirectURL,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}
	return &AuthService{client: client, logService: logService}, nil
}

// Validate checks the session cookie against the identity provider and
// returns the user it identifies.
func (s *AuthService) Validate(cookie string) (*Session, error) {
	res, err := s.client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid {
		return nil, errors.New("session is not valid")
	}
	return &Session{UserID: res.User.ID, Email: res.User.Email}, nil
}
