package auth

import (
	"context"
	"errors"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	authport "github.com/caiofernandes-dev/banco-api/internal/domain/port/auth"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
	"github.com/caiofernandes-dev/banco-api/internal/domain/port/persistence"
)

// Service handles user registration and login
type Service struct {
	credentialRepo persistence.CredentialRepository
	hasher         authport.PasswordHasher
	tokens         authport.TokenIssuer
	logger         coreport.Logger
}

// NewService creates a new auth service
func NewService(
	credentialRepo persistence.CredentialRepository,
	hasher authport.PasswordHasher,
	tokens authport.TokenIssuer,
	logger coreport.Logger,
) *Service {
	return &Service{
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Register creates a credential for a new username, storing only the password hash
func (s *Service) Register(ctx context.Context, username, password string) (*entity.Credential, error) {
	_, err := s.credentialRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, errs.ErrUsernameTaken
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	credential := &entity.Credential{
		Username:       username,
		HashedPassword: hashed,
	}
	if err := s.credentialRepo.Create(ctx, credential); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  credential.ID,
		"username": username,
	})
	return credential, nil
}

// Login verifies a username/password pair and issues a bearer token. It fails
// with the same error whether the username is unknown or the password does not
// match, so callers cannot tell which.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	credential, err := s.credentialRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.hasher.Compare(credential.HashedPassword, password); err != nil {
		return "", errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(credential.Username)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return "", errs.ErrInternalServer
	}

	s.logger.Info("User logged in", map[string]any{
		"username": username,
	})
	return token, nil
}
