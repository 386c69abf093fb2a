package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
)

type mockCredentialRepository struct {
	mock.Mock
}

func (m *mockCredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *mockCredentialRepository) GetByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Credential), args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Compare(hashed, plain string) error {
	args := m.Called(hashed, plain)
	return args.Error(0)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Issue(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

func (m *mockTokenIssuer) Validate(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}
