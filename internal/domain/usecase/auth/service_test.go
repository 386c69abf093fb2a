package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caiofernandes-dev/banco-api/internal/domain/entity"
	errs "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/logger"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("should store only the password hash", func(t *testing.T) {
		credentials := new(mockCredentialRepository)
		hasher := new(mockPasswordHasher)

		credentials.On("GetByUsername", ctx, "maria").Return(nil, errs.ErrNotFound)
		hasher.On("Hash", "s3cret").Return("$2a$10$hash", nil)
		credentials.On("Create", ctx, mock.AnythingOfType("*entity.Credential")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Credential).ID = 1
			}).
			Return(nil)

		service := NewService(credentials, hasher, new(mockTokenIssuer), logger.NewNoopLogger())

		credential, err := service.Register(ctx, "maria", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), credential.ID)
		assert.Equal(t, "maria", credential.Username)
		assert.Equal(t, "$2a$10$hash", credential.HashedPassword)
		assert.NotContains(t, credential.HashedPassword, "s3cret")
		credentials.AssertExpectations(t)
	})

	t.Run("should reject a taken username", func(t *testing.T) {
		credentials := new(mockCredentialRepository)
		credentials.On("GetByUsername", ctx, "maria").
			Return(&entity.Credential{ID: 1, Username: "maria"}, nil)

		service := NewService(credentials, new(mockPasswordHasher), new(mockTokenIssuer), logger.NewNoopLogger())

		credential, err := service.Register(ctx, "maria", "s3cret")

		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
		assert.Nil(t, credential)
		credentials.AssertNotCalled(t, "Create")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	stored := &entity.Credential{ID: 1, Username: "maria", HashedPassword: "$2a$10$hash"}

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		credentials := new(mockCredentialRepository)
		hasher := new(mockPasswordHasher)
		tokens := new(mockTokenIssuer)

		credentials.On("GetByUsername", ctx, "maria").Return(stored, nil)
		hasher.On("Compare", "$2a$10$hash", "s3cret").Return(nil)
		tokens.On("Issue", "maria").Return("signed.jwt.token", nil)

		service := NewService(credentials, hasher, tokens, logger.NewNoopLogger())

		token, err := service.Login(ctx, "maria", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", token)
	})

	t.Run("unknown username and wrong password fail identically", func(t *testing.T) {
		// Unknown username
		credentials := new(mockCredentialRepository)
		credentials.On("GetByUsername", ctx, "ghost").Return(nil, errs.ErrNotFound)
		service := NewService(credentials, new(mockPasswordHasher), new(mockTokenIssuer), logger.NewNoopLogger())

		_, unknownErr := service.Login(ctx, "ghost", "whatever")

		// Wrong password
		credentials = new(mockCredentialRepository)
		hasher := new(mockPasswordHasher)
		credentials.On("GetByUsername", ctx, "maria").Return(stored, nil)
		hasher.On("Compare", "$2a$10$hash", "wrong").Return(errs.ErrInvalidCredentials)
		service = NewService(credentials, hasher, new(mockTokenIssuer), logger.NewNoopLogger())

		_, wrongErr := service.Login(ctx, "maria", "wrong")

		assert.ErrorIs(t, unknownErr, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, errs.ErrInvalidCredentials)
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		credentials := new(mockCredentialRepository)
		credentials.On("GetByUsername", ctx, "maria").Return(nil, errs.ErrDatabaseConnection)

		service := NewService(credentials, new(mockPasswordHasher), new(mockTokenIssuer), logger.NewNoopLogger())

		_, err := service.Login(ctx, "maria", "s3cret")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
