package unit_test

import (
	"context"
	"testing"
	"time"

	"matrimony-be/internal/config"
	"matrimony-be/internal/domain"
	"matrimony-be/internal/service/auth"
	"matrimony-be/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := domain.CreateUserInput{
		Email:    "new@example.com",
		Password: "supersecret",
		FullName: "New User",
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		emailSvc := new(mocks.EmailService)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), emailSvc, testAuthConfig())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email && u.Role == string(domain.RoleClient) && u.IsActive && !u.IsEmailVerified
		})).Return(nil).Once()
		userRepo.On("SetEmailVerificationToken", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		emailSvc.On("SendEmailVerification", mock.Anything, input.Email, input.FullName, mock.Anything).Return(nil).Maybe()

		user, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEqual(t, input.Password, user.PasswordHash)
		userRepo.AssertExpectations(t)
	})

	t.Run("Email Taken", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil).Once()

		user, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, auth.ErrEmailExists)
		assert.Nil(t, user)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	password := "supersecret"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	verifiedUser := func() *domain.User {
		return &domain.User{
			ID:              uuid.New(),
			Email:           "user@example.com",
			PasswordHash:    string(hash),
			FullName:        "User",
			Role:            string(domain.RoleClient),
			IsActive:        true,
			IsEmailVerified: true,
		}
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, new(mocks.EmailService), testAuthConfig())

		userRepo.On("GetByEmail", ctx, "user@example.com").Return(verifiedUser(), nil).Once()
		sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		user, tokens, err := svc.Login(ctx, domain.LoginInput{Email: "user@example.com", Password: password})

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)

		// The issued access token round-trips through validation.
		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		userRepo.On("GetByEmail", ctx, "user@example.com").Return(verifiedUser(), nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "user@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: password})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Unverified Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		unverified := verifiedUser()
		unverified.IsEmailVerified = false
		userRepo.On("GetByEmail", ctx, "user@example.com").Return(unverified, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "user@example.com", Password: password})

		assert.ErrorIs(t, err, auth.ErrEmailNotVerified)
	})

	t.Run("Deactivated Account", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		inactive := verifiedUser()
		inactive.IsActive = false
		userRepo.On("GetByEmail", ctx, "user@example.com").Return(inactive, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "user@example.com", Password: password})

		assert.ErrorIs(t, err, auth.ErrAccountInactive)
	})
}

func TestAuthService_ValidateAccessToken_Invalid(t *testing.T) {
	svc := auth.NewService(new(mocks.UserRepository), new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

	claims, err := svc.ValidateAccessToken("not-a-jwt")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.Nil(t, claims)
}
