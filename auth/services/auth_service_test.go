package services

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	serviceErrors "github.com/stablio/api/auth/errors"
	"github.com/stablio/api/auth/models"
	"github.com/stablio/api/auth/repository"
	platformconfig "github.com/stablio/api/internal/platform/config"
	"github.com/stablio/api/internal/testutil"
	"github.com/stablio/api/internal/types"
	"github.com/stablio/api/internal/utils"
)

const strongPassword = "correct-horse-battery-staple-42"

func testJWTConfig() platformconfig.JWTConfig {
	return platformconfig.JWTConfig{
		PublicKey:  testutil.TestPublicKey,
		PrivateKey: testutil.TestPrivateKey,
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and signs in", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "new@example.com" && len(u.PasswordHash) > 0
		})).Return(nil)
		repo.On("IsAdmin", ctx, mock.Anything).Return(false, nil)

		svc := NewService(repo, testJWTConfig())
		session, err := svc.Signup(ctx, models.SignupRequest{
			Email:       "New@Example.com",
			DisplayName: "New User",
			Password:    strongPassword,
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", session.User.Email)
		assert.False(t, session.User.IsAdmin)
		require.NotEmpty(t, session.AccessToken)

		claims, err := utils.ValidateToken([]byte(testutil.TestPublicKey), session.AccessToken)
		require.NoError(t, err)
		claim := claims["claim"].(map[string]interface{})
		assert.Equal(t, "new@example.com", claim["email"])
		assert.Equal(t, types.UserRole, claim["role"])
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testJWTConfig())

		_, err := svc.Signup(ctx, models.SignupRequest{
			Email:    "new@example.com",
			Password: "password",
		})
		require.ErrorIs(t, err, serviceErrors.ErrWeakPassword)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateUser", ctx, mock.Anything).Return(repository.ErrEmailTaken)

		svc := NewService(repo, testJWTConfig())
		_, err := svc.Signup(ctx, models.SignupRequest{
			Email:    "taken@example.com",
			Password: strongPassword,
		})
		require.ErrorIs(t, err, serviceErrors.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	storedUser := func(t *testing.T) *models.User {
		t.Helper()
		id, err := uuid.NewV4()
		require.NoError(t, err)
		hash, err := bcrypt.GenerateFromPassword([]byte(strongPassword), bcrypt.MinCost)
		require.NoError(t, err)
		return &models.User{ID: id, Email: "user@example.com", DisplayName: "User", PasswordHash: hash}
	}

	t.Run("valid credentials", func(t *testing.T) {
		user := storedUser(t)
		repo := new(MockRepository)
		repo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
		repo.On("IsAdmin", ctx, "user@example.com").Return(true, nil)

		svc := NewService(repo, testJWTConfig())
		session, err := svc.Login(ctx, models.LoginRequest{Email: "user@example.com", Password: strongPassword})
		require.NoError(t, err)
		assert.Equal(t, user.ID, session.User.ID)
		assert.True(t, session.User.IsAdmin)
		assert.NotEmpty(t, session.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		user := storedUser(t)
		repo := new(MockRepository)
		repo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)

		svc := NewService(repo, testJWTConfig())
		_, err := svc.Login(ctx, models.LoginRequest{Email: "user@example.com", Password: "wrong"})
		require.ErrorIs(t, err, serviceErrors.ErrInvalidCredentials)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)

		svc := NewService(repo, testJWTConfig())
		_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: strongPassword})
		require.ErrorIs(t, err, serviceErrors.ErrInvalidCredentials)
	})
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run("admin lookup failure degrades to non-admin", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("IsAdmin", ctx, "user@example.com").Return(false, assert.AnError)

		svc := NewService(repo, testJWTConfig())
		id, _ := uuid.NewV4()
		session := svc.Session(ctx, types.UserContext{UserID: id, Email: "user@example.com"})
		assert.False(t, session.User.IsAdmin)
	})
}
