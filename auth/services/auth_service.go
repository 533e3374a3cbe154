// Copyright (c) 2025 Stablio
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gopass "github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"

	serviceErrors "github.com/stablio/api/auth/errors"
	"github.com/stablio/api/auth/models"
	"github.com/stablio/api/auth/repository"
	"github.com/stablio/api/internal/pkg/log"
	platformconfig "github.com/stablio/api/internal/platform/config"
	"github.com/stablio/api/internal/types"
	"github.com/stablio/api/internal/utils"
)

// sessionLifetime bounds how long an issued access token is valid.
const sessionLifetime = 24 * time.Hour

// Service implements email+password authentication and the admin
// membership check.
type Service struct {
	repo      repository.AuthRepository
	jwtConfig platformconfig.JWTConfig
}

// NewService creates an auth service
func NewService(repo repository.AuthRepository, jwtConfig platformconfig.JWTConfig) *Service {
	return &Service{repo: repo, jwtConfig: jwtConfig}
}

// Signup registers a new account and signs it in.
func (s *Service) Signup(ctx context.Context, req models.SignupRequest) (*models.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", serviceErrors.ErrInvalidRequest)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", serviceErrors.ErrInvalidRequest)
	}

	passStrength := gopass.PasswordStrength(req.Password, []string{email, req.DisplayName})
	if passStrength.Score < 3 {
		return nil, serviceErrors.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, serviceErrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}

	return s.buildSession(ctx, user)
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.SessionResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, serviceErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return nil, serviceErrors.ErrInvalidCredentials
	}

	return s.buildSession(ctx, user)
}

// IsAdmin reports admins-table membership for the email.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.repo.IsAdmin(ctx, email)
}

// Session resolves the session view for an authenticated user context.
func (s *Service) Session(ctx context.Context, user types.UserContext) *models.SessionResponse {
	isAdmin, err := s.repo.IsAdmin(ctx, user.Email)
	if err != nil {
		// Degrade to non-admin; the moderation routes re-check anyway.
		log.WarnWithContext(ctx, "[Auth] admin lookup failed for %s: %v", user.Email, err)
		isAdmin = false
	}
	return &models.SessionResponse{
		User: models.SessionUser{
			ID:          user.UserID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			IsAdmin:     isAdmin,
		},
	}
}

func (s *Service) buildSession(ctx context.Context, user *models.User) (*models.SessionResponse, error) {
	isAdmin, err := s.repo.IsAdmin(ctx, user.Email)
	if err != nil {
		log.WarnWithContext(ctx, "[Auth] admin lookup failed for %s: %v", user.Email, err)
		isAdmin = false
	}

	now := time.Now()
	claims := utils.TokenClaims{
		Claim: map[string]interface{}{
			types.HeaderUID: user.ID.String(),
			"email":         user.Email,
			"displayName":   user.DisplayName,
			"role":          types.UserRole,
			"createdDate":   user.CreatedAt.Unix(),
		},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
		},
	}

	token, err := utils.GenerateJWTToken([]byte(s.jwtConfig.PrivateKey), claims)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &models.SessionResponse{
		User: models.SessionUser{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			IsAdmin:     isAdmin,
		},
		AccessToken: token,
	}, nil
}
