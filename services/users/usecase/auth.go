package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	jwtpkg "github.com/spendwise/spendwise/internal/pkg/jwt"
	"github.com/spendwise/spendwise/internal/pkg/logger"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

const (
	minUsernameLength = 2
	maxUsernameLength = 40
	minPasswordLength = 8
	maxPasswordLength = 128

	bcryptCost = 12
)

// Register creates a new account with default preferences
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	username, err := validateUsername(req.Username)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: enter a valid email address", apperrors.ErrValidation)
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Currency:     "USD",
		Language:     "EN",
		DarkMode:     false,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
	)

	return user, nil
}

// Login verifies credentials and issues a JWT
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func validateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return "", fmt.Errorf("%w: username must be between %d and %d characters",
			apperrors.ErrValidation, minUsernameLength, maxUsernameLength)
	}
	return username, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrValidation, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password is too long", apperrors.ErrValidation)
	}
	return nil
}
