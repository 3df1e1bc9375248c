package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/constants"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

// GetProfile returns the user's account and preferences
func (u *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile updates the user's display settings. Currency and language
// must be from the supported sets.
func (u *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.ProfileRequest) (*models.User, error) {
	username, err := validateUsername(req.Username)
	if err != nil {
		return nil, err
	}

	if !containsString(constants.SupportedCurrencies, req.Currency) {
		return nil, fmt.Errorf("%w: unsupported currency", apperrors.ErrValidation)
	}
	if !containsString(constants.SupportedLanguages, req.Language) {
		return nil, fmt.Errorf("%w: unsupported language", apperrors.ErrValidation)
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.Currency = req.Currency
	user.Language = req.Language
	user.DarkMode = req.DarkMode

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// ChangePassword verifies the current password and stores a new hash
func (u *UserUC) ChangePassword(ctx context.Context, userID uuid.UUID, req *models.PasswordChangeRequest) error {
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return u.userRepo.UpdatePassword(ctx, userID, string(hash))
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
