package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/spendwise/spendwise/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.ProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *models.PasswordChangeRequest) error
}
