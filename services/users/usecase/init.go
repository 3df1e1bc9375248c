package usecase

import (
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/services/users"
)

// UserUC implements the user usecase
type UserUC struct {
	userRepo users.UserRepo
	cfg      *models.Config
}

// NewUserUC creates a new user usecase
func NewUserUC(userRepo users.UserRepo, cfg *models.Config) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		cfg:      cfg,
	}
}
