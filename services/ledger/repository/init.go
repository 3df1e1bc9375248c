package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/spendwise/spendwise/internal/pkg/database"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

// LedgerRepo is the PostgreSQL (+ Redis cache) backed ledger repository
type LedgerRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLedgerRepo creates a new ledger repository instance
func NewLedgerRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *LedgerRepo {
	return &LedgerRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
