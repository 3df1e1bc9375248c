package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

func setupLedgerRepoTest(t *testing.T) (*LedgerRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	repo := &LedgerRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}
	return repo, mock
}

func TestGetCategory_NotFound(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	categoryID := uuid.New()

	mock.ExpectQuery("^\\s*SELECT (.+) FROM categories").
		WithArgs(categoryID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "created_at", "updated_at"}))

	_, err := repo.GetCategory(context.Background(), userID, categoryID)

	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategories(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "created_at", "updated_at"}).
		AddRow(uuid.New(), userID, "Crafts", now, now).
		AddRow(uuid.New(), userID, "Hobbies", now, now)
	mock.ExpectQuery("^\\s*SELECT (.+) FROM categories").
		WithArgs(userID).
		WillReturnRows(rows)

	categories, err := repo.ListCategories(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Crafts", categories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenameCategory_AtomicRepoint(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	category := &models.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Crafts",
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE categories").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE transactions").
		WithArgs("Crafts", userID, "Hobbies").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.RenameCategory(context.Background(), category, "Hobbies")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenameCategory_MissingRowRollsBack(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	category := &models.Category{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Crafts",
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE categories").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.RenameCategory(context.Background(), category, "Hobbies")

	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategory_ReassignsBeforeDelete(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	category := &models.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Hobbies",
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions").
		WithArgs("Others", userID, "Hobbies").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(category.ID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteCategory(context.Background(), category, "Others")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategory_MissingRowRollsBack(t *testing.T) {
	repo, mock := setupLedgerRepoTest(t)

	userID := uuid.New()
	category := &models.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Hobbies",
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM categories").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteCategory(context.Background(), category, "Others")

	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
