package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestLedgerUC(t)

	userID := uuid.New()
	req := &models.TransactionRequest{
		Title:    "  Monthly groceries  ",
		Amount:   decimal.NewFromInt(75),
		Category: "food",
		Type:     models.TransactionTypeExpense,
		Date:     "2024-02-10",
		Notes:    "  weekly run  ",
	}

	mockRepo.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *models.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})
	mockRepo.EXPECT().InvalidateDashboard(gomock.Any(), userID).Return(nil)
	mockGW.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	transaction, err := uc.CreateTransaction(context.Background(), userID, req)

	require.NoError(t, err)
	assert.Equal(t, "Monthly groceries", transaction.Title)
	// the predefined spelling wins over the caller's case
	assert.Equal(t, "Food", transaction.Category)
	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), transaction.Date)
	require.NotNil(t, transaction.Notes)
	assert.Equal(t, "weekly run", *transaction.Notes)
}

func TestCreateTransaction_CustomCategoryCanonicalCase(t *testing.T) {
	uc, mockRepo, mockGW := newTestLedgerUC(t)

	userID := uuid.New()
	req := &models.TransactionRequest{
		Title:    "Strings",
		Amount:   decimal.NewFromInt(12),
		Category: "HOBBIES",
		Type:     models.TransactionTypeExpense,
		Date:     "2024-03-01",
	}

	mockRepo.EXPECT().ListCategories(gomock.Any(), userID).Return([]models.Category{
		{ID: uuid.New(), Name: "Hobbies"},
	}, nil)
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().InvalidateDashboard(gomock.Any(), userID).Return(nil)
	mockGW.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	transaction, err := uc.CreateTransaction(context.Background(), userID, req)

	require.NoError(t, err)
	assert.Equal(t, "Hobbies", transaction.Category)
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	req := &models.TransactionRequest{
		Title:    "Mystery",
		Amount:   decimal.NewFromInt(10),
		Category: "Gadgets",
		Type:     models.TransactionTypeExpense,
		Date:     "2024-03-01",
	}

	mockRepo.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)

	_, err := uc.CreateTransaction(context.Background(), userID, req)

	assert.ErrorIs(t, err, apperrors.ErrUnknownCategory)
}

func TestCreateTransaction_Validation(t *testing.T) {
	uc, _, _ := newTestLedgerUC(t)

	valid := models.TransactionRequest{
		Title:    "Lunch",
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
		Type:     models.TransactionTypeExpense,
		Date:     "2024-03-01",
	}

	cases := []struct {
		name   string
		mutate func(r *models.TransactionRequest)
	}{
		{"empty title", func(r *models.TransactionRequest) { r.Title = "   " }},
		{"title too long", func(r *models.TransactionRequest) { r.Title = strings.Repeat("x", 101) }},
		{"zero amount", func(r *models.TransactionRequest) { r.Amount = decimal.Zero }},
		{"negative amount", func(r *models.TransactionRequest) { r.Amount = decimal.NewFromInt(-5) }},
		{"bad type", func(r *models.TransactionRequest) { r.Type = "TRANSFER" }},
		{"bad date", func(r *models.TransactionRequest) { r.Date = "March 1st" }},
		{"empty date", func(r *models.TransactionRequest) { r.Date = "" }},
		{"notes too long", func(r *models.TransactionRequest) { r.Notes = strings.Repeat("n", 251) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)

			_, err := uc.CreateTransaction(context.Background(), uuid.New(), &req)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestListTransactions_FilterNormalization(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	filter := &models.TransactionFilter{
		Search:   "  coffee  ",
		Category: "All",
		Type:     "TRANSFER",
	}

	mockRepo.EXPECT().ListTransactions(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, normalized *models.TransactionFilter) ([]models.Transaction, error) {
			assert.Equal(t, "coffee", normalized.Search)
			assert.Empty(t, normalized.Category)
			assert.Empty(t, normalized.Type)
			return nil, nil
		})

	_, err := uc.ListTransactions(context.Background(), userID, filter)

	require.NoError(t, err)
}

func TestListTransactions_ValidFiltersPassThrough(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	filter := &models.TransactionFilter{
		Category: "Food",
		Type:     models.TransactionTypeIncome,
		DateFrom: &from,
	}

	mockRepo.EXPECT().ListTransactions(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, normalized *models.TransactionFilter) ([]models.Transaction, error) {
			assert.Equal(t, "Food", normalized.Category)
			assert.Equal(t, models.TransactionTypeIncome, normalized.Type)
			assert.Equal(t, &from, normalized.DateFrom)
			return nil, nil
		})

	_, err := uc.ListTransactions(context.Background(), userID, filter)

	require.NoError(t, err)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	txID := uuid.New()

	mockRepo.EXPECT().GetTransaction(gomock.Any(), userID, txID).Return(nil, apperrors.ErrTransactionNotFound)

	_, err := uc.UpdateTransaction(context.Background(), userID, txID, &models.TransactionRequest{})

	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestDeleteTransaction_InvalidatesCacheAndPublishes(t *testing.T) {
	uc, mockRepo, mockGW := newTestLedgerUC(t)

	userID := uuid.New()
	txID := uuid.New()

	mockRepo.EXPECT().DeleteTransaction(gomock.Any(), userID, txID).Return(nil)
	mockRepo.EXPECT().InvalidateDashboard(gomock.Any(), userID).Return(nil)
	mockGW.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.DeleteTransaction(context.Background(), userID, txID)

	assert.NoError(t, err)
}
