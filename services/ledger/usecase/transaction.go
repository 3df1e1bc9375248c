package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/constants"
	"github.com/spendwise/spendwise/internal/pkg/logger"
	"github.com/spendwise/spendwise/internal/pkg/models"
)

const (
	maxTitleLength = 100
	maxNotesLength = 250

	// CategoryFilterAll is the sentinel meaning "no category filter"
	CategoryFilterAll = "All"
)

// transaction date formats accepted on input, tried in order
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ListTransactions returns the user's transactions matching the filter,
// newest first. The category sentinel "All" and unknown type values are
// dropped before the filter reaches the store.
func (u *LedgerUC) ListTransactions(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) ([]models.Transaction, error) {
	normalized := &models.TransactionFilter{}
	if filter != nil {
		normalized.Search = strings.TrimSpace(filter.Search)
		normalized.DateFrom = filter.DateFrom
		normalized.DateTo = filter.DateTo

		if filter.Category != "" && filter.Category != CategoryFilterAll {
			normalized.Category = filter.Category
		}
		if filter.Type.IsValid() {
			normalized.Type = filter.Type
		}
	}

	transactions, err := u.ledgerRepo.ListTransactions(ctx, userID, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction owned by the user
func (u *LedgerUC) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	return u.ledgerRepo.GetTransaction(ctx, userID, transactionID)
}

// CreateTransaction validates the payload, resolves the category against the
// user's current category set, and stores the transaction.
func (u *LedgerUC) CreateTransaction(ctx context.Context, userID uuid.UUID, req *models.TransactionRequest) (*models.Transaction, error) {
	transaction, err := u.buildTransaction(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	if err := u.ledgerRepo.CreateTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	u.invalidateDashboard(ctx, userID)
	u.publishTransactionEvent(ctx, userID, transaction.ID, constants.ActionCreated)

	return transaction, nil
}

// UpdateTransaction validates the payload and overwrites an existing
// transaction owned by the user.
func (u *LedgerUC) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *models.TransactionRequest) (*models.Transaction, error) {
	existing, err := u.ledgerRepo.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	transaction, err := u.buildTransaction(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	transaction.ID = existing.ID
	transaction.CreatedAt = existing.CreatedAt

	if err := u.ledgerRepo.UpdateTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	u.invalidateDashboard(ctx, userID)
	u.publishTransactionEvent(ctx, userID, transaction.ID, constants.ActionUpdated)

	return transaction, nil
}

// DeleteTransaction removes a transaction owned by the user
func (u *LedgerUC) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	if err := u.ledgerRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return err
	}

	u.invalidateDashboard(ctx, userID)
	u.publishTransactionEvent(ctx, userID, transactionID, constants.ActionDeleted)

	return nil
}

// buildTransaction validates a request and assembles the transaction to
// store. Validation runs before any mutation is attempted.
func (u *LedgerUC) buildTransaction(ctx context.Context, userID uuid.UUID, req *models.TransactionRequest) (*models.Transaction, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("%w: title is too long", apperrors.ErrValidation)
	}

	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be more than 0", apperrors.ErrValidation)
	}

	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: type must be INCOME or EXPENSE", apperrors.ErrValidation)
	}

	date, err := parseTransactionDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date is invalid", apperrors.ErrValidation)
	}

	notes := strings.TrimSpace(req.Notes)
	if len(notes) > maxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", apperrors.ErrValidation)
	}
	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	// Categories can change between reads, so the reference is resolved at
	// write time against the current set.
	category, err := u.resolveCategoryName(ctx, userID, req.Category)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		UserID:   userID,
		Title:    title,
		Amount:   req.Amount,
		Category: category,
		Type:     req.Type,
		Date:     date,
		Notes:    notesPtr,
	}, nil
}

func parseTransactionDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	for _, format := range dateFormats {
		if date, err := time.Parse(format, value); err == nil {
			return date.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %s", value)
}

// publishTransactionEvent emits a change notification. Publishing is
// best-effort and never fails the request.
func (u *LedgerUC) publishTransactionEvent(ctx context.Context, userID, transactionID uuid.UUID, action string) {
	event := &models.LedgerEvent{
		UserID:     userID,
		Entity:     "transaction",
		Action:     action,
		EntityID:   transactionID,
		OccurredAt: time.Now().UTC(),
	}

	if err := u.ledgerGW.PublishTransactionEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish transaction event",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
			logger.String("action", action),
		)
	}
}
