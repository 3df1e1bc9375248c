package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/constants"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	custom := []models.Category{{ID: uuid.New(), Name: "Hobbies"}}

	mockRepo.EXPECT().ListCategories(gomock.Any(), userID).Return(custom, nil)

	list, err := uc.ListCategories(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, constants.PredefinedCategories, list.Predefined)
	assert.Equal(t, custom, list.Custom)
}

func TestCreateCategory_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestLedgerUC(t)

	userID := uuid.New()

	mockRepo.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)
	mockRepo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, category *models.Category) error {
			assert.Equal(t, "Hobbies", category.Name)
			assert.Equal(t, userID, category.UserID)
			category.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().PublishCategoryEvent(gomock.Any(), gomock.Any()).Return(nil)

	category, err := uc.CreateCategory(context.Background(), userID, &models.CategoryRequest{Name: "  Hobbies  "})

	require.NoError(t, err)
	assert.Equal(t, "Hobbies", category.Name)
}

func TestCreateCategory_ReservedName(t *testing.T) {
	uc, _, _ := newTestLedgerUC(t)

	_, err := uc.CreateCategory(context.Background(), uuid.New(), &models.CategoryRequest{Name: "food"})

	assert.ErrorIs(t, err, apperrors.ErrCategoryReserved)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()

	mockRepo.EXPECT().ListCategories(gomock.Any(), userID).Return([]models.Category{
		{ID: uuid.New(), Name: "Hobbies"},
	}, nil)

	_, err := uc.CreateCategory(context.Background(), userID, &models.CategoryRequest{Name: "hobbies"})

	assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
}

func TestCreateCategory_NameLength(t *testing.T) {
	uc, _, _ := newTestLedgerUC(t)

	_, err := uc.CreateCategory(context.Background(), uuid.New(), &models.CategoryRequest{Name: "X"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	long := make([]byte, 41)
	for i := range long {
		long[i] = 'a'
	}
	_, err = uc.CreateCategory(context.Background(), uuid.New(), &models.CategoryRequest{Name: string(long)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRenameCategory_RepointsTransactions(t *testing.T) {
	uc, mockRepo, mockGW := newTestLedgerUC(t)

	userID := uuid.New()
	categoryID := uuid.New()
	existing := &models.Category{ID: categoryID, UserID: userID, Name: "Hobbies"}

	mockRepo.EXPECT().GetCategory(gomock.Any(), userID, categoryID).Return(existing, nil)
	mockRepo.EXPECT().ListCategories(gomock.Any(), userID).Return([]models.Category{*existing}, nil)
	mockRepo.EXPECT().RenameCategory(gomock.Any(), gomock.Any(), "Hobbies").DoAndReturn(
		func(_ context.Context, category *models.Category, oldName string) error {
			assert.Equal(t, "Crafts", category.Name)
			assert.Equal(t, categoryID, category.ID)
			return nil
		})
	mockRepo.EXPECT().InvalidateDashboard(gomock.Any(), userID).Return(nil)
	mockGW.EXPECT().PublishCategoryEvent(gomock.Any(), gomock.Any()).Return(nil)

	category, err := uc.RenameCategory(context.Background(), userID, categoryID, &models.CategoryRequest{Name: "Crafts"})

	require.NoError(t, err)
	assert.Equal(t, "Crafts", category.Name)
}

func TestRenameCategory_KeepOwnNameDifferentCase(t *testing.T) {
	uc, mockRepo, mockGW := newTestLedgerUC(t)

	userID := uuid.New()
	categoryID := uuid.New()
	existing := &models.Category{ID: categoryID, UserID: userID, Name: "hobbies"}

	mockRepo.EXPECT().GetCategory(gomock.Any(), userID, categoryID).Return(existing, nil)
	mockRepo.EXPECT().ListCategories(gomock.Any(), userID).Return([]models.Category{*existing}, nil)
	mockRepo.EXPECT().RenameCategory(gomock.Any(), gomock.Any(), "hobbies").Return(nil)
	mockRepo.EXPECT().InvalidateDashboard(gomock.Any(), userID).Return(nil)
	mockGW.EXPECT().PublishCategoryEvent(gomock.Any(), gomock.Any()).Return(nil)

	category, err := uc.RenameCategory(context.Background(), userID, categoryID, &models.CategoryRequest{Name: "Hobbies"})

	require.NoError(t, err)
	assert.Equal(t, "Hobbies", category.Name)
}

func TestRenameCategory_NotFound(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	categoryID := uuid.New()

	mockRepo.EXPECT().GetCategory(gomock.Any(), userID, categoryID).Return(nil, apperrors.ErrCategoryNotFound)

	_, err := uc.RenameCategory(context.Background(), userID, categoryID, &models.CategoryRequest{Name: "Crafts"})

	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
}

func TestDeleteCategory_ReassignsToFallback(t *testing.T) {
	uc, mockRepo, mockGW := newTestLedgerUC(t)

	userID := uuid.New()
	categoryID := uuid.New()
	existing := &models.Category{ID: categoryID, UserID: userID, Name: "Hobbies"}

	mockRepo.EXPECT().GetCategory(gomock.Any(), userID, categoryID).Return(existing, nil)
	mockRepo.EXPECT().DeleteCategory(gomock.Any(), existing, constants.FallbackCategory).Return(nil)
	mockRepo.EXPECT().InvalidateDashboard(gomock.Any(), userID).Return(nil)
	mockGW.EXPECT().PublishCategoryEvent(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.DeleteCategory(context.Background(), userID, categoryID)

	assert.NoError(t, err)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	uc, mockRepo, _ := newTestLedgerUC(t)

	userID := uuid.New()
	categoryID := uuid.New()

	mockRepo.EXPECT().GetCategory(gomock.Any(), userID, categoryID).Return(nil, apperrors.ErrCategoryNotFound)

	err := uc.DeleteCategory(context.Background(), userID, categoryID)

	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
}
