package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/spendwise/spendwise/internal/pkg/models"
	"github.com/spendwise/spendwise/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserHandlerTest(t *testing.T) (*UserHandler, *mocks.MockUserUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockUserUC(ctrl)
	return NewUserHandler(mockUC), mockUC
}

func newEchoContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Created(t *testing.T) {
	h, mockUC := setupUserHandlerTest(t)

	mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&models.User{
		ID:       uuid.New(),
		Email:    "alice@example.com",
		Username: "Alice",
	}, nil)

	body := `{"username":"Alice","email":"alice@example.com","password":"correct horse"}`
	c, rec := newEchoContext(http.MethodPost, "/api/v1/auth/register", body)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegister_EmailConflict(t *testing.T) {
	h, mockUC := setupUserHandlerTest(t)

	mockUC.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrEmailExists)

	body := `{"username":"Alice","email":"alice@example.com","password":"correct horse"}`
	c, rec := newEchoContext(http.MethodPost, "/api/v1/auth/register", body)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	h, mockUC := setupUserHandlerTest(t)

	mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&models.AuthResponse{
		Token:     "token-value",
		ExpiresAt: 1700000000,
		User:      &models.User{ID: uuid.New()},
	}, nil)

	body := `{"email":"alice@example.com","password":"correct horse"}`
	c, rec := newEchoContext(http.MethodPost, "/api/v1/auth/login", body)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token-value")
}

func TestLogin_BadCredentials(t *testing.T) {
	h, mockUC := setupUserHandlerTest(t)

	mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	body := `{"email":"alice@example.com","password":"wrong"}`
	c, rec := newEchoContext(http.MethodPost, "/api/v1/auth/login", body)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfile_MissingUser(t *testing.T) {
	h, _ := setupUserHandlerTest(t)

	c, rec := newEchoContext(http.MethodGet, "/api/v1/profile", "")

	err := h.GetProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	h, mockUC := setupUserHandlerTest(t)

	userID := uuid.New()

	mockUC.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(&models.User{
		ID:       userID,
		Username: "Alicia",
		Currency: "IDR",
	}, nil)

	body := `{"username":"Alicia","currency":"IDR","language":"ID","dark_mode":true}`
	c, rec := newEchoContext(http.MethodPut, "/api/v1/profile", body)
	c.Set("user_id", userID)

	err := h.UpdateProfile(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IDR")
}
