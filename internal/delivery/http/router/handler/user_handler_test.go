package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// userHandlerFixtures holds all test dependencies for user handler tests.
type userHandlerFixtures struct {
	uc     *mockUsecase.MockUserUsecase
	server *echo.Echo
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	uc := mockUsecase.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewUserHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/users", h.ListUsers)
	e.GET("/users/:id", h.GetUser)
	e.POST("/users", h.CreateUser)
	e.PUT("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)

	return userHandlerFixtures{
		uc:     uc,
		server: e,
	}
}

func (f userHandlerFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_ListUsers(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.uc.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ID: 1, Name: "Peter", Address: "Park Lane 38", Email: "peter@example.com"},
	}, nil)

	rec := fx.do(http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"name":"Peter","address":"Park Lane 38","email":"peter@example.com"}]`,
		rec.Body.String())
}

func TestUserHandler_ListUsers_Empty(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.uc.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{}, nil)

	rec := fx.do(http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUserHandler_GetUser(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.uc.EXPECT().GetUser(mock.Anything, uint(1)).Return(&entity.User{
		ID:      1,
		Name:    "Peter",
		Address: "Park Lane 38",
		Email:   "peter@example.com",
	}, nil)

	rec := fx.do(http.MethodGet, "/users/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"name":"Peter","address":"Park Lane 38","email":"peter@example.com"}`,
		rec.Body.String())
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.uc.EXPECT().GetUser(mock.Anything, uint(42)).Return(nil, domainerrors.ErrUserNotFound)

	rec := fx.do(http.MethodGet, "/users/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestUserHandler_GetUser_NonNumericID(t *testing.T) {
	fx := createTestUserHandler(t)

	rec := fx.do(http.MethodGet, "/users/abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestUserHandler_CreateUser(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.uc.EXPECT().
		CreateUser(mock.Anything, &usecase.CreateUserInput{
			Name:    "Peter",
			Address: "Park Lane 38",
			Email:   "peter@example.com",
		}).
		Return(&entity.User{
			ID:      1,
			Name:    "Peter",
			Address: "Park Lane 38",
			Email:   "peter@example.com",
		}, nil)

	rec := fx.do(http.MethodPost, "/users",
		`{"name":"Peter","address":"Park Lane 38","email":"peter@example.com"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"name":"Peter","address":"Park Lane 38","email":"peter@example.com"}`,
		rec.Body.String())
}

func TestUserHandler_CreateUser_MissingName(t *testing.T) {
	fx := createTestUserHandler(t)

	rec := fx.do(http.MethodPost, "/users",
		`{"address":"Park Lane 38","email":"peter@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"name":["Missing data for required field."]}`, rec.Body.String())
}

func TestUserHandler_CreateUser_InvalidEmail(t *testing.T) {
	fx := createTestUserHandler(t)

	rec := fx.do(http.MethodPost, "/users",
		`{"name":"Peter","address":"Park Lane 38","email":"peter.example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"email":["Not a valid email address."]}`, rec.Body.String())
}

func TestUserHandler_CreateUser_MalformedJSON(t *testing.T) {
	fx := createTestUserHandler(t)

	rec := fx.do(http.MethodPost, "/users", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid request payload"}`, rec.Body.String())
}

func TestUserHandler_CreateUser_Duplicate(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.uc.EXPECT().
		CreateUser(mock.Anything, mock.AnythingOfType("*usecase.CreateUserInput")).
		Return(nil, errors.WithStack(domainerrors.ErrUserAlreadyExists))

	rec := fx.do(http.MethodPost, "/users",
		`{"name":"Peter","address":"Park Lane 38","email":"peter@example.com"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"User with this name or email already exists"}`, rec.Body.String())
}

func TestUserHandler_UpdateUser_PartialPayload(t *testing.T) {
	fx := createTestUserHandler(t)

	newEmail := "peter.g@example.com"
	fx.uc.EXPECT().
		UpdateUser(mock.Anything, uint(1), &usecase.UpdateUserInput{Email: &newEmail}).
		Return(&entity.User{
			ID:      1,
			Name:    "Peter",
			Address: "Park Lane 38",
			Email:   newEmail,
		}, nil)

	rec := fx.do(http.MethodPut, "/users/1", `{"email":"peter.g@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"name":"Peter","address":"Park Lane 38","email":"peter.g@example.com"}`,
		rec.Body.String())
}

func TestUserHandler_UpdateUser_UnknownID(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.uc.EXPECT().
		UpdateUser(mock.Anything, uint(42), mock.AnythingOfType("*usecase.UpdateUserInput")).
		Return(nil, domainerrors.ErrInvalidUserID)

	rec := fx.do(http.MethodPut, "/users/42", `{"name":"Amanda"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid user id"}`, rec.Body.String())
}

func TestUserHandler_UpdateUser_NonNumericID(t *testing.T) {
	fx := createTestUserHandler(t)

	rec := fx.do(http.MethodPut, "/users/abc", `{"name":"Amanda"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid user id"}`, rec.Body.String())
}

func TestUserHandler_UpdateUser_InvalidEmail(t *testing.T) {
	fx := createTestUserHandler(t)

	rec := fx.do(http.MethodPut, "/users/1", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"email":["Not a valid email address."]}`, rec.Body.String())
}

func TestUserHandler_DeleteUser(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.uc.EXPECT().DeleteUser(mock.Anything, uint(1)).Return(nil)

	rec := fx.do(http.MethodDelete, "/users/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Successfully deleted user 1"}`, rec.Body.String())
}

func TestUserHandler_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.uc.EXPECT().DeleteUser(mock.Anything, uint(42)).Return(domainerrors.ErrUserNotFound)

	rec := fx.do(http.MethodDelete, "/users/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}
