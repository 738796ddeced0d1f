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

// productHandlerFixtures holds all test dependencies for product handler tests.
type productHandlerFixtures struct {
	uc     *mockUsecase.MockProductUsecase
	server *echo.Echo
}

func createTestProductHandler(t *testing.T) productHandlerFixtures {
	uc := mockUsecase.NewMockProductUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewProductHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/products", h.ListProducts)
	e.GET("/products/:id", h.GetProduct)
	e.POST("/products", h.CreateProduct)
	e.PUT("/products/:id", h.UpdateProduct)
	e.DELETE("/products/:id", h.DeleteProduct)

	return productHandlerFixtures{
		uc:     uc,
		server: e,
	}
}

func (f productHandlerFixtures) do(method, target, body string) *httptest.ResponseRecorder {
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

func TestProductHandler_ListProducts(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.uc.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{
		{ID: 1, Name: "Espresso Beans", Price: 12.50},
		{ID: 2, Name: "Moka Pot", Price: 34.99},
	}, nil)

	rec := fx.do(http.MethodGet, "/products", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"name":"Espresso Beans","price":12.50},{"id":2,"name":"Moka Pot","price":34.99}]`,
		rec.Body.String())
}

func TestProductHandler_GetProduct(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.uc.EXPECT().GetProduct(mock.Anything, uint(1)).Return(&entity.Product{
		ID:    1,
		Name:  "Espresso Beans",
		Price: 12.50,
	}, nil)

	rec := fx.do(http.MethodGet, "/products/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Espresso Beans","price":12.50}`, rec.Body.String())
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.uc.EXPECT().GetProduct(mock.Anything, uint(42)).Return(nil, domainerrors.ErrProductNotFound)

	rec := fx.do(http.MethodGet, "/products/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
}

func TestProductHandler_CreateProduct(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.uc.EXPECT().
		CreateProduct(mock.Anything, &usecase.CreateProductInput{
			Name:  "Espresso Beans",
			Price: 12.50,
		}).
		Return(&entity.Product{ID: 1, Name: "Espresso Beans", Price: 12.50}, nil)

	rec := fx.do(http.MethodPost, "/products", `{"name":"Espresso Beans","price":12.50}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Espresso Beans","price":12.50}`, rec.Body.String())
}

func TestProductHandler_CreateProduct_MinimumPrice(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.uc.EXPECT().
		CreateProduct(mock.Anything, &usecase.CreateProductInput{
			Name:  "Sticker",
			Price: 0.01,
		}).
		Return(&entity.Product{ID: 2, Name: "Sticker", Price: 0.01}, nil)

	rec := fx.do(http.MethodPost, "/products", `{"name":"Sticker","price":0.01}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":2,"name":"Sticker","price":0.01}`, rec.Body.String())
}

func TestProductHandler_CreateProduct_ZeroPrice(t *testing.T) {
	fx := createTestProductHandler(t)

	rec := fx.do(http.MethodPost, "/products", `{"name":"Sticker","price":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"price":["Must be greater than or equal to 0.01."]}`, rec.Body.String())
}

func TestProductHandler_CreateProduct_MissingFields(t *testing.T) {
	fx := createTestProductHandler(t)

	rec := fx.do(http.MethodPost, "/products", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"name":["Missing data for required field."],"price":["Missing data for required field."]}`,
		rec.Body.String())
}

func TestProductHandler_CreateProduct_Duplicate(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.uc.EXPECT().
		CreateProduct(mock.Anything, mock.AnythingOfType("*usecase.CreateProductInput")).
		Return(nil, errors.WithStack(domainerrors.ErrProductAlreadyExists))

	rec := fx.do(http.MethodPost, "/products", `{"name":"Espresso Beans","price":12.50}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Product with this name already exists"}`, rec.Body.String())
}

func TestProductHandler_UpdateProduct_PartialPayload(t *testing.T) {
	fx := createTestProductHandler(t)

	newPrice := 14.25
	fx.uc.EXPECT().
		UpdateProduct(mock.Anything, uint(1), &usecase.UpdateProductInput{Price: &newPrice}).
		Return(&entity.Product{ID: 1, Name: "Espresso Beans", Price: newPrice}, nil)

	rec := fx.do(http.MethodPut, "/products/1", `{"price":14.25}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Espresso Beans","price":14.25}`, rec.Body.String())
}

func TestProductHandler_UpdateProduct_UnknownID(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.uc.EXPECT().
		UpdateProduct(mock.Anything, uint(42), mock.AnythingOfType("*usecase.UpdateProductInput")).
		Return(nil, domainerrors.ErrInvalidProductID)

	rec := fx.do(http.MethodPut, "/products/42", `{"price":14.25}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid product id"}`, rec.Body.String())
}

func TestProductHandler_UpdateProduct_ZeroPrice(t *testing.T) {
	fx := createTestProductHandler(t)

	rec := fx.do(http.MethodPut, "/products/1", `{"price":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"price":["Must be greater than or equal to 0.01."]}`, rec.Body.String())
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.uc.EXPECT().DeleteProduct(mock.Anything, uint(1)).Return(nil)

	rec := fx.do(http.MethodDelete, "/products/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Successfully deleted product 1"}`, rec.Body.String())
}

func TestProductHandler_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductHandler(t)

	fx.uc.EXPECT().DeleteProduct(mock.Anything, uint(42)).Return(domainerrors.ErrProductNotFound)

	rec := fx.do(http.MethodDelete, "/products/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
}
