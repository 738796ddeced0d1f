package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	t           *testing.T
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return productServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func (f productServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestProductService_ListProducts_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expectedProducts := []*entity.Product{
		{ID: 1, Name: "Espresso Beans", Price: 12.50},
		{ID: 2, Name: "Moka Pot", Price: 34.99},
	}

	fx.productRepo.EXPECT().FindAll(ctx).Return(expectedProducts, nil)

	products, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
}

func TestProductService_GetProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expectedProduct := &entity.Product{ID: 1, Name: "Espresso Beans", Price: 12.50}

	fx.productRepo.EXPECT().FindByID(ctx, uint(1)).Return(expectedProduct, nil)

	product, err := fx.service.GetProduct(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, uint(42)).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, 42)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:  "Espresso Beans",
		Price: 12.50,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(ctx context.Context, product *entity.Product) {
				product.ID = 3
			}).
			Return(nil)
	})

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint(3), product.ID)
	assert.Equal(t, input.Name, product.Name)
	assert.Equal(t, input.Price, product.Price)
}

func TestProductService_CreateProduct_Error(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:  "Espresso Beans",
		Price: 12.50,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			Return(domainerrors.NewDatabaseExecuteError(errors.New("db error"), "failed to create product"))
	})

	product, err := fx.service.CreateProduct(ctx, input)

	assert.Nil(t, product)
	assert.Error(t, err)
}

func TestProductService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	newPrice := 14.25
	input := &usecase.UpdateProductInput{
		Price: &newPrice,
	}

	existingProduct := &entity.Product{ID: 1, Name: "Espresso Beans", Price: 12.50}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, uint(1)).Return(existingProduct, nil)
		mockProductRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	})

	product, err := fx.service.UpdateProduct(ctx, 1, input)

	require.NoError(t, err)
	assert.Equal(t, "Espresso Beans", product.Name)
	assert.Equal(t, newPrice, product.Price)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	newName := "Moka Pot"
	input := &usecase.UpdateProductInput{
		Name: &newName,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, uint(42)).Return(nil, repository.ErrProductNotFound)
	})

	product, err := fx.service.UpdateProduct(ctx, 42, input)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProductID))
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existingProduct := &entity.Product{ID: 1, Name: "Espresso Beans", Price: 12.50}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, uint(1)).Return(existingProduct, nil)
		mockProductRepo.EXPECT().Delete(ctx, existingProduct).Return(nil)
	})

	err := fx.service.DeleteProduct(ctx, 1)

	require.NoError(t, err)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(mockProductRepo)
		mockProductRepo.EXPECT().FindByID(ctx, uint(42)).Return(nil, repository.ErrProductNotFound)
	})

	err := fx.service.DeleteProduct(ctx, 42)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
