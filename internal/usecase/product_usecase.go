package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateProductInput defines the data required to create a new product.
type CreateProductInput struct {
	Name  string
	Price float64
}

// UpdateProductInput defines a partial update. Nil fields were absent from
// the payload and keep their stored values.
type UpdateProductInput struct {
	Name  *string
	Price *float64
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// ListProducts returns all products in unspecified order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns the product with the given id.
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)

	// CreateProduct persists a new product and returns it with its assigned id.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies the provided fields to an existing product.
	UpdateProduct(ctx context.Context, id uint, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes the product with the given id.
	DeleteProduct(ctx context.Context, id uint) error
}
