package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// FindAll retrieves every product. No ordering is guaranteed.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product entity and fills in the store-generated ID.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product row. Association rows in order_product are
	// removed by the store's ON DELETE CASCADE actions.
	Delete(ctx context.Context, product *entity.Product) error
}
