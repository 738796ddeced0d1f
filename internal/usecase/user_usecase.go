// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateUserInput defines the data required to create a new user. The
// delivery layer validates it before it reaches the service.
type CreateUserInput struct {
	Name    string
	Address string
	Email   string
}

// UpdateUserInput defines a partial update. Nil fields were absent from the
// payload and keep their stored values.
type UpdateUserInput struct {
	Name    *string
	Address *string
	Email   *string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// ListUsers returns all users in unspecified order.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, id uint) (*entity.User, error)

	// CreateUser persists a new user and returns it with its assigned id.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// UpdateUser applies the provided fields to an existing user.
	UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes the user with the given id.
	DeleteUser(ctx context.Context, id uint) error
}
