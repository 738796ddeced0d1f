package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped gorm duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "create user"), want: true},
		{name: "pg duplicate key text", err: errors.New(`duplicate key value violates unique constraint "idx_users_email"`), want: true},
		{name: "sqlstate code", err: errors.New("ERROR: something (SQLSTATE 23505)"), want: true},
		{name: "unrelated error", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.False(t, isForeignKeyConstraintViolation(nil))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`insert on table "orders" violates foreign key constraint (SQLSTATE 23503)`)))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.False(t, isCheckConstraintViolation(nil))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(errors.New(`new row violates check constraint "chk_products_price" (SQLSTATE 23514)`)))
	assert.False(t, isCheckConstraintViolation(errors.New("connection refused")))
}
