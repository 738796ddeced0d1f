package model

import "time"

// OrderModel mirrors the 'orders' table. OrderDate is assigned by the store;
// the many2many tag materializes the 'order_product' association table with a
// composite (order_id, product_id) primary key, so a product cannot appear
// twice in the same order at the storage level.
type OrderModel struct {
	ID        uint      `gorm:"primaryKey"`
	OrderDate time.Time `gorm:"type:timestamptz;not null;default:now()"`
	UserID    uint      `gorm:"not null"`

	Products []*ProductModel `gorm:"many2many:order_product;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
