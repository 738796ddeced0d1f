package model

// ProductModel mirrors the 'products' table. The schema declares no unique
// constraint on Name; the 0.01 price floor is enforced by the validation layer
// and backed by a CHECK constraint.
type ProductModel struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"type:varchar(120);not null"`
	Price float64 `gorm:"type:double precision;not null;check:price >= 0.01"`

	Orders []*OrderModel `gorm:"many2many:order_product;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
