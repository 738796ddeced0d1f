// Package model holds the GORM persistence models mirroring the relational schema.
package model

// UserModel mirrors the 'users' table. Name and Email carry unique indexes;
// violating either fails the insert and the surrounding transaction rolls back.
type UserModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(80);uniqueIndex;not null"`
	Address string `gorm:"type:varchar(255);not null"`
	Email   string `gorm:"type:varchar(120);uniqueIndex;not null"`

	Orders []*OrderModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
