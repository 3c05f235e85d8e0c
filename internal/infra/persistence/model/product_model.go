package model

import "github.com/shopspring/decimal"

// ProductModel mirrors the 'products' table. Rows are seeded out of band and
// treated as read-only by the application.
type ProductModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:text"`
	Cost          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ImageFilename string          `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
