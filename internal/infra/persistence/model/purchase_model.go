package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseModel mirrors the 'purchases' table: one header row per checkout.
type PurchaseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Street        string          `gorm:"type:varchar(255);not null"`
	City          string          `gorm:"type:varchar(100);not null"`
	Province      string          `gorm:"type:varchar(100);not null"`
	Country       string          `gorm:"type:varchar(100);not null"`
	PostalCode    string          `gorm:"type:varchar(20);not null"`
	CreditCard    string          `gorm:"type:varchar(32);not null"`
	CreditExpire  string          `gorm:"type:varchar(8);not null"`
	CreditCVV     string          `gorm:"type:varchar(8);not null"`
	InvoiceAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	InvoiceTax    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	InvoiceTotal  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	OrderedAt     time.Time       `gorm:"not null"`

	Items []PurchaseItemModel `gorm:"foreignKey:PurchaseID"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseItemModel mirrors the 'purchase_items' table: one row per distinct
// product in the cart at checkout time.
type PurchaseItemModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	PurchaseID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  int64     `gorm:"not null;index"`
	Quantity   int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseItemModel) TableName() string {
	return "purchase_items"
}
