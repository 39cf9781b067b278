package domain

import (
	"context"

	"gorm.io/gorm"
)

// Row is the projection the alert engine reads per product.
type Row struct {
	ID         int64  `gorm:"column:id"`
	Name       string `gorm:"column:name"`
	ExpiryDate string `gorm:"column:expiry_date"`
	Quantity   int    `gorm:"column:quantity"`
}

// ExpiringProduct flags a product whose expiry date is within the threshold.
// DaysLeft is negative for already-expired products.
type ExpiringProduct struct {
	Name     string `json:"name"`
	DaysLeft int    `json:"days_left"`
}

// LowStockProduct flags a product at or below the stock threshold.
type LowStockProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Report holds both derived lists. A product may appear in both or neither;
// the lists keep store scan order.
type Report struct {
	ExpiringSoon []ExpiringProduct `json:"expiring_soon"`
	LowStock     []LowStockProduct `json:"low_stock"`
}

type Repository interface {
	Rows(ctx context.Context, db *gorm.DB) ([]Row, error)
}

type Service interface {
	Check(ctx context.Context) (*Report, error)
}

// InternalError wraps a failure during the classification pass.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "Error checking expiry: " + e.Err.Error() }

func (e *InternalError) Unwrap() error { return e.Err }
