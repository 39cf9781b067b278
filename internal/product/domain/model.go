package domain

import "time"

// DateLayout is the wire and storage format for product dates.
const DateLayout = "2006-01-02"

type Product struct {
	ID                int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string    `json:"name" gorm:"type:text;not null"`
	Category          string    `json:"category" gorm:"type:text;not null;default:Uncategorized"`
	ManufacturingDate string    `json:"manufacturing_date" gorm:"column:manufacturing_date;type:text;not null"`
	ExpiryDate        string    `json:"expiry_date" gorm:"column:expiry_date;type:text;not null"`
	Quantity          int       `json:"quantity" gorm:"not null"`
	Price             float64   `json:"price" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }
