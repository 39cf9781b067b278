package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	FindAll(ctx context.Context, db *gorm.DB) ([]Product, error)
	FindByCategory(ctx context.Context, db *gorm.DB, category string) ([]Product, error)
	Categories(ctx context.Context, db *gorm.DB) ([]string, error)
}
