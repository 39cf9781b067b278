package repository

import (
	"context"

	"github.com/freshstock/freshstock/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	// Create backfills the auto-increment id.
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products
		 SET name = ?, category = ?, manufacturing_date = ?, expiry_date = ?, quantity = ?, price = ?
		 WHERE id = ?`,
		product.Name,
		product.Category,
		product.ManufacturingDate,
		product.ExpiryDate,
		product.Quantity,
		product.Price,
		product.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM products WHERE id = ?`, id).Error
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, category, manufacturing_date, expiry_date, quantity, price, created_at
		 FROM products`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByCategory(ctx context.Context, db *gorm.DB, category string) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, category, manufacturing_date, expiry_date, quantity, price, created_at
		 FROM products WHERE category = ?`,
		category,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Categories(ctx context.Context, db *gorm.DB) ([]string, error) {
	var categories []string
	err := db.WithContext(ctx).Raw(
		`SELECT DISTINCT category FROM products`,
	).Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
