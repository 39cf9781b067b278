package repository

import (
	"context"

	"github.com/freshstock/freshstock/internal/alert/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Rows(ctx context.Context, db *gorm.DB) ([]domain.Row, error) {
	var rows []domain.Row
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, expiry_date, quantity FROM products`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
