package service

import (
	"context"
	"time"

	"github.com/freshstock/freshstock/internal/alert/domain"
	"github.com/freshstock/freshstock/internal/alertconfig"
	"github.com/freshstock/freshstock/internal/clock"
	productdomain "github.com/freshstock/freshstock/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Clock      clock.Clock
	Thresholds *alertconfig.Holder
	Repo       domain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	clock      clock.Clock
	thresholds *alertconfig.Holder
	repo       domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("alert.service"),
		clock:      p.Clock,
		thresholds: p.Thresholds,
		repo:       p.Repo,
	}
}

// Check reads every product and classifies it against the current thresholds.
// Pure read pass, recomputed fully on every call.
func (s *Service) Check(ctx context.Context) (*domain.Report, error) {
	rows, err := s.repo.Rows(ctx, s.db)
	if err != nil {
		s.log.Error("read alert rows", zap.Error(err))
		return nil, &domain.InternalError{Err: err}
	}

	cfg := s.thresholds.Get()
	today := truncateToDay(s.clock.Now())

	report := &domain.Report{
		ExpiringSoon: make([]domain.ExpiringProduct, 0),
		LowStock:     make([]domain.LowStockProduct, 0),
	}

	for _, row := range rows {
		expiry, err := time.Parse(productdomain.DateLayout, row.ExpiryDate)
		if err != nil {
			s.log.Error("parse expiry date", zap.Int64("id", row.ID), zap.String("expiry_date", row.ExpiryDate), zap.Error(err))
			return nil, &domain.InternalError{Err: err}
		}

		daysLeft := int(expiry.Sub(today).Hours() / 24)
		if daysLeft <= cfg.ExpiryDays {
			report.ExpiringSoon = append(report.ExpiringSoon, domain.ExpiringProduct{
				Name:     row.Name,
				DaysLeft: daysLeft,
			})
		}

		if row.Quantity <= cfg.LowStockUnits {
			report.LowStock = append(report.LowStock, domain.LowStockProduct{
				Name:     row.Name,
				Quantity: row.Quantity,
			})
		}
	}

	return report, nil
}

// truncateToDay discards the time of day so days-left is a calendar-day
// difference.
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
