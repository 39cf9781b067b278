package service

import (
	"context"
	"strings"
	"time"

	"github.com/freshstock/freshstock/internal/clock"
	"github.com/freshstock/freshstock/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

const defaultCategory = "Uncategorized"

// requiredFields is checked in declared order; the first missing field is the
// one reported.
var requiredFields = []string{"name", "manufacturing_date", "expiry_date", "quantity"}

var titleCaser = cases.Title(language.English)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, payload domain.Payload) (*domain.Product, error) {
	product, err := s.buildProduct(payload)
	if err != nil {
		return nil, err
	}

	product.CreatedAt = s.clock.Now().UTC()
	if err := s.repo.Insert(ctx, s.db, product); err != nil {
		s.log.Error("insert product", zap.Error(err))
		return nil, &domain.InternalError{Op: "adding product", Err: err}
	}

	return product, nil
}

func (s *Service) Update(ctx context.Context, id int64, payload domain.Payload) error {
	product, err := s.buildProduct(payload)
	if err != nil {
		return err
	}

	product.ID = id
	// An unknown id updates zero rows and still reports success, matching the
	// delete semantics below.
	if err := s.repo.Update(ctx, s.db, product); err != nil {
		s.log.Error("update product", zap.Int64("id", id), zap.Error(err))
		return &domain.InternalError{Op: "editing product", Err: err}
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		s.log.Error("delete product", zap.Int64("id", id), zap.Error(err))
		return &domain.InternalError{Op: "deleting product", Err: err}
	}
	return nil
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Product, error) {
	var (
		items []domain.Product
		err   error
	)
	if category != "" {
		items, err = s.repo.FindByCategory(ctx, s.db, category)
	} else {
		items, err = s.repo.FindAll(ctx, s.db)
	}
	if err != nil {
		s.log.Error("list products", zap.String("category", category), zap.Error(err))
		return nil, &domain.InternalError{Op: "fetching products", Err: err}
	}
	if items == nil {
		items = []domain.Product{}
	}
	return items, nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx, s.db)
	if err != nil {
		s.log.Error("list categories", zap.Error(err))
		return nil, &domain.InternalError{Op: "fetching categories", Err: err}
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// buildProduct validates required fields in declared order, coerces quantity
// and price, and applies defaults for category and price.
func (s *Service) buildProduct(payload domain.Payload) (*domain.Product, error) {
	for _, field := range requiredFields {
		if !payload.Field(field).Present() {
			return nil, &domain.ValidationError{
				Field:   field,
				Message: fieldTitle(field) + " is required",
			}
		}
	}

	manufacturingDate := payload.ManufacturingDate.String()
	if _, err := time.Parse(domain.DateLayout, manufacturingDate); err != nil {
		return nil, &domain.ValidationError{
			Field:   "manufacturing_date",
			Message: "Manufacturing Date must be a valid date (YYYY-MM-DD)",
		}
	}

	expiryDate := payload.ExpiryDate.String()
	if _, err := time.Parse(domain.DateLayout, expiryDate); err != nil {
		return nil, &domain.ValidationError{
			Field:   "expiry_date",
			Message: "Expiry Date must be a valid date (YYYY-MM-DD)",
		}
	}

	quantity, err := payload.Quantity.Int()
	if err != nil {
		return nil, &domain.ValidationError{
			Field:   "quantity",
			Message: "Quantity must be a whole number",
		}
	}

	price := 0.0
	if payload.Price.IsSet() {
		price, err = payload.Price.Float()
		if err != nil {
			return nil, &domain.ValidationError{
				Field:   "price",
				Message: "Price must be a number",
			}
		}
	}

	category := defaultCategory
	if payload.Category.IsSet() {
		category = payload.Category.String()
	}

	return &domain.Product{
		Name:              payload.Name.String(),
		Category:          category,
		ManufacturingDate: manufacturingDate,
		ExpiryDate:        expiryDate,
		Quantity:          quantity,
		Price:             price,
	}, nil
}

func fieldTitle(field string) string {
	return titleCaser.String(strings.ReplaceAll(field, "_", " "))
}
