package product

import (
	"github.com/freshstock/freshstock/internal/product/repository"
	"github.com/freshstock/freshstock/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
