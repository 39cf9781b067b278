package alert

import (
	"github.com/freshstock/freshstock/internal/alert/repository"
	"github.com/freshstock/freshstock/internal/alert/service"
	"go.uber.org/fx"
)

var Module = fx.Module("alert.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
