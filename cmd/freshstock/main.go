package main

import (
	"github.com/freshstock/freshstock/internal/alertconfig"
	"github.com/freshstock/freshstock/internal/clock"
	"github.com/freshstock/freshstock/internal/config"
	"github.com/freshstock/freshstock/internal/migration"
	"github.com/freshstock/freshstock/internal/observability"
	"github.com/freshstock/freshstock/internal/server"
	"github.com/freshstock/freshstock/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		clock.Module,
		alertconfig.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}
