package migration

import (
	"github.com/freshstock/freshstock/internal/config"
	productdomain "github.com/freshstock/freshstock/internal/product/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		// The embedded migrations are written for sqlite, the default store.
		// Other dialects get the same schema through AutoMigrate.
		if cfg.DBType != "sqlite" {
			return conn.AutoMigrate(&productdomain.Product{})
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
