package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sureshullagaddi/movie-rental-app/internal/catalog"
	"github.com/sureshullagaddi/movie-rental-app/internal/clock"
	"github.com/sureshullagaddi/movie-rental-app/internal/config"
	"github.com/sureshullagaddi/movie-rental-app/internal/invoice"
	"github.com/sureshullagaddi/movie-rental-app/internal/migration"
	"github.com/sureshullagaddi/movie-rental-app/internal/observability"
	"github.com/sureshullagaddi/movie-rental-app/internal/seed"
	"github.com/sureshullagaddi/movie-rental-app/internal/server"
	"github.com/sureshullagaddi/movie-rental-app/pkg/db"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		clock.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := migration.RunMigrations(sqlDB); err != nil {
				return err
			}
			if err := seed.EnsurePricing(conn); err != nil {
				return err
			}
			if !cfg.IsProduction() {
				return seed.EnsureDemoCatalog(conn)
			}
			return nil
		}),
		catalog.Module,
		invoice.Module,
		server.Module,
	)
	app.Run()
}
