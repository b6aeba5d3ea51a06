package main

import (
	"Recycle/config"
	"Recycle/pkg/database"
	"Recycle/pkg/log"
	"Recycle/pkg/server"
	"Recycle/pkg/tracing"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// 本地开发可用 .env 覆盖 APP_ENV
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.Init(cfg.Log)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "recycling rewards api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					shutdown, err := tracing.Init(ctx.Context, cfg)
					if err != nil {
						return err
					}
					defer func() {
						c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
						defer cancel()
						_ = shutdown(c)
					}()

					appProvider := InitServer(cfg)
					if cfg.Debug() {
						if err := database.Migrate(appProvider.DB); err != nil {
							return err
						}
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(cfg)
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("driver", cfg.Database.Driver))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
