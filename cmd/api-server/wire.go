//go:build wireinject
// +build wireinject

package main

import (
	"Recycle/config"
	"Recycle/dao"
	"Recycle/dao/cache"
	"Recycle/handler"
	"Recycle/pkg/client"
	"Recycle/pkg/database"
	"Recycle/pkg/server"
	"Recycle/pkg/voucher"
	"Recycle/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideQRCodeConfig,
		voucher.NewGenerator,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Point), "*"),
		wire.Struct(new(handler.History), "*"),
		wire.Struct(new(handler.Machine), "*"),
		wire.Struct(new(handler.Scan), "*"),
		wire.Struct(new(handler.Pricing), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
