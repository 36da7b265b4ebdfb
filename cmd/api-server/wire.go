//go:build wireinject
// +build wireinject

package main

import (
	"FitHub/config"
	"FitHub/dao"
	"FitHub/dao/cache"
	"FitHub/handler"
	"FitHub/pkg/client"
	"FitHub/pkg/database"
	"FitHub/pkg/server"
	"FitHub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Exercise), "*"),
		wire.Struct(new(handler.Engagement), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
