//go:build wireinject

package main

import (
	"github.com/google/wire"
	"gorm.io/gorm"
	"lendsqr.dev/admin-api-gateway/app/domain"
	"lendsqr.dev/admin-api-gateway/app/infrastructure"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database/repository"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		database.NewDB,
		repository.RepositoryProvider,
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}

func ProvideDatabase() *gorm.DB {
	return database.DB
}

func CreateDataInitializer() (*DataInitializer, error) {
	wire.Build(
		ProvideDatabase,
		repository.RepositoryProvider,
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		wire.Struct(new(DataInitializer), "*"),
	)
	return nil, nil
}
