package main

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"

	"lendsqr.dev/admin-api-gateway/app/infrastructure/database"
	_ "lendsqr.dev/admin-api-gateway/app/infrastructure/database/dbschema"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"
	"lendsqr.dev/admin-api-gateway/config/environment_variables"
)

var GormGenerator *gen.Generator

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	db, err := gorm.Open(postgres.Open(environment_variables.EnvironmentVariables.DB_POSTGRESQL_WRITE_DSN))
	if err != nil {
		panic(err)
	}

	GormGenerator = gen.NewGenerator(gen.Config{
		OutPath:       "./app/infrastructure/database/gormgen",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable: true,
	})
	GormGenerator.UseDB(db)
}

func main() {
	for _, model := range database.SchemaRegistry {
		GormGenerator.ApplyBasic(model)
		type Querier interface {
		}
		GormGenerator.ApplyInterface(func(Querier) {}, model)
	}
	GormGenerator.Execute()

	db, err := database.NewDB()
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "f3c2a917-5e08-4b6d-9a41-27d8c0b5e6f9").
			Fatalf("failed to open database, error: %v", err)
	}
	err = db.Exec("DROP SCHEMA IF EXISTS public CASCADE;").Error
	if err != nil {
		log.Fatalf("failed to drop schema: %v", err)
	}
	err = db.Exec("CREATE SCHEMA public;").Error
	if err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}
	for _, model := range database.SchemaRegistry {
		err = db.AutoMigrate(model)
		if err != nil {
			logger.GetLogger().
				WithField("error_code", "8a61d4f0-2c9e-47b3-b5d8-90e3a7c1f246").
				Fatalf("failed to auto migrate schema: %T, error: %v", model, err)
		}
	}
}
