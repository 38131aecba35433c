package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/dbresolver"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"
	"lendsqr.dev/admin-api-gateway/config/environment_variables"
)

var SchemaRegistry []interface{}

func RegisterSchemaForAutoMigrate(models ...interface{}) {
	SchemaRegistry = append(SchemaRegistry, models...)
}

var DB *gorm.DB

func NewDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(environment_variables.EnvironmentVariables.DB_POSTGRESQL_WRITE_DSN), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "1d2f8a6e-0b34-4c7d-9e15-a8b3c6d4f290").
			Fatalf("unable to connect to database: %v", err)
		return nil, err
	}
	err = db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(
			environment_variables.EnvironmentVariables.DB_POSTGRESQL_READ1_DSN,
		)},
		Policy: dbresolver.RandomPolicy{},
	}))
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "6a90c3b1-57de-4f02-8c4a-b5d7e821f643").
			Fatalf("unable to connect to setup replica: %v", err)
		return nil, err
	}
	DB = db
	return DB, nil
}

func Migration() error {
	migrator := NewDBMigrator(DB)
	return migrator.Migrate()
}
