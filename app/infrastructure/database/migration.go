package database

import (
	"fmt"

	"gorm.io/gorm"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"
)

type DatabaseMigration struct {
	gorm.Model
	Version string `gorm:"not null;uniqueIndex"`
}

type DBMigrator struct {
	db *gorm.DB
}

func NewDBMigrator(db *gorm.DB) *DBMigrator {
	return &DBMigrator{
		db: db,
	}
}

func (d *DBMigrator) initialize() error {
	db := d.db

	if db.Migrator().HasTable("database_migration") {
		var record DatabaseMigration
		result := db.Limit(1).Find(&record)
		if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to query migration records: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			return nil
		}
	}

	if err := db.AutoMigrate(&DatabaseMigration{}); err != nil {
		return fmt.Errorf("failed to create 'database_migration' table: %w", err)
	}
	initialRecord := DatabaseMigration{Version: "000000"}
	if err := db.Create(&initialRecord).Error; err != nil {
		return fmt.Errorf("failed to insert initial migration record: %w", err)
	}
	return nil
}

func (d *DBMigrator) Migrate() (err error) {
	if err = d.initialize(); err != nil {
		return err
	}
	for _, model := range SchemaRegistry {
		err = d.db.AutoMigrate(model)
		if err != nil {
			logger.GetLogger().
				WithField("error_code", "f7c24e8d-9a1b-4d56-b0e3-28c5a7f1d964").
				Fatalf("failed to auto migrate schema: %T, error: %v", model, err)
			return err
		}
	}
	return nil
}
