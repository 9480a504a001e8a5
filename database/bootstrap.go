// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"cookitsimple/entities"
)

func OpenSQLite(path string) *gorm.DB {
	// TranslateError maps the driver's UNIQUE violations onto
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Recipe{},
		&entities.ImportSetting{},
		&entities.ImportedRecipe{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if err := SeedImportSettings(db); err != nil {
		log.Fatalf("seed import settings: %v", err)
	}

	return db
}

// SeedImportSettings creates the singleton settings row on a fresh DB so
// the admin panel always has something to edit. Imports stay disabled
// until an administrator flips the switch.
func SeedImportSettings(db *gorm.DB) error {
	var n int64
	if err := db.Model(&entities.ImportSetting{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return db.Create(&entities.ImportSetting{
		Enabled:    false,
		Frequency:  entities.FrequencyEvery2Days,
		ImportHour: 3,
	}).Error
}
