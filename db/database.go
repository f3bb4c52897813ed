package db

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"freshplate/models"
)

// Open connects to the sqlite database at path, creating the file when it
// does not exist, and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	// Check if the database file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		file, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		file.Close()
	}

	gdb, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate the schema
	if err := gdb.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}); err != nil {
		return nil, err
	}

	return gdb, nil
}
