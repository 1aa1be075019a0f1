package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS todos (
		id integer GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		text varchar(100) NOT NULL,
		completed boolean NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS labels (
		id integer GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		name varchar(100) NOT NULL UNIQUE
	)`,
}

// MigrateDatabase func - Creates the tables when they do not exist yet
func MigrateDatabase(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("migrate database: nil connection")
	}
	logrus.Info("Migrate database ...")
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}
	return nil
}
