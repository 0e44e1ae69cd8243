package config

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "project-manager.com/project-manager/internal/models"
)

// NewDatabase opens the relational store. A postgres:// DSN selects the
// Postgres driver; anything else is treated as a SQLite file path, with
// foreign-key enforcement switched on for the connection.
func NewDatabase(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err == nil {
			err = db.Exec("PRAGMA foreign_keys = ON").Error
		}
	}
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}

// Migrate registers the assignment join model and creates all four tables.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.Task{}, "Collaborators", &model.Assignment{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&model.Project{},
		&model.Collaborator{},
		&model.Task{},
		&model.Assignment{},
	)
}
