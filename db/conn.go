// Package db opens the configured database and keeps the schema current
package db

import (
	"fmt"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch viper.GetString("db.driver") {
	case "postgres":
		dial = postgres.Open(viper.GetString("db.dsn"))
	case "sqlite":
		dial = sqlite.Open(viper.GetString("db.dsn"))
	default:
		return nil, fmt.Errorf("unsupported db driver %q", viper.GetString("db.driver"))
	}

	conn, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		model.User{},
		model.Pet{},
		model.Comment{},
		model.Post{},
		model.LostFoundReport{},
	)
}
