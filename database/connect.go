package database

import (
	"fmt"
	"strconv"

	"restaurant_manager/config"
	"restaurant_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.Table{},
		&model.Reservation{},
		&model.MaintenanceEntry{},
		&model.Order{},
		&model.OrderItem{},
		&model.Bill{},
		&model.Feedback{},
	)
	fmt.Println("Database Migrated")

	SeedData(DB)
}
