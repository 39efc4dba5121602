package database

import (
	"fmt"
	"log"

	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(databaseURL string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if databaseURL == "" || databaseURL == ":memory:" {
		db, err = gorm.Open(sqlite.Open(":memory:"), config)
	} else if len(databaseURL) > 10 && databaseURL[:6] == "sqlite" {
		// Strip "sqlite:" prefix for SQLite driver
		dbPath := databaseURL[7:]
		dbPath = dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
		db, err = gorm.Open(sqlite.Open(dbPath), config)
	} else {
		db, err = gorm.Open(postgres.Open(databaseURL), config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Profile{},
		&models.Supplier{},
		&models.Bean{},
		&models.BrewMethod{},
		&models.BeanRating{},
		&models.BeanComment{},
		&models.CoffeeExtraction{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := seedBrewMethods(db); err != nil {
		return fmt.Errorf("brew method seed failed: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedBrewMethods fills the global brew method catalog on first run. The
// catalog is shared by all users and has no write API.
func seedBrewMethods(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BrewMethod{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	methods := []models.BrewMethod{
		{Name: "Espresso", Description: "Pressurized extraction, 25-30s shot"},
		{Name: "V60", Description: "Paper-filtered pour over"},
		{Name: "AeroPress", Description: "Immersion with pressure-assisted filtering"},
		{Name: "French Press", Description: "Full immersion, metal filter"},
		{Name: "Moka Pot", Description: "Stovetop pressure brewer"},
		{Name: "Chemex", Description: "Thick-filter pour over"},
		{Name: "Cold Brew", Description: "Long steep at room temperature or below"},
	}
	for i := range methods {
		methods[i].ID = uuid.NewString()
	}

	return db.Create(&methods).Error
}
