package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates every table used by the service
func Migrate(db *gorm.DB) error {
	log.Info("Running database migrations")
	err := db.AutoMigrate(
		&models.Cafe{},
		&models.Pizza{},
		&models.User{},
		&models.Role{},
		&models.UserAuthority{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// SeedOptions controls the initial data written by Seed
type SeedOptions struct {
	AdminUsername string
	AdminPassword string
	DemoData      bool
}

// Seed makes sure the ADMIN and USER roles exist, creates a bootstrap admin
// when there are no users yet and, optionally, a demo cafe with pizzas.
func Seed(db *gorm.DB, opts SeedOptions) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedRoles(tx); err != nil {
			return err
		}
		if err := seedAdmin(tx, opts.AdminUsername, opts.AdminPassword); err != nil {
			return err
		}
		if opts.DemoData {
			return seedDemoData(tx)
		}
		return nil
	})
}

func seedRoles(tx *gorm.DB) error {
	roles := []models.Role{{Name: models.RoleAdmin}, {Name: models.RoleUser}}
	err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&roles).Error
	if err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}

func seedAdmin(tx *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		log.Warn("No bootstrap admin credentials configured, skipping admin seed")
		return nil
	}

	var count int64
	if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		log.Info("Users already present, skipping admin seed")
		return nil
	}

	var adminRole models.Role
	if err := tx.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		return fmt.Errorf("load admin role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{Username: username, Password: string(hash)}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	link := models.UserAuthority{UserID: admin.ID, AuthorityID: adminRole.ID}
	if err := tx.Create(&link).Error; err != nil {
		return fmt.Errorf("grant admin role: %w", err)
	}

	log.WithField("username", username).Info("Bootstrap admin user created")
	return nil
}

// seedDemoData seeds a single cafe and its menu when no cafe exists
func seedDemoData(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Cafe{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count cafes: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	cafe := models.Cafe{
		Name:    "Dominos",
		City:    "Kyiv",
		Address: "Main Street",
		Email:   "info@dominos.ua",
		Phone:   "+380441234567",
	}
	if err := tx.Create(&cafe).Error; err != nil {
		return fmt.Errorf("seed cafe: %w", err)
	}

	pizzas := []models.Pizza{
		{Name: "Margherita", Price: 10.99, Size: "M", Ingredients: "Tomato Sauce, Mozzarella, Basil", CafeID: cafe.ID},
		{Name: "Pepperoni", Price: 12.99, Size: "L", Ingredients: "Tomato Sauce, Mozzarella, Pepperoni", CafeID: cafe.ID},
		{Name: "Vegetarian", Price: 11.99, Size: "M", Ingredients: "Tomato Sauce, Mozzarella, Bell Peppers, Olives", CafeID: cafe.ID},
	}
	if err := tx.Create(&pizzas).Error; err != nil {
		return fmt.Errorf("seed pizzas: %w", err)
	}

	log.WithFields(logrus.Fields{"cafe_id": cafe.ID, "pizzas": len(pizzas)}).Info("Database seeded successfully")
	return nil
}
