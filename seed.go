package main

import (
	"fmt"
	"log"
	"strings"

	"mehendi-studio-server/config"
	"mehendi-studio-server/database"
	"mehendi-studio-server/models"
	"mehendi-studio-server/utils"
)

// seedAdminUser ensures the operator account from ADMIN_EMAIL /
// ADMIN_PASSWORD exists. The studio has a single operator; there is no
// self-service signup surface.
func seedAdminUser() error {
	db := database.GetDB()

	email := strings.ToLower(strings.TrimSpace(config.AppConfig.Admin.Email))
	password := config.AppConfig.Admin.Password

	if email == "" || password == "" {
		log.Println("⏭️  ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("⏭️  Admin user already exists: %s", email)
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("✅ Created admin user: %s", email)
	return nil
}
