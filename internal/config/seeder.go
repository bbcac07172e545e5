package config

import (
	"log"

	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedData seeds the demo admin user and the initial master datasets.
// Safe to run on every startup; existing records are left alone.
func SeedData(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedDocumentTypes(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}

	log.Println("✅ Seed data in place")
	return nil
}

// seedAdminUser creates the demo credential account used by the mock login
func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", models.SeedAdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash(models.SeedAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: models.SeedAdminUsername,
		Password: hash,
		Role:     "ADMIN",
		IsActive: true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("   Created admin user: %s", admin.Username)
	return nil
}

func seedDocumentTypes(db *gorm.DB) error {
	for _, dt := range models.SeedDocumentTypes() {
		var existing models.DocumentType
		if err := db.Where("name = ?", dt.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&dt).Error; err != nil {
					return err
				}
				log.Printf("   Created document_type: %s", dt.Name)
			}
		}
	}
	return nil
}

func seedProducts(db *gorm.DB) error {
	for _, p := range models.SeedProducts() {
		var existing models.Product
		if err := db.Where("product_name = ?", p.ProductName).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&p).Error; err != nil {
					return err
				}
				log.Printf("   Created product: %s", p.ProductName)
			}
		}
	}
	return nil
}
