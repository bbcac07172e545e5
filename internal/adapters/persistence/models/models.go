package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth tables
// ============================================================

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'ADMIN'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Master tables
// ============================================================

// DocumentType document type master record.
// The unique index on name is case-insensitive under the default utf8mb4
// collation, which matches the write-time uniqueness rule.
type DocumentType struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedBy   *string        `gorm:"size:50" json:"created_by"`
	UpdatedBy   *string        `gorm:"size:50" json:"updated_by"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DocumentType) TableName() string {
	return "document_types"
}

// Product types
const (
	ProductTypeSmallMolecule = "Small Molecule"
	ProductTypeBiologic      = "Biologic"
	ProductTypeDevice        = "Device"
	ProductTypeCombination   = "Combination"
)

// ProductTypes lists the accepted product_type values in display order.
var ProductTypes = []string{
	ProductTypeSmallMolecule,
	ProductTypeBiologic,
	ProductTypeDevice,
	ProductTypeCombination,
}

// IsValidProductType reports whether t is one of the fixed product types.
func IsValidProductType(t string) bool {
	for _, pt := range ProductTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Product product master record
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProductName string         `gorm:"size:100;uniqueIndex;not null" json:"product_name"`
	ProductType string         `gorm:"size:20;not null" json:"product_type"`
	ProductCode string         `gorm:"size:15" json:"product_code"`
	Description string         `gorm:"size:500" json:"description"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedBy   string         `gorm:"size:50" json:"created_by"`
	UpdatedBy   string         `gorm:"size:50" json:"updated_by"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&DocumentType{},
		&Product{},
	)
}
