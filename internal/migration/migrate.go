package migration

import (
	"github.com/revogue/revogue-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all entities and seeds an admin account if missing.
func Run(db *gorm.DB) error {
	// 1. AutoMigrate - 테이블 없으면 생성, 있으면 skip
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.WishlistItem{},
	); err != nil {
		return err
	}

	// 2. Seed - 관리자 계정이 없을 때만 생성
	var count int64
	db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&count)
	if count == 0 {
		return seedAdmin(db)
	}

	return nil
}

func seedAdmin(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Username: "admin",
		Password: string(hashed),
		Email:    "admin@revogue.local",
		FullName: "ReVogue Admin",
		Role:     domain.RoleAdmin,
	}
	return db.Create(admin).Error
}
