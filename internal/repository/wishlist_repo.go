package repository

import (
	"github.com/revogue/revogue-backend/internal/domain"
	"gorm.io/gorm"
)

// WishlistRepository 위시리스트 저장소 인터페이스
type WishlistRepository interface {
	Create(item *domain.WishlistItem) error
	FindByID(id uint64) (*domain.WishlistItem, error)
	Exists(userID, productID uint64) (bool, error)
	ListByUser(userID uint64) ([]*domain.WishlistItem, error)
	Delete(id uint64) error
}

// wishlistRepository GORM 구현체
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 생성자
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(item *domain.WishlistItem) error {
	return r.db.Create(item).Error
}

func (r *wishlistRepository) FindByID(id uint64) (*domain.WishlistItem, error) {
	var item domain.WishlistItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wishlistRepository) Exists(userID, productID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *wishlistRepository) ListByUser(userID uint64) ([]*domain.WishlistItem, error) {
	var items []*domain.WishlistItem
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *wishlistRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.WishlistItem{}, id).Error
}
