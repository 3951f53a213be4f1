package domain

import (
	"time"
)

// WishlistItem 위시리스트 엔티티
// (user_id, product_id) 복합 유니크 — 같은 상품은 한 번만 찜 가능
type WishlistItem struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uint64    `gorm:"column:product_id;not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Relations
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (WishlistItem) TableName() string {
	return "wishlist"
}

// AddWishlistRequest 찜 추가 요청
type AddWishlistRequest struct {
	ProductID uint64 `json:"product_id" binding:"required"`
}

// WishlistItemResponse 찜 목록 응답 (상품 포함)
type WishlistItemResponse struct {
	ID        uint64    `json:"id"`
	ProductID uint64    `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
