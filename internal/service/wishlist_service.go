package service

import (
	"errors"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/revogue/revogue-backend/internal/repository"
	"gorm.io/gorm"
)

// WishlistService 위시리스트 서비스 인터페이스
type WishlistService interface {
	ListWishlist(userID uint64) ([]*domain.WishlistItemResponse, error)
	AddToWishlist(userID, productID uint64) (*domain.WishlistItemResponse, error)
	RemoveFromWishlist(userID, itemID uint64) error
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService 생성자
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// ListWishlist 찜 목록 조회 (상품 포함)
func (s *wishlistService) ListWishlist(userID uint64) ([]*domain.WishlistItemResponse, error) {
	items, err := s.wishlistRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.WishlistItemResponse, len(items))
	for i, item := range items {
		responses[i] = &domain.WishlistItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Product:   item.Product,
			CreatedAt: item.CreatedAt,
		}
	}
	return responses, nil
}

// AddToWishlist 찜 추가 — 같은 상품은 한 번만
func (s *wishlistService) AddToWishlist(userID, productID uint64) (*domain.WishlistItemResponse, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProductNotFound
		}
		return nil, err
	}

	exists, err := s.wishlistRepo.Exists(userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrAlreadyWishlisted
	}

	item := &domain.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Create(item); err != nil {
		return nil, err
	}

	return &domain.WishlistItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Product:   product,
		CreatedAt: item.CreatedAt,
	}, nil
}

// RemoveFromWishlist 찜 삭제 — 소유자만 가능
func (s *wishlistService) RemoveFromWishlist(userID, itemID uint64) error {
	item, err := s.wishlistRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrWishlistNotFound
		}
		return err
	}

	if item.UserID != userID {
		return common.ErrForbidden
	}

	return s.wishlistRepo.Delete(itemID)
}
