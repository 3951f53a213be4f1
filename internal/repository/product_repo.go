package repository

import (
	"github.com/revogue/revogue-backend/internal/domain"
	"gorm.io/gorm"
)

// ProductListParams 상품 목록 조회 파라미터
type ProductListParams struct {
	Category       *domain.ProductCategory
	MinPrice       *int64
	MaxPrice       *int64
	Size           string
	Brand          string
	SellerID       *uint64
	Status         *domain.ProductStatus
	ApprovalStatus *domain.ApprovalStatus
	Page           int
	Limit          int
}

// ProductRepository 상품 저장소 인터페이스
type ProductRepository interface {
	Create(product *domain.Product) error
	FindByID(id uint64) (*domain.Product, error)
	Update(product *domain.Product) error
	List(params *ProductListParams) ([]*domain.Product, int64, error)
	CountBySeller(sellerID uint64) (int64, error)
}

// productRepository GORM 구현체
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 상품 저장소 생성
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) FindByID(id uint64) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) List(params *ProductListParams) ([]*domain.Product, int64, error) {
	query := r.db.Model(&domain.Product{})

	// 필터 적용
	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}
	if params.Size != "" {
		query = query.Where("size = ?", params.Size)
	}
	if params.Brand != "" {
		query = query.Where("brand = ?", params.Brand)
	}
	if params.SellerID != nil {
		query = query.Where("seller_id = ?", *params.SellerID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.ApprovalStatus != nil {
		query = query.Where("approval_status = ?", *params.ApprovalStatus)
	}

	// 총 개수 조회
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 등록순 정렬 + 페이지네이션
	query = query.Order("created_at ASC, id ASC")
	if params.Limit > 0 {
		offset := (params.Page - 1) * params.Limit
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(params.Limit)
	}

	var products []*domain.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// CountBySeller 판매자의 활성 리스팅 수 — 승인 완료 + 판매중만 센다
func (r *productRepository) CountBySeller(sellerID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).
		Where("seller_id = ?", sellerID).
		Where("status = ?", domain.ProductStatusAvailable).
		Where("approval_status = ?", domain.ApprovalApproved).
		Count(&count).Error
	return count, err
}
