package service

import (
	"errors"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/revogue/revogue-backend/internal/repository"
	"gorm.io/gorm"
)

// ProductService 상품 서비스 인터페이스
type ProductService interface {
	CreateProduct(sellerID uint64, req *domain.CreateProductRequest) (*domain.Product, error)
	GetProduct(id uint64) (*domain.Product, error)
	UpdateProduct(userID, productID uint64, req *domain.UpdateProductRequest) (*domain.Product, error)
	ListProducts(params *repository.ProductListParams, viewer *Viewer) ([]*domain.Product, *common.Meta, error)
	ListPendingProducts() ([]*domain.Product, error)
	ReviewProduct(productID uint64, req *domain.ApprovalRequest) (*domain.Product, error)
}

// Viewer 요청자 신원 (비로그인 시 nil)
type Viewer struct {
	UserID uint64
	Role   domain.UserRole
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService 상품 서비스 생성
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// CreateProduct 상품 등록 — 승인 대기 상태로 생성
func (s *productService) CreateProduct(sellerID uint64, req *domain.CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		ImageURL:             req.ImageURL,
		Category:             req.Category,
		Brand:                req.Brand,
		Size:                 req.Size,
		Condition:            req.Condition,
		SustainabilityImpact: req.SustainabilityImpact,
		SellerID:             sellerID,
		Status:               domain.ProductStatusAvailable,
		ApprovalStatus:       domain.ApprovalPending,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProduct(id uint64) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// UpdateProduct 상품 수정 — 소유자만 가능
func (s *productService) UpdateProduct(userID, productID uint64, req *domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	if product.SellerID != userID {
		return nil, common.ErrForbidden
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Size != nil {
		product.Size = *req.Size
	}
	if req.Condition != nil {
		product.Condition = *req.Condition
	}
	if req.SustainabilityImpact != nil {
		product.SustainabilityImpact = *req.SustainabilityImpact
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts 상품 목록 조회
// 공개 조회는 승인 + 판매중 상품만 노출하고,
// 판매자 본인(또는 관리자)이 sellerId 필터로 조회할 때만 전체를 보여준다
func (s *productService) ListProducts(params *repository.ProductListParams, viewer *Viewer) ([]*domain.Product, *common.Meta, error) {
	ownView := false
	if params.SellerID != nil && viewer != nil {
		ownView = *params.SellerID == viewer.UserID || viewer.Role == domain.RoleAdmin
	}

	if !ownView {
		approved := domain.ApprovalApproved
		available := domain.ProductStatusAvailable
		params.ApprovalStatus = &approved
		params.Status = &available
	}

	products, total, err := s.productRepo.List(params)
	if err != nil {
		return nil, nil, err
	}

	meta := &common.Meta{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	}
	return products, meta, nil
}

// ListPendingProducts 승인 대기 상품 목록 (관리자)
func (s *productService) ListPendingProducts() ([]*domain.Product, error) {
	pending := domain.ApprovalPending
	products, _, err := s.productRepo.List(&repository.ProductListParams{
		ApprovalStatus: &pending,
	})
	return products, err
}

// ReviewProduct 상품 승인/거절 (관리자)
// 승인 시 판매중으로, 거절 시 대기 상태로 전환
func (s *productService) ReviewProduct(productID uint64, req *domain.ApprovalRequest) (*domain.Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	product.ApprovalStatus = req.ApprovalStatus
	product.AdminComment = req.AdminComment
	if req.ApprovalStatus == domain.ApprovalApproved {
		product.Status = domain.ProductStatusAvailable
	} else {
		product.Status = domain.ProductStatusPending
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
