package domain

import (
	"time"
)

// ProductCategory 상품 카테고리
type ProductCategory string

const (
	CategoryThrift   ProductCategory = "thrift"   // 중고
	CategoryRental   ProductCategory = "rental"   // 대여
	CategoryUpcycled ProductCategory = "upcycled" // 업사이클
)

// ProductStatus 상품 판매 상태
type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "available" // 판매중
	ProductStatusSold      ProductStatus = "sold"      // 판매완료
	ProductStatusRented    ProductStatus = "rented"    // 대여중
	ProductStatusPending   ProductStatus = "pending"   // 대기
)

// ApprovalStatus 상품 승인 상태 (관리자 검수)
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"  // 승인 대기
	ApprovalApproved ApprovalStatus = "approved" // 승인
	ApprovalRejected ApprovalStatus = "rejected" // 거절
)

// ProductCondition 상품 컨디션
type ProductCondition string

const (
	ConditionNew     ProductCondition = "new"
	ConditionLikeNew ProductCondition = "like new"
	ConditionGood    ProductCondition = "good"
	ConditionFair    ProductCondition = "fair"
)

// Product 상품 엔티티
// 가격은 센트(소수점 없는 정수), 탄소 절감량은 그램 단위 정수
type Product struct {
	ID                   uint64           `gorm:"primaryKey" json:"id"`
	Name                 string           `gorm:"column:name;size:200;not null" json:"name"`
	Description          string           `gorm:"column:description;type:text;not null" json:"description"`
	Price                int64            `gorm:"column:price;not null" json:"price"`
	ImageURL             string           `gorm:"column:image_url;size:500;not null" json:"image_url"`
	Category             ProductCategory  `gorm:"column:category;size:20;not null;index" json:"category"`
	Brand                string           `gorm:"column:brand;size:100" json:"brand,omitempty"`
	Size                 string           `gorm:"column:size;size:20" json:"size,omitempty"`
	Condition            ProductCondition `gorm:"column:condition;size:20" json:"condition,omitempty"`
	SustainabilityImpact int64            `gorm:"column:sustainability_impact;not null" json:"sustainability_impact"`
	SellerID             uint64           `gorm:"column:seller_id;not null;index" json:"seller_id"`
	Status               ProductStatus    `gorm:"column:status;size:20;default:available;not null;index" json:"status"`
	ApprovalStatus       ApprovalStatus   `gorm:"column:approval_status;size:20;default:pending;not null;index" json:"approval_status"`
	AdminComment         string           `gorm:"column:admin_comment;size:500" json:"admin_comment,omitempty"`
	CreatedAt            time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// CreateProductRequest 상품 등록 요청
type CreateProductRequest struct {
	Name                 string           `json:"name" binding:"required,max=200"`
	Description          string           `json:"description" binding:"required"`
	Price                int64            `json:"price" binding:"required,gte=0"`
	ImageURL             string           `json:"image_url" binding:"required,max=500"`
	Category             ProductCategory  `json:"category" binding:"required,oneof=thrift rental upcycled"`
	Brand                string           `json:"brand" binding:"max=100"`
	Size                 string           `json:"size" binding:"max=20"`
	Condition            ProductCondition `json:"condition" binding:"omitempty,oneof=new 'like new' good fair"`
	SustainabilityImpact int64            `json:"sustainability_impact" binding:"gte=0"`
}

// UpdateProductRequest 상품 수정 요청
type UpdateProductRequest struct {
	Name                 *string           `json:"name" binding:"omitempty,max=200"`
	Description          *string           `json:"description"`
	Price                *int64            `json:"price" binding:"omitempty,gte=0"`
	ImageURL             *string           `json:"image_url" binding:"omitempty,max=500"`
	Brand                *string           `json:"brand" binding:"omitempty,max=100"`
	Size                 *string           `json:"size" binding:"omitempty,max=20"`
	Condition            *ProductCondition `json:"condition" binding:"omitempty,oneof=new 'like new' good fair"`
	SustainabilityImpact *int64            `json:"sustainability_impact" binding:"omitempty,gte=0"`
	Status               *ProductStatus    `json:"status" binding:"omitempty,oneof=available sold rented pending"`
}

// ApprovalRequest 상품 승인/거절 요청 (관리자)
type ApprovalRequest struct {
	ApprovalStatus ApprovalStatus `json:"approval_status" binding:"required,oneof=approved rejected"`
	AdminComment   string         `json:"admin_comment" binding:"max=500"`
}
