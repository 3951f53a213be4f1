package service

import (
	"github.com/revogue/revogue-backend/internal/repository"
)

// DashboardStats 대시보드 집계 응답
// 절감량은 그램 단위 정수로 내려주고, 표시 문자열은 참고용으로 함께 제공
type DashboardStats struct {
	TotalImpactGrams   int64  `json:"total_impact_grams"`
	TotalImpactDisplay string `json:"total_impact_display"`
	OrdersPlaced       int    `json:"orders_placed"`
	ItemsDiverted      int    `json:"items_diverted"`
	ActiveListings     int64  `json:"active_listings"`
}

// DashboardService 대시보드 서비스 인터페이스
type DashboardService interface {
	Stats(userID uint64) (*DashboardStats, error)
}

type dashboardService struct {
	impactService ImpactService
	productRepo   repository.ProductRepository
}

// NewDashboardService 생성자
func NewDashboardService(impactService ImpactService, productRepo repository.ProductRepository) DashboardService {
	return &dashboardService{
		impactService: impactService,
		productRepo:   productRepo,
	}
}

// Stats 구매/판매 대시보드 지표 집계
func (s *dashboardService) Stats(userID uint64) (*DashboardStats, error) {
	summary, err := s.impactService.TotalImpact(userID)
	if err != nil {
		return nil, err
	}

	listings, err := s.productRepo.CountBySeller(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalImpactGrams:   summary.TotalGrams,
		TotalImpactDisplay: FormatCO2(summary.TotalGrams),
		OrdersPlaced:       summary.OrderCount,
		ItemsDiverted:      summary.ItemCount,
		ActiveListings:     listings,
	}, nil
}
