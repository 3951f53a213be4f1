package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/revogue/revogue-backend/internal/repository"
	"gorm.io/gorm"
)

// ImpactSummary 환경 기여도 집계 결과
type ImpactSummary struct {
	TotalGrams int64 `json:"total_grams"` // 누적 탄소 절감량 (g CO₂e)
	OrderCount int   `json:"order_count"` // 주문 수
	ItemCount  int   `json:"item_count"`  // 주문 아이템 수 (매립 회피 건수)
}

// ImpactService 환경 기여도 집계 서비스 인터페이스
type ImpactService interface {
	TotalImpact(userID uint64) (*ImpactSummary, error)
}

type impactService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewImpactService 생성자
func NewImpactService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) ImpactService {
	return &impactService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// TotalImpact 사용자의 주문 이력 전체에서 탄소 절감량을 집계한다.
// 절감량은 주문 아이템 행마다 상품의 단위 절감량을 한 번씩 더한다
// (수량 곱셈 없음 — 기존 서비스와 동일한 집계 규칙).
// 상품이 삭제되어 조회되지 않는 아이템은 건너뛴다.
func (s *impactService) TotalImpact(userID uint64) (*ImpactSummary, error) {
	orders, err := s.orderRepo.ListByBuyerWithItems(userID)
	if err != nil {
		return nil, err
	}

	summary := &ImpactSummary{OrderCount: len(orders)}

	for _, order := range orders {
		for _, item := range order.Items {
			product, err := s.productRepo.FindByID(item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return nil, err
			}
			summary.TotalGrams += product.SustainabilityImpact
			summary.ItemCount++
		}
	}

	return summary, nil
}

// FormatCO2 그램 단위 절감량을 표시용 문자열로 변환
// 1000g 이상은 소수점 한 자리 kg, 미만은 정수 g
// 반올림은 half-up — 1250g은 1.3kg (%.1f의 half-to-even과 다름)
func FormatCO2(grams int64) string {
	if grams >= 1000 {
		kg := math.Round(float64(grams)/100) / 10
		return fmt.Sprintf("%.1fkg", kg)
	}
	return fmt.Sprintf("%dg", grams)
}
