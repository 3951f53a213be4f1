package service

import (
	"testing"

	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTotalImpact(t *testing.T) {
	t.Run("성공 - 주문 이력 전체 절감량 합산", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewImpactService(orderRepo, productRepo)

		orderRepo.On("ListByBuyerWithItems", uint64(5)).Return([]*domain.Order{
			{ID: 1, BuyerID: 5, Items: []domain.OrderItem{
				{ProductID: 1, Quantity: 1, Price: 4500},
				{ProductID: 2, Quantity: 1, Price: 3000},
			}},
			{ID: 2, BuyerID: 5, Items: []domain.OrderItem{
				{ProductID: 3, Quantity: 1, Price: 2000},
			}},
		}, nil)
		productRepo.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, SustainabilityImpact: 2000}, nil)
		productRepo.On("FindByID", uint64(2)).Return(&domain.Product{ID: 2, SustainabilityImpact: 500}, nil)
		productRepo.On("FindByID", uint64(3)).Return(&domain.Product{ID: 3, SustainabilityImpact: 1500}, nil)

		summary, err := svc.TotalImpact(5)

		assert.NoError(t, err)
		assert.Equal(t, int64(4000), summary.TotalGrams)
		assert.Equal(t, 2, summary.OrderCount)
		assert.Equal(t, 3, summary.ItemCount)
		orderRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("성공 - 수량은 절감량에 곱하지 않는다", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewImpactService(orderRepo, productRepo)

		orderRepo.On("ListByBuyerWithItems", uint64(5)).Return([]*domain.Order{
			{ID: 1, BuyerID: 5, Items: []domain.OrderItem{
				{ProductID: 1, Quantity: 3, Price: 4500},
			}},
		}, nil)
		productRepo.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, SustainabilityImpact: 2000}, nil)

		summary, err := svc.TotalImpact(5)

		assert.NoError(t, err)
		assert.Equal(t, int64(2000), summary.TotalGrams)
	})

	t.Run("성공 - 삭제된 상품은 건너뛴다", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewImpactService(orderRepo, productRepo)

		orderRepo.On("ListByBuyerWithItems", uint64(5)).Return([]*domain.Order{
			{ID: 1, BuyerID: 5, Items: []domain.OrderItem{
				{ProductID: 1, Quantity: 1, Price: 4500},
				{ProductID: 99, Quantity: 1, Price: 3000},
			}},
		}, nil)
		productRepo.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, SustainabilityImpact: 2000}, nil)
		productRepo.On("FindByID", uint64(99)).Return(nil, gorm.ErrRecordNotFound)

		summary, err := svc.TotalImpact(5)

		assert.NoError(t, err)
		assert.Equal(t, int64(2000), summary.TotalGrams)
		assert.Equal(t, 1, summary.ItemCount)
	})

	t.Run("성공 - 주문 없으면 0", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewImpactService(orderRepo, productRepo)

		orderRepo.On("ListByBuyerWithItems", uint64(5)).Return([]*domain.Order{}, nil)

		summary, err := svc.TotalImpact(5)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), summary.TotalGrams)
		assert.Equal(t, 0, summary.OrderCount)
		assert.Equal(t, 0, summary.ItemCount)
	})
}

func TestFormatCO2(t *testing.T) {
	tests := []struct {
		name  string
		grams int64
		want  string
	}{
		{"0g", 0, "0g"},
		{"1000g 미만은 g 표기", 999, "999g"},
		{"1000g 경계는 kg 표기", 1000, "1.0kg"},
		{"소수점 한 자리 반올림", 1234, "1.2kg"},
		{"반올림 경계는 올림", 1250, "1.3kg"},
		{"반올림 경계는 올림 - 짝수 자리", 1450, "1.5kg"},
		{"합산 시나리오", 4000, "4.0kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCO2(tt.grams))
		})
	}
}
