package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockImpactService 환경 기여도 서비스 모의 객체
type MockImpactService struct {
	mock.Mock
}

func (m *MockImpactService) TotalImpact(userID uint64) (*ImpactSummary, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ImpactSummary), args.Error(1)
}

func TestDashboardStats(t *testing.T) {
	t.Run("성공 - 대시보드 지표 집계", func(t *testing.T) {
		impactSvc := new(MockImpactService)
		productRepo := new(MockProductRepository)
		svc := NewDashboardService(impactSvc, productRepo)

		impactSvc.On("TotalImpact", uint64(5)).Return(&ImpactSummary{
			TotalGrams: 4000,
			OrderCount: 2,
			ItemCount:  3,
		}, nil)
		productRepo.On("CountBySeller", uint64(5)).Return(int64(4), nil)

		stats, err := svc.Stats(5)

		assert.NoError(t, err)
		assert.Equal(t, int64(4000), stats.TotalImpactGrams)
		assert.Equal(t, "4.0kg", stats.TotalImpactDisplay)
		assert.Equal(t, 2, stats.OrdersPlaced)
		assert.Equal(t, 3, stats.ItemsDiverted)
		assert.Equal(t, int64(4), stats.ActiveListings)
		impactSvc.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("성공 - 활동 없으면 0 지표", func(t *testing.T) {
		impactSvc := new(MockImpactService)
		productRepo := new(MockProductRepository)
		svc := NewDashboardService(impactSvc, productRepo)

		impactSvc.On("TotalImpact", uint64(5)).Return(&ImpactSummary{}, nil)
		productRepo.On("CountBySeller", uint64(5)).Return(int64(0), nil)

		stats, err := svc.Stats(5)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalImpactGrams)
		assert.Equal(t, "0g", stats.TotalImpactDisplay)
		assert.Equal(t, 0, stats.OrdersPlaced)
	})
}
