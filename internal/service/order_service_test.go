package service

import (
	"errors"
	"testing"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockOrderRepository 주문 저장소 모의 객체
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithItems(order *domain.Order, items []domain.OrderItem) error {
	args := m.Called(order, items)
	if args.Error(0) == nil {
		order.ID = 1 // 생성된 주문 ID 시뮬레이션
		order.Items = items
	}
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDWithItems(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByBuyer(buyerID uint64) ([]*domain.Order, error) {
	args := m.Called(buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByBuyerWithItems(buyerID uint64) ([]*domain.Order, error) {
	args := m.Called(buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id uint64, status domain.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func TestPlaceOrder(t *testing.T) {
	t.Run("성공 - 스냅샷 가격으로 합계 계산", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		// 현재 카탈로그 가격은 9999지만 합계에는 쓰이지 않아야 한다
		productRepo.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, Price: 9999}, nil)
		productRepo.On("FindByID", uint64(2)).Return(&domain.Product{ID: 2, Price: 9999}, nil)
		orderRepo.On("CreateWithItems", mock.MatchedBy(func(o *domain.Order) bool {
			return o.BuyerID == uint64(5) &&
				o.Status == domain.OrderStatusPending &&
				o.TotalAmount == int64(2*4500+1*3000)
		}), mock.Anything).Return(nil)

		order, err := svc.PlaceOrder(5, &domain.CreateOrderRequest{
			Items: []domain.CreateOrderItemRequest{
				{ProductID: 1, Quantity: 2, Price: 4500},
				{ProductID: 2, Quantity: 1, Price: 3000},
			},
		})

		assert.NoError(t, err)
		assert.NotNil(t, order)
		assert.Equal(t, int64(12000), order.TotalAmount)
		assert.Len(t, order.Items, 2)
		orderRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("실패 - 빈 주문", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		order, err := svc.PlaceOrder(5, &domain.CreateOrderRequest{Items: []domain.CreateOrderItemRequest{}})

		assert.Error(t, err)
		assert.Nil(t, order)
		assert.Equal(t, common.ErrEmptyOrder, err)
		orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
	})

	t.Run("실패 - 수량 0", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		order, err := svc.PlaceOrder(5, &domain.CreateOrderRequest{
			Items: []domain.CreateOrderItemRequest{{ProductID: 1, Quantity: 0, Price: 4500}},
		})

		assert.Error(t, err)
		assert.Nil(t, order)
		assert.Equal(t, ErrInvalidQuantity, err)
	})

	t.Run("실패 - 음수 가격", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		order, err := svc.PlaceOrder(5, &domain.CreateOrderRequest{
			Items: []domain.CreateOrderItemRequest{{ProductID: 1, Quantity: 1, Price: -100}},
		})

		assert.Error(t, err)
		assert.Nil(t, order)
		assert.Equal(t, ErrNegativePrice, err)
	})

	t.Run("실패 - 존재하지 않는 상품", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		productRepo.On("FindByID", uint64(99)).Return(nil, gorm.ErrRecordNotFound)

		order, err := svc.PlaceOrder(5, &domain.CreateOrderRequest{
			Items: []domain.CreateOrderItemRequest{{ProductID: 99, Quantity: 1, Price: 4500}},
		})

		assert.Error(t, err)
		assert.Nil(t, order)
		assert.Equal(t, common.ErrProductNotFound, err)
		orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
		productRepo.AssertExpectations(t)
	})

	t.Run("실패 - 트랜잭션 실패 시 주문 없음", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		productRepo.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1}, nil)
		orderRepo.On("CreateWithItems", mock.Anything, mock.Anything).Return(errors.New("db error"))

		order, err := svc.PlaceOrder(5, &domain.CreateOrderRequest{
			Items: []domain.CreateOrderItemRequest{{ProductID: 1, Quantity: 1, Price: 4500}},
		})

		assert.Error(t, err)
		assert.Nil(t, order)
		orderRepo.AssertExpectations(t)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("성공 - 본인 주문 조회", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		orderRepo.On("FindByIDWithItems", uint64(1)).Return(&domain.Order{
			ID:          1,
			BuyerID:     5,
			TotalAmount: 4500,
			Items:       []domain.OrderItem{{ID: 1, OrderID: 1, ProductID: 1, Quantity: 1, Price: 4500}},
		}, nil)

		order, err := svc.GetOrder(5, 1)

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), order.ID)
		assert.Len(t, order.Items, 1)
		orderRepo.AssertExpectations(t)
	})

	t.Run("실패 - 타인의 주문", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		orderRepo.On("FindByIDWithItems", uint64(1)).Return(&domain.Order{ID: 1, BuyerID: 5}, nil)

		order, err := svc.GetOrder(6, 1)

		assert.Error(t, err)
		assert.Nil(t, order)
		assert.Equal(t, ErrOrderForbidden, err)
		orderRepo.AssertExpectations(t)
	})

	t.Run("실패 - 주문 없음", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		orderRepo.On("FindByIDWithItems", uint64(99)).Return(nil, gorm.ErrRecordNotFound)

		order, err := svc.GetOrder(5, 99)

		assert.Error(t, err)
		assert.Nil(t, order)
		assert.Equal(t, common.ErrOrderNotFound, err)
		orderRepo.AssertExpectations(t)
	})
}

func TestListOrders(t *testing.T) {
	t.Run("성공 - 주문 목록 조회", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		orderRepo.On("ListByBuyerWithItems", uint64(5)).Return([]*domain.Order{
			{ID: 1, BuyerID: 5, TotalAmount: 4500},
			{ID: 2, BuyerID: 5, TotalAmount: 3000},
		}, nil)

		orders, err := svc.ListOrders(5)

		assert.NoError(t, err)
		assert.Len(t, orders, 2)
		orderRepo.AssertExpectations(t)
	})

	t.Run("성공 - 주문 없으면 빈 목록", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewOrderService(orderRepo, productRepo)

		orderRepo.On("ListByBuyerWithItems", uint64(5)).Return([]*domain.Order{}, nil)

		orders, err := svc.ListOrders(5)

		assert.NoError(t, err)
		assert.Empty(t, orders)
		orderRepo.AssertExpectations(t)
	})
}
