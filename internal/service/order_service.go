package service

import (
	"errors"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/revogue/revogue-backend/internal/repository"
	"gorm.io/gorm"
)

// 주문 에러 정의
var (
	ErrOrderForbidden  = errors.New("you are not the owner of this order")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativePrice   = errors.New("price must not be negative")
)

// OrderService 주문 서비스 인터페이스
type OrderService interface {
	// 주문 생성 — 주문과 아이템을 원자적으로 기록
	PlaceOrder(buyerID uint64, req *domain.CreateOrderRequest) (*domain.OrderResponse, error)

	// 주문 조회
	GetOrder(userID, orderID uint64) (*domain.OrderResponse, error)
	ListOrders(userID uint64) ([]*domain.OrderResponse, error)
}

// orderService 구현체
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService 생성자
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// PlaceOrder 주문 생성
// 합계는 클라이언트가 보낸 스냅샷 가격으로 서버에서 계산하며,
// 현재 상품 가격을 다시 읽어오지 않는다 (대여/과거 가격이 카탈로그와 다를 수 있음)
func (s *orderService) PlaceOrder(buyerID uint64, req *domain.CreateOrderRequest) (*domain.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, common.ErrEmptyOrder
	}

	var items []domain.OrderItem
	var totalAmount int64

	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if item.Price < 0 {
			return nil, ErrNegativePrice
		}

		// 상품 존재 확인 — 가격은 검증만 하고 스냅샷을 그대로 사용
		if _, err := s.productRepo.FindByID(item.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrProductNotFound
			}
			return nil, err
		}

		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		totalAmount += item.Price * int64(item.Quantity)
	}

	order := &domain.Order{
		BuyerID:     buyerID,
		Status:      domain.OrderStatusPending,
		TotalAmount: totalAmount,
		OrderType:   req.OrderType,
	}

	// 아이템 insert 실패 시 주문까지 롤백 — 부분 주문이 보이면 안 된다
	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, err
	}

	return order.ToResponse(), nil
}

// GetOrder 주문 조회 — 구매자 본인만 열람 가능
func (s *orderService) GetOrder(userID, orderID uint64) (*domain.OrderResponse, error) {
	order, err := s.orderRepo.FindByIDWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrOrderNotFound
		}
		return nil, err
	}

	if order.BuyerID != userID {
		return nil, ErrOrderForbidden
	}

	return order.ToResponse(), nil
}

// ListOrders 사용자의 주문 목록 조회 (아이템 포함)
func (s *orderService) ListOrders(userID uint64) ([]*domain.OrderResponse, error) {
	orders, err := s.orderRepo.ListByBuyerWithItems(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = order.ToResponse()
	}
	return responses, nil
}
