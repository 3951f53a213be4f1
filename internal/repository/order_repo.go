package repository

import (
	"github.com/revogue/revogue-backend/internal/domain"
	"gorm.io/gorm"
)

// OrderRepository 주문 저장소 인터페이스
type OrderRepository interface {
	// 주문과 아이템을 하나의 트랜잭션으로 생성
	CreateWithItems(order *domain.Order, items []domain.OrderItem) error

	FindByID(id uint64) (*domain.Order, error)
	FindByIDWithItems(id uint64) (*domain.Order, error)
	ListByBuyer(buyerID uint64) ([]*domain.Order, error)
	ListByBuyerWithItems(buyerID uint64) ([]*domain.Order, error)
	UpdateStatus(id uint64, status domain.OrderStatus) error
}

// orderRepository GORM 구현체
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 생성자
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems 주문과 아이템 함께 생성 (트랜잭션)
// 아이템 insert가 하나라도 실패하면 주문까지 롤백된다
func (r *orderRepository) CreateWithItems(order *domain.Order, items []domain.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}

		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		order.Items = items
		return nil
	})
}

func (r *orderRepository) FindByID(id uint64) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByIDWithItems(id uint64) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByBuyer(buyerID uint64) ([]*domain.Order, error) {
	var orders []*domain.Order
	err := r.db.Where("buyer_id = ?", buyerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListByBuyerWithItems(buyerID uint64) ([]*domain.Order, error) {
	var orders []*domain.Order
	err := r.db.Preload("Items").Where("buyer_id = ?", buyerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint64, status domain.OrderStatus) error {
	return r.db.Model(&domain.Order{}).Where("id = ?", id).UpdateColumn("status", status).Error
}
