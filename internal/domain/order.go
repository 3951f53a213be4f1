package domain

import (
	"time"
)

// OrderStatus 주문 상태
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // 접수
	OrderStatusCompleted OrderStatus = "completed" // 완료
	OrderStatusCancelled OrderStatus = "cancelled" // 취소
)

// OrderType 주문 유형
type OrderType string

const (
	OrderTypePurchase OrderType = "purchase" // 구매
	OrderTypeRental   OrderType = "rental"   // 대여
	OrderTypeUpcycle  OrderType = "upcycle"  // 업사이클
)

// Order 주문 엔티티
// TotalAmount는 생성 시점의 아이템 스냅샷 가격 합계로 고정된다
type Order struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	BuyerID     uint64      `gorm:"column:buyer_id;not null;index" json:"buyer_id"`
	Status      OrderStatus `gorm:"column:status;size:20;default:pending;not null" json:"status"`
	TotalAmount int64       `gorm:"column:total_amount;not null" json:"total_amount"`
	OrderType   OrderType   `gorm:"column:order_type;size:20;not null" json:"order_type"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Relations
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 주문 아이템 엔티티
// Price는 주문 시점 상품 가격의 스냅샷 — 이후 상품 가격이 바뀌어도 유지
type OrderItem struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	OrderID   uint64 `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID uint64 `gorm:"column:product_id;not null;index" json:"product_id"`
	Quantity  int    `gorm:"column:quantity;not null" json:"quantity"`
	Price     int64  `gorm:"column:price;not null" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// CreateOrderItemRequest 주문 아이템 입력
type CreateOrderItemRequest struct {
	ProductID uint64 `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
	Price     int64  `json:"price" binding:"gte=0"`
}

// CreateOrderRequest 주문 생성 요청
// 클라이언트가 보낸 total_amount는 신뢰하지 않고 서버에서 재계산한다
type CreateOrderRequest struct {
	OrderType OrderType                `json:"order_type" binding:"required,oneof=purchase rental upcycle"`
	Items     []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderResponse 주문 응답 (아이템 포함)
type OrderResponse struct {
	ID          uint64      `json:"id"`
	BuyerID     uint64      `json:"buyer_id"`
	Status      OrderStatus `json:"status"`
	TotalAmount int64       `json:"total_amount"`
	OrderType   OrderType   `json:"order_type"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items"`
}

// ToResponse 응답 변환
func (o *Order) ToResponse() *OrderResponse {
	items := o.Items
	if items == nil {
		items = []OrderItem{}
	}
	return &OrderResponse{
		ID:          o.ID,
		BuyerID:     o.BuyerID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		OrderType:   o.OrderType,
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
}
