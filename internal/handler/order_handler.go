package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/revogue/revogue-backend/internal/middleware"
	"github.com/revogue/revogue-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// OrderHandler 주문 핸들러
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler 생성자
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /api/orders
// @Summary 주문 생성
// @Description 주문과 아이템을 함께 생성합니다. 합계는 서버에서 계산합니다
// @Tags orders
// @Accept json
// @Produce json
// @Param request body domain.CreateOrderRequest true "주문 내용"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} common.APIResponse
// @Failure 401 {object} common.APIResponse
// @Security BearerAuth
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	order, err := h.orderService.PlaceOrder(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyOrder),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrNegativePrice):
			common.ErrorResponse(c, http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, common.ErrProductNotFound):
			common.ErrorResponse(c, http.StatusBadRequest, "Order references an unknown product", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create order", err)
		}
		return
	}

	middleware.CountOrderPlaced()
	common.CreatedResponse(c, order)
}

// ListOrders handles GET /api/orders
// @Summary 내 주문 목록 조회
// @Tags orders
// @Produce json
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	orders, err := h.orderService.ListOrders(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	common.SuccessResponse(c, orders, nil)
}

// GetOrder handles GET /api/orders/:id
// 본인 주문이 아니면 404로 숨기지 않고 403을 돌려준다
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	order, err := h.orderService.GetOrder(userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrOrderNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Order not found", err)
		case errors.Is(err, service.ErrOrderForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "Not authorized to view this order", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch order", err)
		}
		return
	}

	common.SuccessResponse(c, order, nil)
}
