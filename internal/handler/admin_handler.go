package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/revogue/revogue-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 관리자 핸들러 (상품 검수)
type AdminHandler struct {
	productService service.ProductService
}

// NewAdminHandler 생성자
func NewAdminHandler(productService service.ProductService) *AdminHandler {
	return &AdminHandler{productService: productService}
}

// ListPendingProducts handles GET /api/admin/pending-products
// @Summary 승인 대기 상품 목록 조회
// @Tags admin
// @Produce json
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
func (h *AdminHandler) ListPendingProducts(c *gin.Context) {
	products, err := h.productService.ListPendingProducts()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch pending products", err)
		return
	}

	common.SuccessResponse(c, products, nil)
}

// ReviewProduct handles PATCH /api/admin/products/:id/approval
// @Summary 상품 승인/거절
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.ApprovalRequest true "승인 여부"
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
func (h *AdminHandler) ReviewProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var req domain.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid approval status", err)
		return
	}

	product, err := h.productService.ReviewProduct(id, &req)
	if err != nil {
		if errors.Is(err, common.ErrProductNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Product not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to review product", err)
		return
	}

	common.SuccessResponse(c, product, nil)
}
