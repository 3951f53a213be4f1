package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/revogue/revogue-backend/internal/middleware"
	"github.com/revogue/revogue-backend/internal/repository"
	"github.com/revogue/revogue-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ProductHandler 상품 핸들러
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler 생성자
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts handles GET /api/products
// @Summary 상품 목록 조회
// @Description 공개 카탈로그는 승인 + 판매중 상품만 노출합니다
// @Tags products
// @Produce json
// @Param category query string false "카테고리 (thrift, rental, upcycled)"
// @Param minPrice query int false "최소 가격 (센트)"
// @Param maxPrice query int false "최대 가격 (센트)"
// @Param size query string false "사이즈"
// @Param brand query string false "브랜드"
// @Param sellerId query int false "판매자 ID"
// @Success 200 {object} common.APIResponse
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := &repository.ProductListParams{
		Size:  c.Query("size"),
		Brand: c.Query("brand"),
	}

	if category := c.Query("category"); category != "" {
		cat := domain.ProductCategory(category)
		params.Category = &cat
	}
	if minPrice, err := strconv.ParseInt(c.Query("minPrice"), 10, 64); err == nil {
		params.MinPrice = &minPrice
	}
	if maxPrice, err := strconv.ParseInt(c.Query("maxPrice"), 10, 64); err == nil {
		params.MaxPrice = &maxPrice
	}
	if sellerID, err := strconv.ParseUint(c.Query("sellerId"), 10, 64); err == nil {
		params.SellerID = &sellerID
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}

	// 로그인 사용자라면 본인 상품 조회 허용 판단에 사용
	var viewer *service.Viewer
	if userID := middleware.GetUserID(c); userID != 0 {
		viewer = &service.Viewer{UserID: userID, Role: middleware.GetUserRole(c)}
	}

	products, meta, err := h.productService.ListProducts(params, viewer)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}

	common.SuccessResponse(c, products, meta)
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, common.ErrProductNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Product not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch product", err)
		return
	}

	common.SuccessResponse(c, product, nil)
}

// CreateProduct handles POST /api/products
// @Summary 상품 등록
// @Description 등록된 상품은 관리자 승인 후 공개됩니다
// @Tags products
// @Accept json
// @Produce json
// @Success 201 {object} common.APIResponse
// @Security BearerAuth
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	product, err := h.productService.CreateProduct(userID, &req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	common.CreatedResponse(c, product)
}

// UpdateProduct handles PATCH /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var req domain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	product, err := h.productService.UpdateProduct(userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrProductNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Product not found", err)
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "Not authorized to update this product", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update product", err)
		}
		return
	}

	common.SuccessResponse(c, product, nil)
}
