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

// WishlistHandler 위시리스트 핸들러
type WishlistHandler struct {
	wishlistService service.WishlistService
}

// NewWishlistHandler 생성자
func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// ListWishlist handles GET /api/wishlist
func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	items, err := h.wishlistService.ListWishlist(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch wishlist", err)
		return
	}

	common.SuccessResponse(c, items, nil)
}

// AddToWishlist handles POST /api/wishlist
// @Summary 찜 추가
// @Description 같은 상품은 한 번만 찜할 수 있습니다
// @Tags wishlist
// @Accept json
// @Produce json
// @Success 201 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Security BearerAuth
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	var req domain.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	item, err := h.wishlistService.AddToWishlist(userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrProductNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Product not found", err)
		case errors.Is(err, common.ErrAlreadyWishlisted):
			common.ErrorResponse(c, http.StatusConflict, "Product already in wishlist", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to add to wishlist", err)
		}
		return
	}

	common.CreatedResponse(c, item)
}

// RemoveFromWishlist handles DELETE /api/wishlist/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid wishlist item ID", err)
		return
	}

	if err := h.wishlistService.RemoveFromWishlist(userID, itemID); err != nil {
		switch {
		case errors.Is(err, common.ErrWishlistNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Wishlist item not found", err)
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "Not authorized to remove this item", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to remove from wishlist", err)
		}
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Item removed from wishlist"}, nil)
}
