package handler

import (
	"net/http"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/middleware"
	"github.com/revogue/revogue-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler 대시보드 핸들러
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler 생성자
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles GET /api/dashboard/stats
// @Summary 대시보드 지표 조회
// @Description 누적 탄소 절감량(그램)과 주문/판매 지표를 반환합니다
// @Tags dashboard
// @Produce json
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	stats, err := h.dashboardService.Stats(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch dashboard stats", err)
		return
	}

	common.SuccessResponse(c, stats, nil)
}
