package handler

import (
	"errors"
	"net/http"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/revogue/revogue-backend/internal/middleware"
	"github.com/revogue/revogue-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler 인증 핸들러
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler 생성자
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/auth/register
// @Summary 회원가입
// @Description 새 계정을 생성하고 토큰 쌍을 발급합니다
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "가입 정보"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			common.ErrorResponse(c, http.StatusConflict, "Username or email already exists", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to register", err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Login handles POST /api/auth/login
// @Summary 로그인
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "로그인 정보"
// @Success 200 {object} common.APIResponse
// @Failure 401 {object} common.APIResponse
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to login", err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// RefreshToken handles POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid refresh token", err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// Logout handles POST /api/auth/logout
// 토큰은 무상태라 서버에 지울 것이 없고, 클라이언트가 토큰을 버리면 된다
func (h *AuthHandler) Logout(c *gin.Context) {
	common.SuccessResponse(c, gin.H{"message": "Logged out successfully"}, nil)
}

// GetMe handles GET /api/auth/me
// @Summary 현재 사용자 조회
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
		return
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch user", err)
		return
	}

	common.SuccessResponse(c, user, nil)
}
