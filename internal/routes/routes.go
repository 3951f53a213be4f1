package routes

import (
	"github.com/revogue/revogue-backend/internal/handler"
	"github.com/revogue/revogue-backend/internal/middleware"
	"github.com/revogue/revogue-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Handlers 라우트 등록에 필요한 핸들러 모음
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	Wishlist  *handler.WishlistHandler
	Dashboard *handler.DashboardHandler
	Admin     *handler.AdminHandler
}

// Setup configures the API routes
func Setup(router *gin.Engine, h *Handlers, jwtManager *jwt.Manager) {
	api := router.Group("/api")
	auth := middleware.JWTAuth(jwtManager)
	optionalAuth := middleware.OptionalJWTAuth(jwtManager)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.RefreshToken)
	authGroup.POST("/logout", h.Auth.Logout)
	authGroup.GET("/me", auth, h.Auth.GetMe)

	// Products (목록/상세는 비로그인 접근 허용, 본인 필터 판단에 optional auth)
	products := api.Group("/products")
	products.GET("", optionalAuth, h.Product.ListProducts)
	products.GET("/:id", h.Product.GetProduct)
	products.POST("", auth, h.Product.CreateProduct)
	products.PATCH("/:id", auth, h.Product.UpdateProduct)

	// Orders
	orders := api.Group("/orders")
	orders.Use(auth)
	orders.POST("", h.Order.CreateOrder)
	orders.GET("", h.Order.ListOrders)
	orders.GET("/:id", h.Order.GetOrder)

	// Wishlist
	wishlist := api.Group("/wishlist")
	wishlist.Use(auth)
	wishlist.GET("", h.Wishlist.ListWishlist)
	wishlist.POST("", h.Wishlist.AddToWishlist)
	wishlist.DELETE("/:id", h.Wishlist.RemoveFromWishlist)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboard.Use(auth)
	dashboard.GET("/stats", h.Dashboard.GetStats)

	// Admin (상품 검수)
	admin := api.Group("/admin")
	admin.Use(auth, middleware.RequireAdmin())
	admin.GET("/pending-products", h.Admin.ListPendingProducts)
	admin.PATCH("/products/:id/approval", h.Admin.ReviewProduct)
}
