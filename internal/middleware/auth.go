package middleware

import (
	"errors"
	"strconv"
	"strings"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/revogue/revogue-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, 401, "Missing authorization header", nil)
			c.Abort()
			return
		}

		// 2. Parse Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 3. Verify token
		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}

		// 4. Store user info in context
		setIdentity(c, claims)

		c.Next()
	}
}

// OptionalJWTAuth verifies a Bearer token when present but never rejects.
// Unauthenticated requests continue with no identity in context.
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := jwtManager.VerifyToken(parts[1]); err == nil {
					setIdentity(c, claims)
				}
			}
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != domain.RoleAdmin {
			common.ErrorResponse(c, 403, "Admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	userID, _ := strconv.ParseUint(claims.UserID, 10, 64)
	c.Set("userID", userID)
	c.Set("username", claims.Username)
	c.Set("role", claims.Role)
}

// GetUserID extracts user ID from context, 0 when unauthenticated
func GetUserID(c *gin.Context) uint64 {
	userID, exists := c.Get("userID")
	if !exists {
		return 0
	}
	if id, ok := userID.(uint64); ok {
		return id
	}
	return 0
}

// GetUsername extracts username from context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	if str, ok := username.(string); ok {
		return str
	}
	return ""
}

// GetUserRole extracts user role from context
func GetUserRole(c *gin.Context) domain.UserRole {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}
	if str, ok := role.(string); ok {
		return domain.UserRole(str)
	}
	return ""
}
