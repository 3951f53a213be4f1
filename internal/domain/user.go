package domain

import (
	"time"
)

// UserRole 사용자 역할
type UserRole string

const (
	RoleBuyer  UserRole = "buyer"  // 구매자
	RoleSeller UserRole = "seller" // 판매자
	RoleAdmin  UserRole = "admin"  // 관리자
)

// User 사용자 엔티티
type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"column:username;size:50;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"column:password;size:100;not null" json:"-"`
	Email     string    `gorm:"column:email;size:100;not null;uniqueIndex" json:"email"`
	FullName  string    `gorm:"column:full_name;size:100" json:"full_name,omitempty"`
	Role      UserRole  `gorm:"column:role;size:20;default:buyer;not null" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest 회원가입 요청
type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Password string   `json:"password" binding:"required,min=6,max=72"`
	Email    string   `json:"email" binding:"required,email"`
	FullName string   `json:"full_name" binding:"max=100"`
	Role     UserRole `json:"role" binding:"omitempty,oneof=buyer seller"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse 사용자 응답 (비밀번호 제외)
type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse 응답 변환
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
