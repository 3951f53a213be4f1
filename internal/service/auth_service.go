package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/revogue/revogue-backend/internal/common"
	"github.com/revogue/revogue-backend/internal/domain"
	"github.com/revogue/revogue-backend/internal/repository"
	"github.com/revogue/revogue-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService 인증 서비스 (bcrypt + JWT)
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService 생성자
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginResponse 로그인/가입 응답
type LoginResponse struct {
	User         *domain.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// Register 회원가입 — username/email 중복 검사 후 bcrypt 해시 저장
func (s *AuthService) Register(req *domain.RegisterRequest) (*LoginResponse, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, common.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, common.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleBuyer
	}

	user := &domain.User{
		Username: req.Username,
		Password: string(hashed),
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// Login 로그인 — 자격 증명 검증 후 토큰 발급
func (s *AuthService) Login(req *domain.LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RefreshToken 리프레시 토큰 검증 후 새 토큰 쌍 발급
func (s *AuthService) RefreshToken(refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	return s.issueTokens(user)
}

// CurrentUser 현재 사용자 조회
func (s *AuthService) CurrentUser(userID uint64) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *AuthService) issueTokens(user *domain.User) (*LoginResponse, error) {
	userIDStr := strconv.FormatUint(user.ID, 10)
	accessToken, err := s.jwtManager.GenerateAccessToken(userIDStr, user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
