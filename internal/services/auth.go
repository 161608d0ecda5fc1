package services

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/research-metadata/catalog-api/internal/config"
	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
)

type userLookup interface {
	FindByID(uint) (*models.User, error)
	FindByEmail(string) (*models.User, error)
}

type refreshTokenStore interface {
	FindByUserID(uint) (*models.RefreshToken, error)
	Save(*models.RefreshToken) error
	DeleteByUserID(uint) error
}

type AuthService struct {
	users  userLookup
	tokens refreshTokenStore
	cfg    *config.Config
}

func NewAuthService(users userLookup, tokens refreshTokenStore, cfg *config.Config) *AuthService {
	return &AuthService{users: users, tokens: tokens, cfg: cfg}
}

func (s *AuthService) Login(req *dto.LoginRequest) dto.ServiceResponse[*dto.AuthResponse] {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return dto.Internal[*dto.AuthResponse](fmt.Sprintf("An error occurred while logging in: %v", err))
	}
	if user == nil {
		return dto.NotFound[*dto.AuthResponse]("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.Unauthorized[*dto.AuthResponse]("Invalid credentials")
	}

	resp, err := s.issueTokenPair(user)
	if err != nil {
		return dto.Internal[*dto.AuthResponse](fmt.Sprintf("An error occurred while logging in: %v", err))
	}
	return dto.Success("Login successful", resp, http.StatusOK)
}

// Refresh rotates the user's token pair. The presented refresh token must
// verify and match the stored token byte for byte.
func (s *AuthService) Refresh(token string) dto.ServiceResponse[*dto.AuthResponse] {
	userID, ok := s.verifyRefreshToken(token)
	if !ok {
		return dto.Unauthorized[*dto.AuthResponse]("Invalid or expired refresh token")
	}

	stored, err := s.tokens.FindByUserID(userID)
	if err != nil {
		return dto.Internal[*dto.AuthResponse](fmt.Sprintf("An error occurred while refreshing the session: %v", err))
	}
	if stored == nil || stored.Token != token {
		return dto.Unauthorized[*dto.AuthResponse]("Invalid or expired refresh token")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return dto.Internal[*dto.AuthResponse](fmt.Sprintf("An error occurred while refreshing the session: %v", err))
	}
	if user == nil {
		return dto.Unauthorized[*dto.AuthResponse]("Invalid or expired refresh token")
	}

	resp, err := s.issueTokenPair(user)
	if err != nil {
		return dto.Internal[*dto.AuthResponse](fmt.Sprintf("An error occurred while refreshing the session: %v", err))
	}
	return dto.Success("Token refreshed successfully", resp, http.StatusOK)
}

// Logout deletes the user's stored refresh token. Logging out twice is fine.
func (s *AuthService) Logout(token string) dto.ServiceResponse[*dto.AuthResponse] {
	userID, ok := s.verifyRefreshToken(token)
	if !ok {
		return dto.Unauthorized[*dto.AuthResponse]("Invalid or expired refresh token")
	}

	if err := s.tokens.DeleteByUserID(userID); err != nil {
		return dto.Internal[*dto.AuthResponse](fmt.Sprintf("An error occurred while logging out: %v", err))
	}
	return dto.Success[*dto.AuthResponse]("Logged out successfully", nil, http.StatusOK)
}

func (s *AuthService) issueTokenPair(user *models.User) (*dto.AuthResponse, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(user.ID), 10),
		"email": user.Email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWTAccessExpiry).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	expiresAt := now.Add(s.cfg.JWTRefreshExpiry)
	refreshClaims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.ID), 10),
		"typ": "refresh",
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := s.tokens.Save(record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

// verifyRefreshToken checks signature and expiry and returns the subject id.
func (s *AuthService) verifyRefreshToken(token string) (uint, bool) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return 0, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
