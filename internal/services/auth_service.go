package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/config"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountBlocked     = errors.New("account is blocked")
)

type AuthService struct {
	db    *gorm.DB
	cfg   *config.Config
	roles *RoleService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, roles *RoleService) *AuthService {
	return &AuthService{db: db, cfg: cfg, roles: roles}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Email) == 0 || len(req.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}

	var existing models.Profile
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}
	if req.Username != "" {
		if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
			return nil, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	username := req.Username
	if username == "" {
		username = strings.Split(req.Email, "@")[0] + "-" + uuid.NewString()[:8]
	}

	profile := models.Profile{
		ID:           uuid.New(),
		Email:        req.Email,
		Password:     string(hash),
		FullName:     req.FullName,
		Username:     username,
		Role:         models.RoleUser,
		AuthProvider: "email",
	}

	if err := s.db.Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return s.generateTokenPair(&profile)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var profile models.Profile
	if err := s.db.Where("email = ?", req.Email).First(&profile).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if profile.Blocked {
		return nil, ErrAccountBlocked
	}

	resp, err := s.generateTokenPair(&profile)
	if err != nil {
		return nil, err
	}
	resp.Destination = s.roles.ResolveDestination(profile.ID, profile.Email)
	return resp, nil
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if profile.Blocked {
		return nil, ErrAccountBlocked
	}

	return s.generateTokenPair(&profile)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// BootstrapSession keeps the caller's profile consistent with the store and
// resolves a post-login destination. The profile is created lazily with the
// default role on first sign-in; a failed creation is logged and surfaces as
// a nil profile, never as a blocked bootstrap. The destination always resolves,
// degrading to the regular dashboard on any lookup failure.
func (s *AuthService) BootstrapSession(userID uuid.UUID, email string) (*models.Profile, string) {
	var profile models.Profile
	err := s.db.First(&profile, "id = ?", userID).Error

	switch {
	case err == nil:
		// existing profile
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.Profile{
			ID:           userID,
			Email:        email,
			Username:     strings.Split(email, "@")[0] + "-" + uuid.NewString()[:8],
			Role:         models.RoleUser,
			AuthProvider: "email",
		}
		if createErr := s.db.Create(&profile).Error; createErr != nil {
			slog.Error("profile creation failed during session bootstrap",
				"user_id", userID.String(), "error", createErr)
			return nil, s.roles.ResolveDestination(userID, email)
		}
	default:
		slog.Error("profile lookup failed during session bootstrap",
			"user_id", userID.String(), "error", err)
		return nil, s.roles.ResolveDestination(userID, email)
	}

	return &profile, s.roles.ResolveDestination(userID, email)
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &profile, nil
}

// UpdateProfile applies the self-service fields only; role and blocked are
// admin operations.
func (s *AuthService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Profile{}).Where("id = ?", userID).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}
	return s.GetProfile(userID)
}

func (s *AuthService) generateTokenPair(profile *models.Profile) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(profile)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:       profile.ID,
			Email:    profile.Email,
			Username: profile.Username,
			Role:     profile.Role,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":   profile.ID.String(),
		"email": profile.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(profile *models.Profile) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)
	tokenHash := hashToken(rawToken)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    profile.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
