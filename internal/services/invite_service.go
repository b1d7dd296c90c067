package services

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"time"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/config"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInviteRole = errors.New("invite role must be admin or user")

// codeEncoding produces unpadded uppercase base32 codes. 20 random bytes give
// 160 bits of entropy in 32 characters.
var codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// InviteService owns the invite code lifecycle: active -> used exactly once,
// or active -> expired by time comparison. Redemption is a single transaction
// so two concurrent attempts on the same code cannot both succeed.
type InviteService struct {
	db       *gorm.DB
	cfg      *config.Config
	activity *ActivityService
}

func NewInviteService(db *gorm.DB, cfg *config.Config, activity *ActivityService) *InviteService {
	return &InviteService{db: db, cfg: cfg, activity: activity}
}

// Create generates an opaque random code granting role, valid for
// expiresInDays (config default when non-positive). The plain code is
// returned once, for display and copy.
func (s *InviteService) Create(createdBy uuid.UUID, role string, expiresInDays int) (*dto.InviteCreatedResponse, error) {
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, ErrInviteRole
	}
	if expiresInDays <= 0 {
		expiresInDays = s.cfg.InviteDefaultExpiryDays
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	invite := models.InviteCode{
		ID:        uuid.New(),
		Code:      code,
		Role:      role,
		ExpiresAt: time.Now().AddDate(0, 0, expiresInDays),
		CreatedBy: createdBy,
	}

	if err := s.db.Create(&invite).Error; err != nil {
		return nil, fmt.Errorf("failed to create invite code: %w", err)
	}

	s.activity.Log(createdBy, "create_invite", "invite_code", invite.ID.String(),
		fmt.Sprintf("role=%s expires_in_days=%d", role, expiresInDays))

	return &dto.InviteCreatedResponse{
		Code:      invite.Code,
		Role:      invite.Role,
		ExpiresAt: invite.ExpiresAt,
	}, nil
}

// Validate reports whether the code is currently redeemable without mutating
// anything. Used as a pre-check before committing to redemption.
func (s *InviteService) Validate(code string) (*dto.ValidateInviteResponse, error) {
	var invite models.InviteCode
	err := s.db.Where("code = ?", code).First(&invite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.ValidateInviteResponse{Valid: false, Reason: "not_found"}, nil
	}
	if err != nil {
		return nil, err
	}

	if invite.IsUsed {
		return &dto.ValidateInviteResponse{Valid: false, Reason: "used"}, nil
	}
	if invite.Expired(time.Now()) {
		return &dto.ValidateInviteResponse{Valid: false, Reason: "expired"}, nil
	}

	return &dto.ValidateInviteResponse{
		Valid:     true,
		Role:      invite.Role,
		ExpiresAt: &invite.ExpiresAt,
	}, nil
}

// Redeem atomically verifies the code, marks it used and applies its role to
// the redeemer. The code row is locked for the duration of the transaction;
// the second of two racing attempts sees is_used=true and fails normally.
// Used and expired codes are Success=false results, not errors.
func (s *InviteService) Redeem(code string, userID uuid.UUID) (*dto.RedeemResult, error) {
	var result dto.RedeemResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var invite models.InviteCode
		err := lockForUpdate(tx).Where("code = ?", code).First(&invite).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = dto.RedeemResult{Success: false, Message: "Invalid invite code."}
			return nil
		}
		if err != nil {
			return err
		}

		if invite.IsUsed {
			result = dto.RedeemResult{Success: false, Message: "This invite code has already been used."}
			return nil
		}
		// Time check is independent of the is_used flag: an unused code past
		// its window must fail the same way.
		if invite.Expired(time.Now()) {
			result = dto.RedeemResult{Success: false, Message: "This invite code has expired."}
			return nil
		}

		now := time.Now()
		if err := tx.Model(&invite).Updates(map[string]interface{}{
			"is_used": true,
			"used_by": userID,
			"used_at": now,
		}).Error; err != nil {
			return err
		}

		roleUpdate := tx.Model(&models.Profile{}).Where("id = ?", userID).Update("role", invite.Role)
		if roleUpdate.Error != nil {
			return roleUpdate.Error
		}
		if roleUpdate.RowsAffected == 0 {
			return ErrUserNotFound
		}

		result = dto.RedeemResult{
			Success: true,
			Message: "Invite code redeemed. Your account now has the " + invite.Role + " role.",
			Role:    invite.Role,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *InviteService) List(limit, offset int) ([]models.InviteCode, int64, error) {
	var invites []models.InviteCode
	var total int64

	s.db.Model(&models.InviteCode{}).Count(&total)
	if err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&invites).Error; err != nil {
		return nil, 0, err
	}
	return invites, total, nil
}

func generateCode() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return codeEncoding.EncodeToString(raw), nil
}
