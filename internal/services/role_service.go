package services

import (
	"errors"
	"strings"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/config"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidRole = errors.New("invalid role")

const (
	DestinationAdmin     = "admin"
	DestinationDashboard = "dashboard"
)

// RoleService is the single authoritative role resolver. Precedence is fixed:
// super-admin allowlist (config or table) > stored profile role > default.
type RoleService struct {
	db          *gorm.DB
	activity    *ActivityService
	adminEmails []string
	adminIDs    []string
}

func NewRoleService(db *gorm.DB, cfg *config.Config, activity *ActivityService) *RoleService {
	return &RoleService{
		db:          db,
		activity:    activity,
		adminEmails: parseCSV(cfg.SuperAdminEmails),
		adminIDs:    parseCSV(cfg.SuperAdminIDs),
	}
}

// IsSuperAdmin checks the config allowlist first, then the super_admins table.
// Any lookup failure reads as non-membership.
func (s *RoleService) IsSuperAdmin(userID uuid.UUID, email string) bool {
	if email != "" && contains(s.adminEmails, email) {
		return true
	}
	if contains(s.adminIDs, userID.String()) {
		return true
	}

	var entry models.SuperAdmin
	return s.db.First(&entry, "user_id = ?", userID).Error == nil
}

// IsAdmin reads the stored profile role. Fails closed: any read error reads
// as non-admin.
func (s *RoleService) IsAdmin(userID uuid.UUID) bool {
	var profile models.Profile
	if err := s.db.Select("role").First(&profile, "id = ?", userID).Error; err != nil {
		return false
	}
	return profile.Role == models.RoleAdmin
}

// ResolveDestination decides the post-login surface. Super-admin membership
// wins over the stored role; every failure path degrades to the regular
// dashboard so the caller is never left un-routed.
func (s *RoleService) ResolveDestination(userID uuid.UUID, email string) string {
	if s.IsSuperAdmin(userID, email) {
		return DestinationAdmin
	}
	if s.IsAdmin(userID) {
		return DestinationAdmin
	}
	return DestinationDashboard
}

// Promote overwrites the stored role. Flat write, no transition guards.
func (s *RoleService) Promote(adminID, userID uuid.UUID, role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}

	result := s.db.Model(&models.Profile{}).Where("id = ?", userID).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	s.activity.Log(adminID, "promote_user", "profile", userID.String(), "role set to "+role)
	return nil
}

// PromoteByEmail resolves the email to an identity before mutating the role.
func (s *RoleService) PromoteByEmail(adminID uuid.UUID, email, role string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if err := s.Promote(adminID, profile.ID, role); err != nil {
		return nil, err
	}
	profile.Role = role
	return &profile, nil
}

func (s *RoleService) SetBlocked(adminID, userID uuid.UUID, blocked bool) error {
	result := s.db.Model(&models.Profile{}).Where("id = ?", userID).Update("blocked", blocked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	action := "block_user"
	if !blocked {
		action = "unblock_user"
	}
	s.activity.Log(adminID, action, "profile", userID.String(), "")
	return nil
}

func (s *RoleService) ListProfiles(limit, offset int) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	s.db.Model(&models.Profile{}).Count(&total)
	if err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error; err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
