package services

import (
	"testing"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/config"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRoleService(t *testing.T, cfg *config.Config) (*RoleService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	if cfg == nil {
		cfg = testConfig()
	}
	return NewRoleService(db, cfg, NewActivityService(db)), db
}

func TestPromote(t *testing.T) {
	svc, db := newRoleService(t, nil)
	admin := createProfile(t, db, "admin@club.dev", models.RoleAdmin)
	alice := createProfile(t, db, "alice@club.dev", models.RoleUser)

	require.NoError(t, svc.Promote(admin.ID, alice.ID, models.RoleAdmin))

	var updated models.Profile
	require.NoError(t, db.First(&updated, "id = ?", alice.ID).Error)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.True(t, svc.IsAdmin(alice.ID))

	// Audit entry is written best-effort alongside the promotion.
	var count int64
	db.Model(&models.ActivityLog{}).Where("action_type = ?", "promote_user").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPromote_InvalidRole(t *testing.T) {
	svc, db := newRoleService(t, nil)
	admin := createProfile(t, db, "admin@club.dev", models.RoleAdmin)
	alice := createProfile(t, db, "alice@club.dev", models.RoleUser)

	assert.ErrorIs(t, svc.Promote(admin.ID, alice.ID, "superuser"), ErrInvalidRole)
}

func TestPromote_UnknownUser(t *testing.T) {
	svc, db := newRoleService(t, nil)
	admin := createProfile(t, db, "admin@club.dev", models.RoleAdmin)

	assert.ErrorIs(t, svc.Promote(admin.ID, uuid.New(), models.RoleAdmin), ErrUserNotFound)
}

func TestPromoteByEmail(t *testing.T) {
	svc, db := newRoleService(t, nil)
	admin := createProfile(t, db, "admin@club.dev", models.RoleAdmin)
	alice := createProfile(t, db, "alice@club.dev", models.RoleUser)

	profile, err := svc.PromoteByEmail(admin.ID, "alice@club.dev", models.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.ID)
	assert.Equal(t, models.RoleModerator, profile.Role)

	var updated models.Profile
	require.NoError(t, db.First(&updated, "id = ?", alice.ID).Error)
	assert.Equal(t, models.RoleModerator, updated.Role)
}

func TestPromoteByEmail_UnknownEmail(t *testing.T) {
	svc, db := newRoleService(t, nil)
	admin := createProfile(t, db, "admin@club.dev", models.RoleAdmin)

	_, err := svc.PromoteByEmail(admin.ID, "nobody@club.dev", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsAdmin_FailsClosed(t *testing.T) {
	svc, _ := newRoleService(t, nil)
	assert.False(t, svc.IsAdmin(uuid.New()))
}

func TestSetBlocked(t *testing.T) {
	svc, db := newRoleService(t, nil)
	admin := createProfile(t, db, "admin@club.dev", models.RoleAdmin)
	alice := createProfile(t, db, "alice@club.dev", models.RoleUser)

	require.NoError(t, svc.SetBlocked(admin.ID, alice.ID, true))

	var updated models.Profile
	require.NoError(t, db.First(&updated, "id = ?", alice.ID).Error)
	assert.True(t, updated.Blocked)

	require.NoError(t, svc.SetBlocked(admin.ID, alice.ID, false))
	require.NoError(t, db.First(&updated, "id = ?", alice.ID).Error)
	assert.False(t, updated.Blocked)
}

func TestResolveDestination_SuperAdminWinsOverRole(t *testing.T) {
	svc, db := newRoleService(t, nil)
	alice := createProfile(t, db, "alice@club.dev", models.RoleUser)

	assert.Equal(t, DestinationDashboard, svc.ResolveDestination(alice.ID, alice.Email))

	// Allowlist membership routes to admin even with a plain user role.
	require.NoError(t, db.Create(&models.SuperAdmin{UserID: alice.ID}).Error)
	assert.Equal(t, DestinationAdmin, svc.ResolveDestination(alice.ID, alice.Email))
}

func TestResolveDestination_ProfileRole(t *testing.T) {
	svc, db := newRoleService(t, nil)
	admin := createProfile(t, db, "admin@club.dev", models.RoleAdmin)
	moderator := createProfile(t, db, "mod@club.dev", models.RoleModerator)

	assert.Equal(t, DestinationAdmin, svc.ResolveDestination(admin.ID, admin.Email))
	assert.Equal(t, DestinationDashboard, svc.ResolveDestination(moderator.ID, moderator.Email))
}

func TestResolveDestination_ConfigAllowlist(t *testing.T) {
	cfg := testConfig()
	cfg.SuperAdminEmails = "owner@club.dev, ops@club.dev"
	svc, db := newRoleService(t, cfg)
	owner := createProfile(t, db, "owner@club.dev", models.RoleUser)

	assert.Equal(t, DestinationAdmin, svc.ResolveDestination(owner.ID, owner.Email))
}

func TestResolveDestination_UnknownIdentityDegrades(t *testing.T) {
	svc, _ := newRoleService(t, nil)
	// No profile, no allowlist row: least-privileged destination.
	assert.Equal(t, DestinationDashboard, svc.ResolveDestination(uuid.New(), "ghost@club.dev"))
}
