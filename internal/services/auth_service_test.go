package services

import (
	"testing"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	cfg := testConfig()
	roles := NewRoleService(db, cfg, NewActivityService(db))
	return NewAuthService(db, cfg, roles), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, db := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@club.dev",
		Password: "correct-horse",
		FullName: "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	// Password is stored hashed, never in the clear.
	var stored models.Profile
	require.NoError(t, db.Where("email = ?", "alice@club.dev").First(&stored).Error)
	assert.NotEqual(t, "correct-horse", stored.Password)

	login, err := svc.Login(&dto.LoginRequest{Email: "alice@club.dev", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, DestinationDashboard, login.Destination)

	_, err = svc.Login(&dto.LoginRequest{Email: "alice@club.dev", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "alice@club.dev", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "alice@club.dev", Password: "another-pass"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_GeneratedUsername(t *testing.T) {
	svc, db := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "alice@club.dev", Password: "correct-horse"})
	require.NoError(t, err)

	var stored models.Profile
	require.NoError(t, db.Where("email = ?", "alice@club.dev").First(&stored).Error)
	assert.Contains(t, stored.Username, "alice-")
}

func TestLogin_BlockedAccount(t *testing.T) {
	svc, db := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "alice@club.dev", Password: "correct-horse"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Profile{}).
		Where("email = ?", "alice@club.dev").
		Update("blocked", true).Error)

	_, err = svc.Login(&dto.LoginRequest{Email: "alice@club.dev", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestLogin_AdminDestination(t *testing.T) {
	svc, db := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "owner@club.dev", Password: "correct-horse"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.SuperAdmin{UserID: resp.User.ID}).Error)

	login, err := svc.Login(&dto.LoginRequest{Email: "owner@club.dev", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, DestinationAdmin, login.Destination)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "alice@club.dev", Password: "correct-horse"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// The old token was revoked by the rotation.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "alice@club.dev", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBootstrapSession_LazyProfileCreation(t *testing.T) {
	svc, db := newAuthService(t)
	userID := uuid.New()

	profile, destination := svc.BootstrapSession(userID, "new@club.dev")
	require.NotNil(t, profile)
	assert.Equal(t, models.RoleUser, profile.Role)
	assert.Equal(t, DestinationDashboard, destination)

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", userID).Error)
	assert.Equal(t, "new@club.dev", stored.Email)

	// Second bootstrap finds the row instead of creating another.
	again, _ := svc.BootstrapSession(userID, "new@club.dev")
	require.NotNil(t, again)
	assert.Equal(t, stored.Username, again.Username)

	var count int64
	db.Model(&models.Profile{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBootstrapSession_SuperAdminDestination(t *testing.T) {
	svc, db := newAuthService(t)
	userID := uuid.New()
	require.NoError(t, db.Create(&models.SuperAdmin{UserID: userID}).Error)

	// Role stays the default; the allowlist alone decides the destination.
	profile, destination := svc.BootstrapSession(userID, "owner@club.dev")
	require.NotNil(t, profile)
	assert.Equal(t, models.RoleUser, profile.Role)
	assert.Equal(t, DestinationAdmin, destination)
}

func TestUpdateProfile_SelfServiceFieldsOnly(t *testing.T) {
	svc, db := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "alice@club.dev", Password: "correct-horse"})
	require.NoError(t, err)

	name := "Alice A."
	bio := "Builds things"
	updated, err := svc.UpdateProfile(resp.User.ID, &dto.UpdateProfileRequest{FullName: &name, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", updated.FullName)
	assert.Equal(t, "Builds things", updated.Bio)

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", resp.User.ID).Error)
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	name := "Ghost"
	_, err := svc.UpdateProfile(uuid.New(), &dto.UpdateProfileRequest{FullName: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
