package services

import (
	"testing"
	"time"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/config"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testDeps struct {
	db       *gorm.DB
	activity *ActivityService
}

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.RefreshToken{},
		&models.SuperAdmin{},
		&models.InviteCode{},
		&models.Event{},
		&models.EventRegistration{},
		&models.SavedItem{},
		&models.SiteSetting{},
		&models.ActivityLog{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:               "test-secret-key",
		JWTAccessExpiry:         15 * time.Minute,
		JWTRefreshExpiry:        time.Hour,
		InviteDefaultExpiryDays: 7,
	}
}

func createProfile(t *testing.T, db *gorm.DB, email, role string) *models.Profile {
	t.Helper()

	profile := models.Profile{
		ID:       uuid.New(),
		Email:    email,
		Password: "x",
		Username: "user-" + uuid.NewString()[:8],
		Role:     role,
	}
	require.NoError(t, db.Create(&profile).Error)
	return &profile
}
