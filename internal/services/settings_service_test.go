package services

import (
	"encoding/json"
	"testing"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) (*SettingsService, *testDeps) {
	t.Helper()
	db := setupTestDB(t)
	activity := NewActivityService(db)
	return NewSettingsService(db, activity), &testDeps{db: db, activity: activity}
}

func TestSettingsSetGetDelete(t *testing.T) {
	svc, deps := newSettingsService(t)
	admin := createProfile(t, deps.db, "admin@club.dev", models.RoleAdmin)

	value := json.RawMessage(`{"headline":"Join the club","cta":"Sign up"}`)
	require.NoError(t, svc.Set(admin.ID, "homepage_hero", value))

	got, err := svc.Get("homepage_hero")
	require.NoError(t, err)
	assert.JSONEq(t, string(value), string(got))

	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Contains(t, all, "homepage_hero")

	require.NoError(t, svc.Delete(admin.ID, "homepage_hero"))
	_, err = svc.Get("homepage_hero")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingsSet_Upsert(t *testing.T) {
	svc, deps := newSettingsService(t)
	admin := createProfile(t, deps.db, "admin@club.dev", models.RoleAdmin)

	require.NoError(t, svc.Set(admin.ID, "contact_email", json.RawMessage(`"old@club.dev"`)))
	require.NoError(t, svc.Set(admin.ID, "contact_email", json.RawMessage(`"new@club.dev"`)))

	got, err := svc.Get("contact_email")
	require.NoError(t, err)
	assert.JSONEq(t, `"new@club.dev"`, string(got))

	var count int64
	deps.db.Model(&models.SiteSetting{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSettingsSet_RejectsInvalidJSON(t *testing.T) {
	svc, deps := newSettingsService(t)
	admin := createProfile(t, deps.db, "admin@club.dev", models.RoleAdmin)

	assert.Error(t, svc.Set(admin.ID, "broken", json.RawMessage(`{"unterminated`)))
	assert.Error(t, svc.Set(admin.ID, "", json.RawMessage(`true`)))
}

func TestSettingsDelete_Unknown(t *testing.T) {
	svc, deps := newSettingsService(t)
	admin := createProfile(t, deps.db, "admin@club.dev", models.RoleAdmin)

	assert.ErrorIs(t, svc.Delete(admin.ID, "never_set"), ErrSettingNotFound)
}
