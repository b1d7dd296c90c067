package services

import (
	"testing"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedItemToggle_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSavedItemService(db)
	alice := createProfile(t, db, "alice@club.dev", models.RoleUser)

	result, err := svc.Toggle(alice.ID, "blog", "post-42")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, dto.SavedActionAdded, result.Action)

	items, err := svc.ListForUser(alice.ID, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "post-42", items[0].ContentID)

	// Second toggle removes; the pair restores the original state.
	result, err = svc.Toggle(alice.ID, "blog", "post-42")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, dto.SavedActionRemoved, result.Action)

	items, err = svc.ListForUser(alice.ID, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSavedItemToggle_DistinctTuples(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSavedItemService(db)
	alice := createProfile(t, db, "alice@club.dev", models.RoleUser)
	bob := createProfile(t, db, "bob@club.dev", models.RoleUser)

	_, err := svc.Toggle(alice.ID, "blog", "post-1")
	require.NoError(t, err)
	_, err = svc.Toggle(alice.ID, "tutorial", "post-1")
	require.NoError(t, err)
	_, err = svc.Toggle(bob.ID, "blog", "post-1")
	require.NoError(t, err)

	aliceItems, err := svc.ListForUser(alice.ID, "")
	require.NoError(t, err)
	assert.Len(t, aliceItems, 2)

	blogOnly, err := svc.ListForUser(alice.ID, "blog")
	require.NoError(t, err)
	require.Len(t, blogOnly, 1)
	assert.Equal(t, "blog", blogOnly[0].ContentType)

	bobItems, err := svc.ListForUser(bob.ID, "")
	require.NoError(t, err)
	assert.Len(t, bobItems, 1)
}

func TestSavedItemToggle_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSavedItemService(db)
	alice := createProfile(t, db, "alice@club.dev", models.RoleUser)

	_, err := svc.Toggle(alice.ID, "", "post-1")
	assert.Error(t, err)
	_, err = svc.Toggle(alice.ID, "blog", "")
	assert.Error(t, err)
}
