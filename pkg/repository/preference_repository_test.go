package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhrunov/newsdigest/pkg/domain"
)

func TestPreferenceRepository_CreateAndGet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	pref := &domain.UserPreference{
		Email:       "alice@example.com",
		FullName:    "Alice",
		Active:      true,
		DailyDigest: true,
		Categories:  []int64{3, 1},
		Keywords:    []string{"quantum computing", "rust"},
	}
	require.NoError(t, repos.Preference.CreateUser(ctx, pref))
	assert.NotEmpty(t, pref.UserID, "user id generated when absent")

	got, err := repos.Preference.GetUser(ctx, pref.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "Alice", got.FullName)
	assert.True(t, got.Active)
	assert.True(t, got.DailyDigest)
	assert.False(t, got.WeeklyDigest)
	assert.Equal(t, "09:00", got.DigestTime, "delivery time defaulted")
	assert.Equal(t, []int64{1, 3}, got.Categories)
	assert.Equal(t, []string{"quantum computing", "rust"}, got.Keywords)
}

func TestPreferenceRepository_CreateUser_DuplicateEmail(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	first := &domain.UserPreference{Email: "dup@example.com", Active: true}
	require.NoError(t, repos.Preference.CreateUser(ctx, first))

	second := &domain.UserPreference{Email: "dup@example.com", Active: true}
	err := repos.Preference.CreateUser(ctx, second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create user")
}

func TestPreferenceRepository_GetUser_NotFound(t *testing.T) {
	repos := setupTestRepos(t)

	_, err := repos.Preference.GetUser(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPreferenceRepository_UpdatePreferences(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	pref := &domain.UserPreference{
		Email:       "bob@example.com",
		Active:      true,
		DailyDigest: true,
		Categories:  []int64{1},
		Keywords:    []string{"golang"},
	}
	require.NoError(t, repos.Preference.CreateUser(ctx, pref))

	pref.DailyDigest = false
	pref.WeeklyDigest = true
	pref.InstantEnabled = true
	pref.DigestTime = "18:30"
	pref.Categories = []int64{2, 4}
	pref.Keywords = nil
	require.NoError(t, repos.Preference.UpdatePreferences(ctx, pref))

	got, err := repos.Preference.GetUser(ctx, pref.UserID)
	require.NoError(t, err)
	assert.False(t, got.DailyDigest)
	assert.True(t, got.WeeklyDigest)
	assert.True(t, got.InstantEnabled)
	assert.Equal(t, "18:30", got.DigestTime)
	assert.Equal(t, []int64{2, 4}, got.Categories)
	assert.Empty(t, got.Keywords, "keywords cleared on update")
}

func TestPreferenceRepository_UpdatePreferences_NotFound(t *testing.T) {
	repos := setupTestRepos(t)

	err := repos.Preference.UpdatePreferences(context.Background(),
		&domain.UserPreference{UserID: "missing", DigestTime: "09:00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPreferenceRepository_GetActiveUsers(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	users := []*domain.UserPreference{
		{UserID: "daily", Email: "d@example.com", Active: true, DailyDigest: true},
		{UserID: "weekly", Email: "w@example.com", Active: true, WeeklyDigest: true},
		{UserID: "instant", Email: "i@example.com", Active: true, InstantEnabled: true, Categories: []int64{1}},
		{UserID: "inactive", Email: "x@example.com", Active: false, DailyDigest: true, WeeklyDigest: true, InstantEnabled: true},
	}
	for _, u := range users {
		require.NoError(t, repos.Preference.CreateUser(ctx, u))
	}

	daily, err := repos.Preference.GetActiveUsers(ctx, domain.DigestDaily)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "daily", daily[0].UserID)

	weekly, err := repos.Preference.GetActiveUsers(ctx, domain.DigestWeekly)
	require.NoError(t, err)
	require.Len(t, weekly, 1)
	assert.Equal(t, "weekly", weekly[0].UserID)

	instant, err := repos.Preference.GetActiveUsers(ctx, domain.DigestInstant)
	require.NoError(t, err)
	require.Len(t, instant, 1)
	assert.Equal(t, "instant", instant[0].UserID)
	assert.Equal(t, []int64{1}, instant[0].Categories, "subscriptions loaded for active users")

	_, err = repos.Preference.GetActiveUsers(ctx, domain.DigestType("bogus"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown digest type")
}
