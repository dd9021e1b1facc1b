package server

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhrunov/newsdigest/pkg/category"
	"github.com/dkhrunov/newsdigest/pkg/config"
	"github.com/dkhrunov/newsdigest/pkg/domain"
	"github.com/dkhrunov/newsdigest/server/mocks"
)

type testConfig struct{}

func (testConfig) GetServerConfig() (string, time.Duration) { return "127.0.0.1:0", 5 * time.Second }

func testRegistry(t *testing.T) *category.Registry {
	t.Helper()
	reg, err := category.NewRegistry([]config.CategoryConfig{
		{ID: 1, Name: "AI & Machine Learning", Keywords: []config.KeywordConfig{{Word: "openai"}, {Word: "llm"}}},
		{ID: 2, Name: "Security", Keywords: []config.KeywordConfig{{Word: "vulnerability"}}},
	})
	require.NoError(t, err)
	return reg
}

func testServer(t *testing.T, params Params) *httptest.Server {
	t.Helper()
	if params.Config == nil {
		params.Config = testConfig{}
	}
	if params.Registry == nil {
		params.Registry = testRegistry(t)
	}
	params.Version = "test"
	srv := New(params)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_Status(t *testing.T) {
	ts := testServer(t, Params{})

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
	assert.InDelta(t, 2, status["categories"], 0.01)
}

func TestServer_Ping(t *testing.T) {
	ts := testServer(t, Params{})

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Articles(t *testing.T) {
	articles := &mocks.ArticleStoreMock{
		GetArticlesFunc: func(_ context.Context, limit, offset int) ([]domain.CategorizedArticle, error) {
			assert.Equal(t, 10, limit)
			assert.Equal(t, 5, offset)
			return []domain.CategorizedArticle{
				{Article: domain.Article{ID: "a1", Title: "First"}},
				{Article: domain.Article{ID: "a2", Title: "Second"}},
			}, nil
		},
	}
	ts := testServer(t, Params{Articles: articles})

	resp, err := http.Get(ts.URL + "/api/v1/articles?limit=10&offset=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Articles []domain.CategorizedArticle `json:"articles"`
		Count    int                         `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "a1", body.Articles[0].ID)
}

func TestServer_ArticlesBadLimit(t *testing.T) {
	ts := testServer(t, Params{Articles: &mocks.ArticleStoreMock{}})

	resp, err := http.Get(ts.URL + "/api/v1/articles?limit=100000")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Article(t *testing.T) {
	articles := &mocks.ArticleStoreMock{
		GetArticleFunc: func(_ context.Context, id string) (*domain.CategorizedArticle, error) {
			if id != "a1" {
				return nil, fmt.Errorf("article %s not found: %w", id, sql.ErrNoRows)
			}
			return &domain.CategorizedArticle{
				Article:     domain.Article{ID: "a1", Title: "Found"},
				Assignments: []domain.CategoryAssignment{{ArticleID: "a1", CategoryID: 1, Score: 8}},
			}, nil
		},
	}
	ts := testServer(t, Params{Articles: articles})

	t.Run("found", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/articles/a1")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var art domain.CategorizedArticle
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&art))
		assert.Equal(t, "Found", art.Title)
		require.Len(t, art.Assignments, 1)
	})

	t.Run("missing", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/articles/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_Categories(t *testing.T) {
	ts := testServer(t, Params{})

	resp, err := http.Get(ts.URL + "/api/v1/categories")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Categories []categoryInfo `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Categories, 2)
	assert.Equal(t, int64(1), body.Categories[0].ID)
	assert.Equal(t, "AI & Machine Learning", body.Categories[0].Name)
	assert.Contains(t, body.Categories[0].Keywords, "openai")
}

func TestServer_CreateUser(t *testing.T) {
	prefs := &mocks.PreferenceStoreMock{
		CreateUserFunc: func(_ context.Context, pref *domain.UserPreference) error {
			pref.UserID = "generated-id"
			return nil
		},
	}
	ts := testServer(t, Params{Preferences: prefs})

	payload := `{"email":"user@example.com","full_name":"Test User","categories":[1],"keywords":["quantum computing"]}`
	resp, err := http.Post(ts.URL+"/api/v1/users", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var pref domain.UserPreference
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pref))
	assert.Equal(t, "generated-id", pref.UserID)
	assert.True(t, pref.Active)
	assert.True(t, pref.DailyDigest, "daily digest on by default")
	assert.False(t, pref.WeeklyDigest)

	require.Len(t, prefs.CreateUserCalls(), 1)
	assert.Equal(t, []string{"quantum computing"}, prefs.CreateUserCalls()[0].Pref.Keywords)
}

func TestServer_CreateUserValidation(t *testing.T) {
	prefs := &mocks.PreferenceStoreMock{}
	ts := testServer(t, Params{Preferences: prefs})

	tbl := []struct {
		name    string
		payload string
	}{
		{"missing email", `{"full_name":"No Email"}`},
		{"unknown category", `{"email":"u@example.com","categories":[99]}`},
		{"bad json", `{not json`},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/v1/users", "application/json", bytes.NewBufferString(tt.payload))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
	assert.Empty(t, prefs.CreateUserCalls())
}

func TestServer_GetPreferences(t *testing.T) {
	prefs := &mocks.PreferenceStoreMock{
		GetUserFunc: func(_ context.Context, userID string) (*domain.UserPreference, error) {
			if userID != "u1" {
				return nil, fmt.Errorf("user %s not found: %w", userID, sql.ErrNoRows)
			}
			return &domain.UserPreference{UserID: "u1", Email: "u1@example.com", Categories: []int64{1}}, nil
		},
	}
	ts := testServer(t, Params{Preferences: prefs})

	t.Run("found", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/users/u1/preferences")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var pref domain.UserPreference
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&pref))
		assert.Equal(t, "u1@example.com", pref.Email)
	})

	t.Run("missing", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/users/nobody/preferences")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_UpdatePreferences(t *testing.T) {
	prefs := &mocks.PreferenceStoreMock{
		GetUserFunc: func(_ context.Context, userID string) (*domain.UserPreference, error) {
			return &domain.UserPreference{
				UserID: "u1", Email: "u1@example.com", Active: true,
				DailyDigest: true, Categories: []int64{1}, Keywords: []string{"rust"},
			}, nil
		},
		UpdatePreferencesFunc: func(_ context.Context, pref *domain.UserPreference) error { return nil },
	}
	ts := testServer(t, Params{Preferences: prefs})

	payload := `{"weekly_digest":true,"categories":[2],"keywords":[]}`
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/v1/users/u1/preferences", bytes.NewBufferString(payload))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, prefs.UpdatePreferencesCalls(), 1)
	updated := prefs.UpdatePreferencesCalls()[0].Pref
	assert.True(t, updated.WeeklyDigest, "new flag applied")
	assert.True(t, updated.DailyDigest, "absent flag preserved")
	assert.Equal(t, []int64{2}, updated.Categories, "categories replaced")
	assert.Empty(t, updated.Keywords, "explicit empty list clears keywords")
	assert.Equal(t, "u1@example.com", updated.Email, "email untouched")
}

func TestServer_DigestPreview(t *testing.T) {
	prefs := &mocks.PreferenceStoreMock{
		GetUserFunc: func(_ context.Context, _ string) (*domain.UserPreference, error) {
			return &domain.UserPreference{UserID: "u1", Categories: []int64{1}}, nil
		},
	}
	articles := &mocks.ArticleStoreMock{
		GetArticlesSinceFunc: func(_ context.Context, _ time.Time, _ int) ([]domain.CategorizedArticle, error) {
			return []domain.CategorizedArticle{{Article: domain.Article{ID: "a1"}}}, nil
		},
	}
	selector := &mocks.SelectorMock{
		SelectFunc: func(user *domain.UserPreference, dt domain.DigestType, pool []domain.CategorizedArticle) *domain.DigestSelection {
			return &domain.DigestSelection{
				UserID: user.UserID,
				Type:   dt,
				Items:  []domain.DigestItem{{Article: pool[0].Article, Reason: domain.MatchCategory, Score: 8}},
			}
		},
	}
	ts := testServer(t, Params{Preferences: prefs, Articles: articles, Selector: selector})

	resp, err := http.Get(ts.URL + "/api/v1/users/u1/digest/preview?type=daily")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sel domain.DigestSelection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sel))
	assert.Equal(t, domain.DigestDaily, sel.Type)
	require.Len(t, sel.Items, 1)

	require.Len(t, selector.SelectCalls(), 1)
	assert.Equal(t, domain.DigestDaily, selector.SelectCalls()[0].Dt)
}

func TestServer_DigestPreviewBadType(t *testing.T) {
	ts := testServer(t, Params{Preferences: &mocks.PreferenceStoreMock{}})

	resp, err := http.Get(ts.URL + "/api/v1/users/u1/digest/preview?type=hourly")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_RunDigest(t *testing.T) {
	sched := &mocks.SchedulerMock{
		RunDigestNowFunc: func(_ context.Context, _ domain.DigestType) error { return nil },
	}
	ts := testServer(t, Params{Scheduler: sched})

	resp, err := http.Post(ts.URL+"/api/v1/digest/weekly/run", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, sched.RunDigestNowCalls(), 1)
	assert.Equal(t, domain.DigestWeekly, sched.RunDigestNowCalls()[0].Dt)
}

func TestServer_RunDigestBadType(t *testing.T) {
	sched := &mocks.SchedulerMock{}
	ts := testServer(t, Params{Scheduler: sched})

	resp, err := http.Post(ts.URL+"/api/v1/digest/instant/run", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, sched.RunDigestNowCalls())
}

func TestServer_Sync(t *testing.T) {
	sched := &mocks.SchedulerMock{
		SyncNowFunc: func(_ context.Context) error { return nil },
	}
	ts := testServer(t, Params{Scheduler: sched})

	resp, err := http.Post(ts.URL+"/api/v1/sync", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, sched.SyncNowCalls(), 1)
}
