package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

categories:
  - id: 1
    name: "AI & Machine Learning"
    keywords:
      - word: "openai"
        weight: 2
      - word: "llm"
  - id: 2
    name: "Security"
    keywords:
      - word: "vulnerability"

sources:
  - name: "hn"
    url: "https://news.ycombinator.com/rss"
  - name: "off"
    url: "https://example.com/feed.xml"
    disabled: true
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)

		require.Len(t, cfg.Categories, 2)
		assert.Equal(t, int64(1), cfg.Categories[0].ID)
		assert.Equal(t, "AI & Machine Learning", cfg.Categories[0].Name)
		assert.Equal(t, 2, cfg.Categories[0].Keywords[0].Weight)
		assert.Equal(t, 1, cfg.Categories[0].Keywords[1].Weight, "keyword weight defaults to 1")

		require.Len(t, cfg.Sources, 2)
		assert.False(t, cfg.Sources[0].Disabled)
		assert.True(t, cfg.Sources[1].Disabled)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "categories: []\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, "0 * * * *", cfg.Schedule.SyncSpec)
		assert.Equal(t, "0 9 * * *", cfg.Schedule.DailySpec)
		assert.Equal(t, "0 9 * * 1", cfg.Schedule.WeeklySpec)
		assert.Equal(t, 5, cfg.Schedule.MaxWorkers)
		assert.Equal(t, 3, cfg.Digest.ScoreThreshold)
		assert.Equal(t, 3, cfg.Digest.MaxCategories)
		assert.Equal(t, 7, cfg.Digest.ImpactThreshold)
		assert.Equal(t, 5, cfg.Digest.KeywordMatchScore)
		assert.Equal(t, 20, cfg.Digest.MaxItems)
		assert.Equal(t, 24*time.Hour, cfg.Digest.DailyWindow)
		assert.Equal(t, 7*24*time.Hour, cfg.Digest.WeeklyWindow)
		assert.Equal(t, 587, cfg.Email.Port)
		assert.Equal(t, "Tech News Digest", cfg.Email.FromName)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TEST_SMTP_PASSWORD", "s3cret")
		configContent := `
email:
  enabled: true
  host: smtp.example.com
  from: digest@example.com
  password: ${TEST_SMTP_PASSWORD}
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		assert.Equal(t, "s3cret", cfg.Email.Password)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("does-not-exist.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "categories: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tbl := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "score threshold out of range",
			content: "digest:\n  score_threshold: 11\n",
			errMsg:  "score_threshold",
		},
		{
			name:    "impact threshold out of range",
			content: "digest:\n  impact_threshold: 99\n",
			errMsg:  "impact_threshold",
		},
		{
			name:    "duplicate category id",
			content: "categories:\n  - id: 1\n    name: a\n  - id: 1\n    name: b\n",
			errMsg:  "duplicate category id",
		},
		{
			name:    "category without name",
			content: "categories:\n  - id: 1\n",
			errMsg:  "must have a name",
		},
		{
			name:    "category with non-positive id",
			content: "categories:\n  - id: 0\n    name: a\n",
			errMsg:  "positive id",
		},
		{
			name:    "source without url",
			content: "sources:\n  - name: broken\n",
			errMsg:  "must have a url",
		},
		{
			name:    "llm enabled without model",
			content: "llm:\n  enabled: true\n",
			errMsg:  "llm.model is required",
		},
		{
			name:    "email enabled without host",
			content: "email:\n  enabled: true\n  from: a@b.c\n",
			errMsg:  "email.host is required",
		},
		{
			name:    "email enabled without from",
			content: "email:\n  enabled: true\n  host: smtp.example.com\n",
			errMsg:  "email.from is required",
		},
		{
			name:    "server timeout too small",
			content: "server:\n  timeout: 1ms\n",
			errMsg:  "timeout",
		},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  listen: \":7777\"\n"))
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":7777", listen)
	assert.Equal(t, 30*time.Second, timeout)

	assert.Equal(t, cfg.Digest, cfg.GetDigestConfig())
	assert.Equal(t, cfg.LLM, cfg.GetLLMConfig())
	assert.Equal(t, cfg.Email, cfg.GetEmailConfig())
}
