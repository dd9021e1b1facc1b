package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhrunov/newsdigest/pkg/domain"
)

func TestRenderer_RenderDigest(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	generated := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	user := &domain.UserPreference{UserID: "u1", Email: "alice@example.com", FullName: "Alice"}
	sel := &domain.DigestSelection{
		UserID:      "u1",
		Type:        domain.DigestDaily,
		GeneratedAt: generated,
		Items: []domain.DigestItem{
			{
				Article: domain.Article{
					Title:     "OpenAI model update",
					Link:      "https://example.com/a1",
					Summary:   "plain summary",
					AISummary: "condensed ai summary",
					Published: generated.Add(-2 * time.Hour),
				},
				Reason:     domain.MatchCategory,
				Score:      8,
				CategoryID: 1,
			},
			{
				Article: domain.Article{
					Title:     "Quantum computing breakthrough",
					Link:      "https://example.com/a2",
					Summary:   "qubits",
					Published: generated.Add(-3 * time.Hour),
				},
				Reason: domain.MatchKeyword,
				Score:  5,
			},
		},
	}
	names := map[int64]string{1: "AI & Machine Learning"}

	subject, body, err := r.RenderDigest(user, sel, names)
	require.NoError(t, err)

	assert.Equal(t, "Your Daily Tech Digest - Jun 2", subject)
	assert.Contains(t, body, "Hi Alice!")
	assert.Contains(t, body, "Daily Tech Digest")
	assert.Contains(t, body, "Monday, June 2, 2025")
	assert.Contains(t, body, "OpenAI model update")
	assert.Contains(t, body, "condensed ai summary", "ai summary preferred over the plain one")
	assert.NotContains(t, body, "plain summary")
	assert.Contains(t, body, "AI &amp; Machine Learning", "category label shown for category matches")
	assert.Contains(t, body, "keyword match", "keyword tag shown for keyword matches")
	assert.Contains(t, body, "https://example.com/a2")
}

func TestRenderer_RenderDigest_Weekly(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	sel := &domain.DigestSelection{
		UserID:      "u1",
		Type:        domain.DigestWeekly,
		GeneratedAt: time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC),
	}

	subject, body, err := r.RenderDigest(&domain.UserPreference{}, sel, nil)
	require.NoError(t, err)
	assert.Equal(t, "Your Weekly Tech Digest - Jun 8", subject)
	assert.Contains(t, body, "Weekly Tech Digest")
	assert.Contains(t, body, "Hi there!", "missing name falls back to a generic greeting")
}

func TestRenderer_RenderNotification(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	user := &domain.UserPreference{FullName: "Bob"}
	article := &domain.Article{
		Title:   "Critical vulnerability disclosed",
		Link:    "https://example.com/vuln",
		Summary: "patch now",
	}

	subject, body, err := r.RenderNotification(user, article)
	require.NoError(t, err)
	assert.Equal(t, "Breaking: Critical vulnerability disclosed", subject)
	assert.Contains(t, body, "Hi Bob,")
	assert.Contains(t, body, "Critical vulnerability disclosed")
	assert.Contains(t, body, "patch now")
	assert.Contains(t, body, "https://example.com/vuln")
}

func TestRenderer_RenderNotification_AISummary(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	article := &domain.Article{
		Title:     "Big release",
		Link:      "https://example.com/rel",
		Summary:   "long original text",
		AISummary: "tight summary",
	}

	_, body, err := r.RenderNotification(&domain.UserPreference{}, article)
	require.NoError(t, err)
	assert.Contains(t, body, "tight summary")
	assert.NotContains(t, body, "long original text")
}
