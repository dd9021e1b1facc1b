package scheduler

import (
	"context"
	"time"

	"github.com/dkhrunov/newsdigest/pkg/config"
	"github.com/dkhrunov/newsdigest/pkg/domain"
	"github.com/dkhrunov/newsdigest/pkg/scoring"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/preference_store.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore
//go:generate moq -out mocks/delivery_store.go -pkg mocks -skip-ensure -fmt goimports . DeliveryStore
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// ArticleStore persists articles and their category assignments
type ArticleStore interface {
	ArticleExists(ctx context.Context, id string) (bool, error)
	CreateArticle(ctx context.Context, article *domain.Article) error
	ReplaceAssignments(ctx context.Context, articleID string, assignments []domain.CategoryAssignment) error
	GetArticlesSince(ctx context.Context, since time.Time, limit int) ([]domain.CategorizedArticle, error)
}

// PreferenceStore provides user preferences
type PreferenceStore interface {
	GetActiveUsers(ctx context.Context, dt domain.DigestType) ([]domain.UserPreference, error)
}

// DeliveryStore tracks digest and notification deliveries
type DeliveryStore interface {
	DigestSentSince(ctx context.Context, userID string, dt domain.DigestType, since time.Time) (bool, error)
	RecordDigest(ctx context.Context, rec *domain.DigestRecord) error
	WasNotified(ctx context.Context, userID, articleID string) (bool, error)
	RecordNotification(ctx context.Context, rec *domain.NotificationRecord) error
}

// Fetcher retrieves articles from a source feed
type Fetcher interface {
	Fetch(ctx context.Context, source config.SourceConfig) ([]domain.Article, error)
}

// Summarizer generates AI summaries for articles
type Summarizer interface {
	Summarize(ctx context.Context, article *domain.Article) (string, error)
}

// Categorizer assigns categories to one article
type Categorizer interface {
	Categorize(article *domain.Article) (*scoring.Result, error)
}

// Selector builds a digest selection for one user
type Selector interface {
	Select(user *domain.UserPreference, dt domain.DigestType, pool []domain.CategorizedArticle) *domain.DigestSelection
}

// Trigger decides instant-notification recipients for an article
type Trigger interface {
	Recipients(article *domain.CategorizedArticle, users []domain.UserPreference) []domain.UserPreference
}

// Renderer produces email subject and body for digests and notifications
type Renderer interface {
	RenderDigest(user *domain.UserPreference, sel *domain.DigestSelection, categoryNames map[int64]string) (subject, body string, err error)
	RenderNotification(user *domain.UserPreference, article *domain.Article) (subject, body string, err error)
}

// Sender delivers rendered emails
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
