package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/dkhrunov/newsdigest/pkg/config"
	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// IngestProcessor pulls articles from the configured sources, summarizes and
// categorizes them, stores new ones and fires instant notifications for
// high-impact articles. A failure on one article or source never aborts the
// rest of the sync.
type IngestProcessor struct {
	IngestParams
}

// IngestParams holds dependencies and settings for IngestProcessor
type IngestParams struct {
	Articles    ArticleStore
	Preferences PreferenceStore
	Delivery    DeliveryStore
	Fetcher     Fetcher
	Summarizer  Summarizer // optional, nil disables AI summaries
	Categorizer Categorizer
	Trigger     Trigger
	Renderer    Renderer
	Sender      Sender
	Sources     []config.SourceConfig
}

// NewIngestProcessor creates an ingest processor
func NewIngestProcessor(params IngestParams) *IngestProcessor {
	return &IngestProcessor{IngestParams: params}
}

// Sync fetches all enabled sources and processes their articles. Per-source
// and per-article errors are logged and skipped; only a canceled context
// aborts the run.
func (p *IngestProcessor) Sync(ctx context.Context) error {
	started := time.Now()

	instantUsers, err := p.Preferences.GetActiveUsers(ctx, domain.DigestInstant)
	if err != nil {
		lgr.Printf("[WARN] failed to load instant-notification users, notifications skipped: %v", err)
		instantUsers = nil
	}

	var created, skipped, failed int
	for _, src := range p.Sources {
		if src.Disabled {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		articles, err := p.Fetcher.Fetch(ctx, src)
		if err != nil {
			lgr.Printf("[ERROR] failed to fetch source %s: %v", src.Name, err)
			failed++
			continue
		}

		for i := range articles {
			isNew, err := p.processArticle(ctx, &articles[i], instantUsers)
			if err != nil {
				lgr.Printf("[WARN] failed to process article %s: %v", articles[i].ID, err)
				failed++
				continue
			}
			if isNew {
				created++
			} else {
				skipped++
			}
		}
	}

	lgr.Printf("[INFO] sync completed in %v, created: %d, skipped: %d, failed: %d",
		time.Since(started).Round(time.Millisecond), created, skipped, failed)
	return nil
}

// processArticle stores one article if it is new. Returns false for articles
// already seen.
func (p *IngestProcessor) processArticle(ctx context.Context, article *domain.Article, instantUsers []domain.UserPreference) (bool, error) {
	exists, err := p.Articles.ArticleExists(ctx, article.ID)
	if err != nil {
		return false, fmt.Errorf("check article existence: %w", err)
	}
	if exists {
		return false, nil
	}

	if p.Summarizer != nil {
		summary, err := p.Summarizer.Summarize(ctx, article)
		if err != nil {
			lgr.Printf("[WARN] failed to summarize article %s: %v", article.ID, err)
		} else {
			article.AISummary = summary
		}
	}

	res, err := p.Categorizer.Categorize(article)
	if err != nil {
		return false, fmt.Errorf("categorize article: %w", err)
	}

	if err := p.Articles.CreateArticle(ctx, article); err != nil {
		return false, fmt.Errorf("create article: %w", err)
	}
	if len(res.Assignments) > 0 {
		if err := p.Articles.ReplaceAssignments(ctx, article.ID, res.Assignments); err != nil {
			return false, fmt.Errorf("save assignments: %w", err)
		}
	}
	if res.Uncategorized {
		lgr.Printf("[DEBUG] article %s matched no categories", article.ID)
	}

	categorized := &domain.CategorizedArticle{Article: *article, Assignments: res.Assignments}
	p.notify(ctx, categorized, instantUsers)
	return true, nil
}

// notify sends instant notifications to qualifying users, once per
// user/article pair
func (p *IngestProcessor) notify(ctx context.Context, article *domain.CategorizedArticle, users []domain.UserPreference) {
	recipients := p.Trigger.Recipients(article, users)
	for i := range recipients {
		user := &recipients[i]

		sent, err := p.Delivery.WasNotified(ctx, user.UserID, article.ID)
		if err != nil {
			lgr.Printf("[WARN] failed to check notification log for user %s: %v", user.UserID, err)
			continue
		}
		if sent {
			continue
		}

		subject, body, err := p.Renderer.RenderNotification(user, &article.Article)
		if err != nil {
			lgr.Printf("[WARN] failed to render notification for user %s: %v", user.UserID, err)
			continue
		}

		status := domain.DeliverySent
		if err := p.Sender.Send(ctx, user.Email, subject, body); err != nil {
			lgr.Printf("[WARN] failed to send notification to %s: %v", user.Email, err)
			status = domain.DeliveryFailed
		}

		rec := &domain.NotificationRecord{
			UserID:    user.UserID,
			ArticleID: article.ID,
			Status:    status,
			SentAt:    time.Now(),
		}
		if err := p.Delivery.RecordNotification(ctx, rec); err != nil {
			lgr.Printf("[WARN] failed to record notification for user %s: %v", user.UserID, err)
		}
	}
}
