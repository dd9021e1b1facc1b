package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// poolLimit caps how many recent articles a single digest run considers
const poolLimit = 500

// DigestProcessor builds and delivers daily and weekly digests. Users are
// processed concurrently with a bounded worker count; a failure for one user
// does not block the others.
type DigestProcessor struct {
	DigestParams
}

// DigestParams holds dependencies and settings for DigestProcessor
type DigestParams struct {
	Articles      ArticleStore
	Preferences   PreferenceStore
	Delivery      DeliveryStore
	Selector      Selector
	Renderer      Renderer
	Sender        Sender
	CategoryNames map[int64]string
	DailyWindow   time.Duration
	WeeklyWindow  time.Duration
	MaxWorkers    int
}

// NewDigestProcessor creates a digest processor
func NewDigestProcessor(params DigestParams) *DigestProcessor {
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = 5
	}
	if params.DailyWindow <= 0 {
		params.DailyWindow = 24 * time.Hour
	}
	if params.WeeklyWindow <= 0 {
		params.WeeklyWindow = 7 * 24 * time.Hour
	}
	return &DigestProcessor{DigestParams: params}
}

// Run generates digests of the given type for all subscribed users. It fails
// fast if the user list or the article pool can't be loaded, since sending
// empty digests on a storage failure would be worse than sending none.
func (p *DigestProcessor) Run(ctx context.Context, dt domain.DigestType) error {
	window, err := p.window(dt)
	if err != nil {
		return err
	}

	users, err := p.Preferences.GetActiveUsers(ctx, dt)
	if err != nil {
		return fmt.Errorf("load %s digest users: %w", dt, err)
	}
	if len(users) == 0 {
		lgr.Printf("[INFO] no users subscribed to %s digest", dt)
		return nil
	}

	pool, err := p.Articles.GetArticlesSince(ctx, time.Now().Add(-window), poolLimit)
	if err != nil {
		return fmt.Errorf("load article pool for %s digest: %w", dt, err)
	}

	var sent, skipped, failed int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.MaxWorkers)
	for i := range users {
		user := users[i]
		g.Go(func() error {
			delivered, err := p.processUser(gctx, &user, dt, pool)
			switch {
			case err != nil:
				lgr.Printf("[ERROR] failed to deliver %s digest to user %s: %v", dt, user.UserID, err)
				atomic.AddInt64(&failed, 1)
			case delivered:
				atomic.AddInt64(&sent, 1)
			default:
				atomic.AddInt64(&skipped, 1)
			}
			return nil
		})
	}
	_ = g.Wait() // workers report errors via counters

	lgr.Printf("[INFO] %s digest run completed, sent: %d, skipped: %d, failed: %d", dt, sent, skipped, failed)
	return nil
}

// processUser delivers one user's digest. Returns false when the digest was
// already sent this period or nothing matched the user's interests.
func (p *DigestProcessor) processUser(ctx context.Context, user *domain.UserPreference, dt domain.DigestType, pool []domain.CategorizedArticle) (bool, error) {
	already, err := p.Delivery.DigestSentSince(ctx, user.UserID, dt, p.periodStart(dt, time.Now()))
	if err != nil {
		return false, fmt.Errorf("check digest log: %w", err)
	}
	if already {
		lgr.Printf("[DEBUG] %s digest already sent to user %s this period", dt, user.UserID)
		return false, nil
	}

	sel := p.Selector.Select(user, dt, pool)
	if sel.Empty() {
		lgr.Printf("[DEBUG] no matching articles for user %s, %s digest skipped", user.UserID, dt)
		return false, nil
	}

	subject, body, err := p.Renderer.RenderDigest(user, sel, p.CategoryNames)
	if err != nil {
		return false, fmt.Errorf("render digest: %w", err)
	}

	status := domain.DeliverySent
	sendErr := p.Sender.Send(ctx, user.Email, subject, body)
	if sendErr != nil {
		status = domain.DeliveryFailed
	}

	rec := &domain.DigestRecord{
		UserID:       user.UserID,
		Type:         dt,
		ArticleCount: len(sel.Items),
		Status:       status,
		SentAt:       time.Now(),
	}
	if err := p.Delivery.RecordDigest(ctx, rec); err != nil {
		lgr.Printf("[WARN] failed to record %s digest for user %s: %v", dt, user.UserID, err)
	}
	if sendErr != nil {
		return false, fmt.Errorf("send digest: %w", sendErr)
	}
	return true, nil
}

// window returns how far back the article pool reaches for a digest type
func (p *DigestProcessor) window(dt domain.DigestType) (time.Duration, error) {
	switch dt {
	case domain.DigestDaily:
		return p.DailyWindow, nil
	case domain.DigestWeekly:
		return p.WeeklyWindow, nil
	default:
		return 0, fmt.Errorf("unsupported digest type %q", dt)
	}
}

// periodStart returns the cutoff for the already-sent check: midnight today
// for daily digests, seven days back for weekly
func (p *DigestProcessor) periodStart(dt domain.DigestType, now time.Time) time.Time {
	if dt == domain.DigestDaily {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	return now.Add(-7 * 24 * time.Hour)
}
