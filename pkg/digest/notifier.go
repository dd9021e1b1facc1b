package digest

import (
	"github.com/dkhrunov/newsdigest/pkg/domain"
	"github.com/dkhrunov/newsdigest/pkg/scoring"
)

// Trigger decides which users get an instant notification for a freshly
// categorized article. Pure filter, no state: at-most-once delivery per
// (user, article) is enforced by the caller against the notification log.
type Trigger struct {
	impactThreshold int
}

// NewTrigger creates a trigger with the given impact threshold, the minimum
// top assignment score for an article to qualify for instant notifications.
func NewTrigger(impactThreshold int) *Trigger {
	if impactThreshold < 1 {
		impactThreshold = 7
	}
	return &Trigger{impactThreshold: impactThreshold}
}

// Recipients returns the subset of users to notify about the article.
// The article qualifies globally only when at least one assignment reaches
// the impact threshold. Among qualifying articles, a user is notified when a
// qualifying category is in their subscriptions or a custom keyword matches.
func (t *Trigger) Recipients(article *domain.CategorizedArticle, users []domain.UserPreference) []domain.UserPreference {
	qualifying := make(map[int64]bool)
	for _, a := range article.Assignments {
		if a.Score >= t.impactThreshold {
			qualifying[a.CategoryID] = true
		}
	}
	if len(qualifying) == 0 {
		return nil
	}

	var recipients []domain.UserPreference
	for _, u := range users {
		if !u.Active || !u.InstantEnabled {
			continue
		}

		matched := false
		for catID := range qualifying {
			if u.SubscribedTo(catID) {
				matched = true
				break
			}
		}
		if !matched && len(u.Keywords) > 0 {
			matched = scoring.MatchesAny(article.Text(), u.Keywords)
		}

		if matched {
			recipients = append(recipients, u)
		}
	}

	return recipients
}
