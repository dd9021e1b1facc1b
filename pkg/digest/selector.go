package digest

import (
	"sort"
	"time"

	"github.com/dkhrunov/newsdigest/pkg/domain"
	"github.com/dkhrunov/newsdigest/pkg/scoring"
)

// Selector builds per-user digest selections from a pool of categorized
// articles. It is pure decision logic: fetching the pool and delivering the
// result belong to the caller, so upstream fetch failures surface there and
// are never mistaken for an empty selection.
type Selector struct {
	keywordMatchScore int
	maxItems          int
}

// NewSelector creates a selector. keywordMatchScore is the fixed rank score
// for custom-keyword matches, maxItems caps the digest length.
func NewSelector(keywordMatchScore, maxItems int) *Selector {
	if keywordMatchScore < 1 {
		keywordMatchScore = 5
	}
	if maxItems < 1 {
		maxItems = 20
	}
	return &Selector{keywordMatchScore: keywordMatchScore, maxItems: maxItems}
}

// Select picks and ranks articles for one user. An article qualifies when its
// assignments intersect the user's subscribed categories or its text matches a
// custom keyword. Each article appears once, tagged with the higher-priority
// reason (category above keyword). Ordered by score descending, ties by
// published timestamp descending, then by article ID for full determinism.
func (s *Selector) Select(user *domain.UserPreference, dt domain.DigestType, pool []domain.CategorizedArticle) *domain.DigestSelection {
	items := make([]domain.DigestItem, 0, len(pool))

	for i := range pool {
		art := &pool[i]

		if item, ok := s.categoryMatch(user, art); ok {
			items = append(items, item)
			continue
		}

		if len(user.Keywords) > 0 && scoring.MatchesAny(art.Text(), user.Keywords) {
			items = append(items, domain.DigestItem{
				Article: art.Article,
				Reason:  domain.MatchKeyword,
				Score:   s.keywordMatchScore,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		if !items[i].Article.Published.Equal(items[j].Article.Published) {
			return items[i].Article.Published.After(items[j].Article.Published)
		}
		return items[i].Article.ID < items[j].Article.ID
	})

	if len(items) > s.maxItems {
		items = items[:s.maxItems]
	}

	return &domain.DigestSelection{
		UserID:      user.UserID,
		Type:        dt,
		Items:       items,
		GeneratedAt: time.Now(),
	}
}

// categoryMatch returns the best subscribed-category match for the article.
// The highest score wins, ties go to the lowest category ID.
func (s *Selector) categoryMatch(user *domain.UserPreference, art *domain.CategorizedArticle) (domain.DigestItem, bool) {
	best := domain.DigestItem{}
	found := false

	for _, a := range art.Assignments {
		if !user.SubscribedTo(a.CategoryID) {
			continue
		}
		if !found || a.Score > best.Score || (a.Score == best.Score && a.CategoryID < best.CategoryID) {
			best = domain.DigestItem{
				Article:    art.Article,
				Reason:     domain.MatchCategory,
				Score:      a.Score,
				CategoryID: a.CategoryID,
			}
			found = true
		}
	}

	return best, found
}
