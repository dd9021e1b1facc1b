package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/dkhrunov/newsdigest/pkg/category"
	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// ErrMalformedArticle indicates an article with no usable text fields.
// Such articles are rejected instead of being silently scored 0 everywhere.
var ErrMalformedArticle = errors.New("article has no text fields")

// Categorizer assigns categories to articles by keyword relevance
type Categorizer struct {
	registry      *category.Registry
	threshold     int
	maxCategories int
}

// NewCategorizer creates a categorizer over the given registry.
// Articles get at most maxCategories assignments, each scoring at least threshold.
func NewCategorizer(registry *category.Registry, threshold, maxCategories int) *Categorizer {
	if threshold < 1 {
		threshold = 3
	}
	if maxCategories < 1 {
		maxCategories = 3
	}
	return &Categorizer{registry: registry, threshold: threshold, maxCategories: maxCategories}
}

// Result is the outcome of categorizing one article. Uncategorized is an
// explicit state, distinct from an empty assignment list caused by an error.
type Result struct {
	ArticleID     string
	Assignments   []domain.CategoryAssignment
	Uncategorized bool
}

// Categorize scores the article against every category and returns the
// qualifying assignments ordered by score descending, ties broken by
// category ID ascending. Deterministic for identical input.
func (c *Categorizer) Categorize(article *domain.Article) (*Result, error) {
	if strings.TrimSpace(article.Title) == "" && strings.TrimSpace(article.Summary) == "" &&
		strings.TrimSpace(article.AISummary) == "" {
		return nil, fmt.Errorf("article %s: %w", article.ID, ErrMalformedArticle)
	}

	text := article.Text()

	assignments := make([]domain.CategoryAssignment, 0, c.maxCategories)
	for _, cat := range c.registry.All() {
		if len(cat.Keywords) == 0 {
			continue
		}
		score := Score(text, cat.Keywords)
		if score < c.threshold {
			continue
		}
		assignments = append(assignments, domain.CategoryAssignment{
			ArticleID:  article.ID,
			CategoryID: cat.ID,
			Score:      score,
		})
	}

	// registry iteration is ID-ascending, stable sort preserves that for ties
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].Score > assignments[j].Score
	})

	if len(assignments) > c.maxCategories {
		assignments = assignments[:c.maxCategories]
	}

	return &Result{
		ArticleID:     article.ID,
		Assignments:   assignments,
		Uncategorized: len(assignments) == 0,
	}, nil
}

// BatchResult aggregates per-article categorization outcomes
type BatchResult struct {
	Results []*Result
	Failed  map[string]error
}

// CategorizeBatch categorizes a batch of articles, isolating per-article
// failures so one malformed article does not abort the rest.
func (c *Categorizer) CategorizeBatch(articles []*domain.Article) *BatchResult {
	batch := &BatchResult{
		Results: make([]*Result, 0, len(articles)),
		Failed:  make(map[string]error),
	}

	for _, article := range articles {
		res, err := c.Categorize(article)
		if err != nil {
			lgr.Printf("[WARN] failed to categorize article %s: %v", article.ID, err)
			batch.Failed[article.ID] = err
			continue
		}
		batch.Results = append(batch.Results, res)
	}

	return batch
}

// Verify checks that every assignment references a registry category.
// A violation is an internal-consistency error (category.ErrUnknownCategory).
func (c *Categorizer) Verify(assignments []domain.CategoryAssignment) error {
	for _, a := range assignments {
		if _, err := c.registry.Get(a.CategoryID); err != nil {
			return fmt.Errorf("assignment for article %s: %w", a.ArticleID, err)
		}
	}
	return nil
}
