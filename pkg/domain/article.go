package domain

import "time"

// Article represents a single ingested news article
type Article struct {
	ID        string
	Title     string
	Link      string
	Summary   string
	AISummary string
	ImageURL  string
	Published time.Time
	CreatedAt time.Time
}

// Text returns the concatenated text fields used for keyword matching
func (a *Article) Text() string {
	return a.Title + " " + a.Summary + " " + a.AISummary
}

// CategoryAssignment links an article to a category with a relevance score (1-10)
type CategoryAssignment struct {
	ArticleID  string
	CategoryID int64
	Score      int
}

// CategorizedArticle is an article together with its category assignments.
// An article with no assignments is uncategorized.
type CategorizedArticle struct {
	Article
	Assignments []CategoryAssignment
}

// TopScore returns the highest assignment score, 0 when uncategorized
func (c *CategorizedArticle) TopScore() int {
	top := 0
	for _, a := range c.Assignments {
		if a.Score > top {
			top = a.Score
		}
	}
	return top
}
