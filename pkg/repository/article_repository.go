package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// ArticleRepository handles article and category-assignment storage
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// articleSQL is the articles table row
type articleSQL struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Link      string    `db:"link"`
	Summary   string    `db:"summary"`
	AISummary string    `db:"ai_summary"`
	ImageURL  string    `db:"image_url"`
	Published time.Time `db:"published"`
	CreatedAt time.Time `db:"created_at"`
}

// assignmentSQL is the article_categories table row
type assignmentSQL struct {
	ArticleID  string `db:"article_id"`
	CategoryID int64  `db:"category_id"`
	Score      int    `db:"score"`
}

func (a *articleSQL) toDomain() domain.Article {
	return domain.Article{
		ID:        a.ID,
		Title:     a.Title,
		Link:      a.Link,
		Summary:   a.Summary,
		AISummary: a.AISummary,
		ImageURL:  a.ImageURL,
		Published: a.Published,
		CreatedAt: a.CreatedAt,
	}
}

// CreateArticle inserts a new article
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	row := &articleSQL{
		ID:        article.ID,
		Title:     article.Title,
		Link:      article.Link,
		Summary:   article.Summary,
		AISummary: article.AISummary,
		ImageURL:  article.ImageURL,
		Published: article.Published,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO articles (id, title, link, summary, ai_summary, image_url, published)
			VALUES (:id, :title, :link, :summary, :ai_summary, :image_url, :published)
		`
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create article: %w", err)}
		}
		return nil
	})
}

// ArticleExists checks whether an article with the given ID is already stored
func (r *ArticleRepository) ArticleExists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return count > 0, nil
}

// ReplaceAssignments replaces the category assignments of an article.
// Used both after initial categorization and on reprocessing.
func (r *ArticleRepository) ReplaceAssignments(ctx context.Context, articleID string, assignments []domain.CategoryAssignment) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		err := r.replaceAssignmentsTx(ctx, articleID, assignments)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		return nil
	})
}

// replaceAssignmentsTx performs the delete-and-insert in one transaction
func (r *ArticleRepository) replaceAssignmentsTx(ctx context.Context, articleID string, assignments []domain.CategoryAssignment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM article_categories WHERE article_id = ?", articleID); err != nil {
		return fmt.Errorf("delete assignments: %w", err)
	}

	for _, a := range assignments {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO article_categories (article_id, category_id, score) VALUES (?, ?, ?)",
			articleID, a.CategoryID, a.Score)
		if err != nil {
			return fmt.Errorf("insert assignment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit assignments: %w", err)
	}
	return nil
}

// GetArticle retrieves one article with its assignments
func (r *ArticleRepository) GetArticle(ctx context.Context, id string) (*domain.CategorizedArticle, error) {
	var row articleSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article %s not found: %w", id, sql.ErrNoRows)
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	articles, err := r.attachAssignments(ctx, []articleSQL{row})
	if err != nil {
		return nil, err
	}
	return &articles[0], nil
}

// GetArticlesSince retrieves categorized articles published after the cutoff,
// newest first
func (r *ArticleRepository) GetArticlesSince(ctx context.Context, since time.Time, limit int) ([]domain.CategorizedArticle, error) {
	var rows []articleSQL
	query := "SELECT * FROM articles WHERE published >= ? ORDER BY published DESC LIMIT ?"
	if err := r.db.SelectContext(ctx, &rows, query, since, limit); err != nil {
		return nil, fmt.Errorf("get articles since: %w", err)
	}
	return r.attachAssignments(ctx, rows)
}

// GetArticles retrieves recent articles with assignments, newest first
func (r *ArticleRepository) GetArticles(ctx context.Context, limit, offset int) ([]domain.CategorizedArticle, error) {
	var rows []articleSQL
	query := "SELECT * FROM articles ORDER BY published DESC LIMIT ? OFFSET ?"
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}
	return r.attachAssignments(ctx, rows)
}

// attachAssignments loads assignments for the given article rows, preserving
// score-descending order with category ID as tie-break
func (r *ArticleRepository) attachAssignments(ctx context.Context, rows []articleSQL) ([]domain.CategorizedArticle, error) {
	result := make([]domain.CategorizedArticle, len(rows))
	byID := make(map[string]*domain.CategorizedArticle, len(rows))
	ids := make([]string, len(rows))

	for i := range rows {
		result[i] = domain.CategorizedArticle{Article: rows[i].toDomain()}
		byID[rows[i].ID] = &result[i]
		ids[i] = rows[i].ID
	}

	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(
		"SELECT * FROM article_categories WHERE article_id IN (?) ORDER BY score DESC, category_id ASC", ids)
	if err != nil {
		return nil, fmt.Errorf("build assignments query: %w", err)
	}
	query = r.db.Rebind(query)

	var assignments []assignmentSQL
	if err := r.db.SelectContext(ctx, &assignments, query, args...); err != nil {
		return nil, fmt.Errorf("get assignments: %w", err)
	}

	for _, a := range assignments {
		art := byID[a.ArticleID]
		art.Assignments = append(art.Assignments, domain.CategoryAssignment{
			ArticleID:  a.ArticleID,
			CategoryID: a.CategoryID,
			Score:      a.Score,
		})
	}

	return result, nil
}
