package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// PreferenceRepository handles user preference storage
type PreferenceRepository struct {
	db *sqlx.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// userSQL is the users table row
type userSQL struct {
	ID             string    `db:"id"`
	Email          string    `db:"email"`
	FullName       string    `db:"full_name"`
	Active         bool      `db:"active"`
	DailyDigest    bool      `db:"daily_digest"`
	WeeklyDigest   bool      `db:"weekly_digest"`
	InstantEnabled bool      `db:"instant_enabled"`
	DigestTime     string    `db:"digest_time"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (u *userSQL) toDomain() domain.UserPreference {
	return domain.UserPreference{
		UserID:         u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Active:         u.Active,
		DailyDigest:    u.DailyDigest,
		WeeklyDigest:   u.WeeklyDigest,
		InstantEnabled: u.InstantEnabled,
		DigestTime:     u.DigestTime,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// CreateUser inserts a new user with default preferences. Generates the user
// ID when the caller leaves it empty.
func (r *PreferenceRepository) CreateUser(ctx context.Context, pref *domain.UserPreference) error {
	if pref.UserID == "" {
		pref.UserID = uuid.NewString()
	}
	row := &userSQL{
		ID:             pref.UserID,
		Email:          pref.Email,
		FullName:       pref.FullName,
		Active:         pref.Active,
		DailyDigest:    pref.DailyDigest,
		WeeklyDigest:   pref.WeeklyDigest,
		InstantEnabled: pref.InstantEnabled,
		DigestTime:     pref.DigestTime,
	}
	if row.DigestTime == "" {
		row.DigestTime = "09:00"
	}

	query := `
		INSERT INTO users (id, email, full_name, active, daily_digest, weekly_digest, instant_enabled, digest_time)
		VALUES (:id, :email, :full_name, :active, :daily_digest, :weekly_digest, :instant_enabled, :digest_time)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if err := r.replaceSubscriptions(ctx, pref.UserID, pref.Categories, pref.Keywords); err != nil {
		return err
	}
	return nil
}

// GetUser retrieves one user's preferences including subscriptions
func (r *PreferenceRepository) GetUser(ctx context.Context, userID string) (*domain.UserPreference, error) {
	var row userSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM users WHERE id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s not found: %w", userID, sql.ErrNoRows)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	pref := row.toDomain()
	if err := r.loadSubscriptions(ctx, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpdatePreferences updates digest flags, delivery time and subscriptions
func (r *PreferenceRepository) UpdatePreferences(ctx context.Context, pref *domain.UserPreference) error {
	query := `
		UPDATE users
		SET daily_digest = ?, weekly_digest = ?, instant_enabled = ?, digest_time = ?,
		    active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		pref.DailyDigest, pref.WeeklyDigest, pref.InstantEnabled, pref.DigestTime,
		pref.Active, pref.UserID)
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s not found", pref.UserID)
	}

	return r.replaceSubscriptions(ctx, pref.UserID, pref.Categories, pref.Keywords)
}

// GetActiveUsers retrieves all active users with the given digest type enabled
func (r *PreferenceRepository) GetActiveUsers(ctx context.Context, dt domain.DigestType) ([]domain.UserPreference, error) {
	var column string
	switch dt {
	case domain.DigestDaily:
		column = "daily_digest"
	case domain.DigestWeekly:
		column = "weekly_digest"
	case domain.DigestInstant:
		column = "instant_enabled"
	default:
		return nil, fmt.Errorf("unknown digest type %q", dt)
	}

	var rows []userSQL
	query := fmt.Sprintf("SELECT * FROM users WHERE active = 1 AND %s = 1 ORDER BY id", column)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get active users: %w", err)
	}

	prefs := make([]domain.UserPreference, len(rows))
	for i := range rows {
		prefs[i] = rows[i].toDomain()
		if err := r.loadSubscriptions(ctx, &prefs[i]); err != nil {
			return nil, err
		}
	}
	return prefs, nil
}

// loadSubscriptions fills the subscribed categories and custom keywords
func (r *PreferenceRepository) loadSubscriptions(ctx context.Context, pref *domain.UserPreference) error {
	err := r.db.SelectContext(ctx, &pref.Categories,
		"SELECT category_id FROM user_categories WHERE user_id = ? ORDER BY category_id", pref.UserID)
	if err != nil {
		return fmt.Errorf("get user categories: %w", err)
	}

	err = r.db.SelectContext(ctx, &pref.Keywords,
		"SELECT keyword FROM user_keywords WHERE user_id = ? ORDER BY keyword", pref.UserID)
	if err != nil {
		return fmt.Errorf("get user keywords: %w", err)
	}
	return nil
}

// replaceSubscriptions replaces category and keyword subscriptions in one transaction
func (r *PreferenceRepository) replaceSubscriptions(ctx context.Context, userID string, categories []int64, keywords []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM user_categories WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("delete user categories: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM user_keywords WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("delete user keywords: %w", err)
	}

	for _, catID := range categories {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO user_categories (user_id, category_id) VALUES (?, ?)", userID, catID); err != nil {
			return fmt.Errorf("insert user category: %w", err)
		}
	}
	for _, kw := range keywords {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO user_keywords (user_id, keyword) VALUES (?, ?)", userID, kw); err != nil {
			return fmt.Errorf("insert user keyword: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit subscriptions: %w", err)
	}
	return nil
}
