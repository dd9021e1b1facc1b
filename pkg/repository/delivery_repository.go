package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// DeliveryRepository handles digest and notification delivery logs
type DeliveryRepository struct {
	db *sqlx.DB
}

// NewDeliveryRepository creates a new delivery repository
func NewDeliveryRepository(db *sqlx.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

// digestLogSQL is the digest_log table row
type digestLogSQL struct {
	ID           int64     `db:"id"`
	UserID       string    `db:"user_id"`
	DigestType   string    `db:"digest_type"`
	SentAt       time.Time `db:"sent_at"`
	ArticleCount int       `db:"article_count"`
	Status       string    `db:"status"`
}

// notificationLogSQL is the notification_log table row
type notificationLogSQL struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	ArticleID string    `db:"article_id"`
	SentAt    time.Time `db:"sent_at"`
	Status    string    `db:"status"`
}

// DigestSentSince checks whether a digest of the given type was successfully
// sent to the user after the cutoff. Used to avoid double sends per period.
func (r *DeliveryRepository) DigestSentSince(ctx context.Context, userID string, dt domain.DigestType, since time.Time) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM digest_log
		WHERE user_id = ? AND digest_type = ? AND status = 'sent' AND sent_at >= ?
	`
	if err := r.db.GetContext(ctx, &count, query, userID, string(dt), since); err != nil {
		return false, fmt.Errorf("check digest sent: %w", err)
	}
	return count > 0, nil
}

// RecordDigest logs a digest delivery attempt
func (r *DeliveryRepository) RecordDigest(ctx context.Context, rec *domain.DigestRecord) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO digest_log (user_id, digest_type, article_count, status)
			VALUES (?, ?, ?, ?)
		`
		res, err := r.db.ExecContext(ctx, query, rec.UserID, string(rec.Type), rec.ArticleCount, string(rec.Status))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("record digest: %w", err)}
		}

		id, err := res.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		rec.ID = id
		return nil
	})
}

// GetDigestHistory retrieves recent digest deliveries for a user, newest first
func (r *DeliveryRepository) GetDigestHistory(ctx context.Context, userID string, limit int) ([]domain.DigestRecord, error) {
	var rows []digestLogSQL
	query := "SELECT * FROM digest_log WHERE user_id = ? ORDER BY sent_at DESC LIMIT ?"
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("get digest history: %w", err)
	}

	records := make([]domain.DigestRecord, len(rows))
	for i, row := range rows {
		records[i] = domain.DigestRecord{
			ID:           row.ID,
			UserID:       row.UserID,
			Type:         domain.DigestType(row.DigestType),
			SentAt:       row.SentAt,
			ArticleCount: row.ArticleCount,
			Status:       domain.DeliveryStatus(row.Status),
		}
	}
	return records, nil
}

// WasNotified checks whether the user was already notified about the article
func (r *DeliveryRepository) WasNotified(ctx context.Context, userID, articleID string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM notification_log WHERE user_id = ? AND article_id = ?"
	if err := r.db.GetContext(ctx, &count, query, userID, articleID); err != nil {
		return false, fmt.Errorf("check notification: %w", err)
	}
	return count > 0, nil
}

// RecordNotification logs an instant notification. The unique (user, article)
// constraint makes repeated records no-ops, guaranteeing at-most-once delivery.
func (r *DeliveryRepository) RecordNotification(ctx context.Context, rec *domain.NotificationRecord) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT OR IGNORE INTO notification_log (user_id, article_id, status)
			VALUES (?, ?, ?)
		`
		if _, err := r.db.ExecContext(ctx, query, rec.UserID, rec.ArticleID, string(rec.Status)); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("record notification: %w", err)}
		}
		return nil
	})
}
