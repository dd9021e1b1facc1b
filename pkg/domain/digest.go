package domain

import "time"

// MatchReason explains why an article was included in a digest
type MatchReason string

// inclusion reasons, category match ranks above keyword match
const (
	MatchCategory MatchReason = "category"
	MatchKeyword  MatchReason = "keyword"
)

// DigestItem is one article selected for a digest with its inclusion reason
type DigestItem struct {
	Article    Article
	Reason     MatchReason
	Score      int
	CategoryID int64 // set for category matches, 0 for keyword matches
}

// DigestSelection is the ordered result of a digest run for one user.
// It is ephemeral, constructed per run and handed to the delivery collaborator.
type DigestSelection struct {
	UserID      string
	Type        DigestType
	Items       []DigestItem
	GeneratedAt time.Time
}

// Empty reports whether the selection contains no articles
func (d *DigestSelection) Empty() bool { return len(d.Items) == 0 }

// DeliveryStatus is the outcome of a digest or notification delivery attempt
type DeliveryStatus string

// delivery statuses
const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// DigestRecord logs a digest delivery attempt
type DigestRecord struct {
	ID           int64
	UserID       string
	Type         DigestType
	SentAt       time.Time
	ArticleCount int
	Status       DeliveryStatus
}

// NotificationRecord logs an instant notification, unique per (user, article)
type NotificationRecord struct {
	ID        int64
	UserID    string
	ArticleID string
	SentAt    time.Time
	Status    DeliveryStatus
}
