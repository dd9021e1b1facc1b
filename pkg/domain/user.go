package domain

import "time"

// DigestType identifies a digest delivery schedule
type DigestType string

// supported digest types
const (
	DigestDaily   DigestType = "daily"
	DigestWeekly  DigestType = "weekly"
	DigestInstant DigestType = "instant"
)

// UserPreference holds a user's digest settings and subscriptions.
// It is read-only to the digest pipeline, mutated only via preference updates.
type UserPreference struct {
	UserID         string
	Email          string
	FullName       string
	Active         bool
	DailyDigest    bool
	WeeklyDigest   bool
	InstantEnabled bool
	DigestTime     string // HH:MM
	Categories     []int64
	Keywords       []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DigestEnabled reports whether the given digest type is enabled for the user
func (u *UserPreference) DigestEnabled(dt DigestType) bool {
	switch dt {
	case DigestDaily:
		return u.DailyDigest
	case DigestWeekly:
		return u.WeeklyDigest
	case DigestInstant:
		return u.InstantEnabled
	}
	return false
}

// SubscribedTo reports whether the user subscribes to the category
func (u *UserPreference) SubscribedTo(categoryID int64) bool {
	for _, id := range u.Categories {
		if id == categoryID {
			return true
		}
	}
	return false
}
