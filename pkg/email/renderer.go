package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/dkhrunov/newsdigest/pkg/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer produces digest and notification emails from selections.
// Rendering is pure, delivery belongs to a Sender.
type Renderer struct {
	digest       *template.Template
	notification *template.Template
}

// NewRenderer parses the embedded email templates
func NewRenderer() (*Renderer, error) {
	digest, err := template.ParseFS(templatesFS, "templates/digest.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse digest template: %w", err)
	}
	notification, err := template.ParseFS(templatesFS, "templates/notification.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse notification template: %w", err)
	}
	return &Renderer{digest: digest, notification: notification}, nil
}

// digestData is the template context for digest emails
type digestData struct {
	Name    string
	Date    string
	Type    string
	Total   int
	Items   []digestItemData
}

// digestItemData is one article entry in a digest email
type digestItemData struct {
	Title     string
	Link      string
	Summary   string
	Category  string
	Keyword   bool
	Published string
}

// RenderDigest renders a digest selection into subject and HTML body.
// categoryNames maps category IDs to display names for the item labels.
func (r *Renderer) RenderDigest(user *domain.UserPreference, sel *domain.DigestSelection, categoryNames map[int64]string) (subject, body string, err error) {
	name := user.FullName
	if name == "" {
		name = "there"
	}

	data := digestData{
		Name:  name,
		Date:  sel.GeneratedAt.Format("Monday, January 2, 2006"),
		Type:  string(sel.Type),
		Total: len(sel.Items),
		Items: make([]digestItemData, 0, len(sel.Items)),
	}

	for _, item := range sel.Items {
		entry := digestItemData{
			Title:     item.Article.Title,
			Link:      item.Article.Link,
			Summary:   item.Article.Summary,
			Keyword:   item.Reason == domain.MatchKeyword,
			Published: item.Article.Published.Format("Jan 2, 15:04"),
		}
		if item.Article.AISummary != "" {
			entry.Summary = item.Article.AISummary
		}
		if item.Reason == domain.MatchCategory {
			entry.Category = categoryNames[item.CategoryID]
		}
		data.Items = append(data.Items, entry)
	}

	var buf bytes.Buffer
	if err := r.digest.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render digest: %w", err)
	}

	switch sel.Type {
	case domain.DigestWeekly:
		subject = fmt.Sprintf("Your Weekly Tech Digest - %s", sel.GeneratedAt.Format("Jan 2"))
	default:
		subject = fmt.Sprintf("Your Daily Tech Digest - %s", sel.GeneratedAt.Format("Jan 2"))
	}

	return subject, buf.String(), nil
}

// notificationData is the template context for instant notifications
type notificationData struct {
	Name    string
	Title   string
	Link    string
	Summary string
	Date    string
}

// RenderNotification renders an instant notification for one article
func (r *Renderer) RenderNotification(user *domain.UserPreference, article *domain.Article) (subject, body string, err error) {
	name := user.FullName
	if name == "" {
		name = "there"
	}

	summary := article.Summary
	if article.AISummary != "" {
		summary = article.AISummary
	}

	data := notificationData{
		Name:    name,
		Title:   article.Title,
		Link:    article.Link,
		Summary: summary,
		Date:    time.Now().Format("Monday, January 2, 2006"),
	}

	var buf bytes.Buffer
	if err := r.notification.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render notification: %w", err)
	}

	return fmt.Sprintf("Breaking: %s", article.Title), buf.String(), nil
}
