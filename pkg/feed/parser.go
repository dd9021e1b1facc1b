package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/dkhrunov/newsdigest/pkg/config"
	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// Parser fetches RSS/Atom feeds and converts entries to articles
type Parser struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	if userAgent == "" {
		userAgent = "newsdigest/1.0"
	}
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Fetch retrieves and parses a source feed into articles. Summaries are
// stripped of HTML markup, article IDs come from the entry GUID or link.
func (p *Parser) Fetch(ctx context.Context, source config.SourceConfig) ([]domain.Article, error) {
	body, err := p.fetch(ctx, source.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", source.Name, err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", source.Name, err)
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		article := domain.Article{
			Title:   strings.TrimSpace(item.Title),
			Link:    item.Link,
			Summary: p.cleanText(item.Description),
		}

		// stable article ID from GUID, falling back to link
		switch {
		case item.GUID != "":
			article.ID = item.GUID
		case item.Link != "":
			article.ID = item.Link
		default:
			article.ID = fmt.Sprintf("%s-%s", source.Name, item.Title)
		}

		if item.Image != nil {
			article.ImageURL = item.Image.URL
		}

		if item.PublishedParsed != nil {
			article.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			article.Published = *item.UpdatedParsed
		} else {
			article.Published = time.Now()
		}

		articles = append(articles, article)
	}

	return articles, nil
}

// cleanText strips HTML markup and collapses whitespace in feed descriptions
func (p *Parser) cleanText(text string) string {
	cleaned := p.sanitizer.Sanitize(text)
	cleaned = html.UnescapeString(cleaned)
	return strings.Join(strings.Fields(cleaned), " ")
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
