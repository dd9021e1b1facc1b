package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhrunov/newsdigest/pkg/config"
)

func TestParser_Fetch(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Feed</title>
	<link>http://example.com</link>
	<description>Test Description</description>
	<item>
		<title>Test Article 1</title>
		<link>http://example.com/article1</link>
		<description><![CDATA[<p>Article 1 <b>description</b> with &amp; entities</p>]]></description>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<guid>guid-article-1</guid>
	</item>
	<item>
		<title>Test Article 2</title>
		<link>http://example.com/article2</link>
		<description>Article 2 description</description>
		<pubDate>Tue, 03 Jan 2006 15:04:05 -0700</pubDate>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := NewParser(5*time.Second, "")
	articles, err := parser.Fetch(context.Background(), config.SourceConfig{Name: "test", URL: server.URL})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	a1 := articles[0]
	assert.Equal(t, "guid-article-1", a1.ID, "GUID wins over link")
	assert.Equal(t, "Test Article 1", a1.Title)
	assert.Equal(t, "http://example.com/article1", a1.Link)
	assert.Equal(t, "Article 1 description with & entities", a1.Summary, "markup stripped, entities decoded")
	assert.False(t, a1.Published.IsZero())

	a2 := articles[1]
	assert.Equal(t, "http://example.com/article2", a2.ID, "link used when GUID missing")
}

func TestParser_FetchAtomFeed(t *testing.T) {
	atomContent := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Test Atom Feed</title>
	<link href="http://example.com"/>
	<entry>
		<title>Atom Entry 1</title>
		<link href="http://example.com/entry1"/>
		<id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
		<updated>2006-01-02T15:04:05Z</updated>
		<summary>Entry 1 summary</summary>
	</entry>
</feed>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(atomContent))
	}))
	defer server.Close()

	parser := NewParser(5*time.Second, "")
	articles, err := parser.Fetch(context.Background(), config.SourceConfig{Name: "atom", URL: server.URL})
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a", a.ID)
	assert.Equal(t, "Atom Entry 1", a.Title)
	assert.Equal(t, "http://example.com/entry1", a.Link)
	assert.Equal(t, "Entry 1 summary", a.Summary)
	assert.False(t, a.Published.IsZero(), "updated time used when published missing")
}

func TestParser_FetchErrors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		parser := NewParser(5*time.Second, "")
		_, err := parser.Fetch(context.Background(), config.SourceConfig{Name: "bad", URL: server.URL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 500")
	})

	t.Run("invalid xml", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not xml"))
		}))
		defer server.Close()

		parser := NewParser(5*time.Second, "")
		_, err := parser.Fetch(context.Background(), config.SourceConfig{Name: "bad", URL: server.URL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte("too late"))
		}))
		defer server.Close()

		parser := NewParser(100*time.Millisecond, "")
		_, err := parser.Fetch(context.Background(), config.SourceConfig{Name: "slow", URL: server.URL})
		require.Error(t, err)
	})

	t.Run("invalid url", func(t *testing.T) {
		parser := NewParser(5*time.Second, "")
		_, err := parser.Fetch(context.Background(), config.SourceConfig{Name: "bad", URL: "not-a-url"})
		require.Error(t, err)
	})
}

func TestParser_FetchNoGUIDNoLink(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Feed</title>
	<item>
		<title>No GUID Article</title>
		<description>Article without GUID or link</description>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := NewParser(5*time.Second, "")
	articles, err := parser.Fetch(context.Background(), config.SourceConfig{Name: "test", URL: server.URL})
	require.NoError(t, err)

	require.Len(t, articles, 1)
	assert.Equal(t, "test-No GUID Article", articles[0].ID, "falls back to source and title")
}
