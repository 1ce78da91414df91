// Package ingest turns article files on disk into catalog rows. YAML
// article lists are read as is; anything else is handed to gofeed as an
// RSS, Atom or JSON feed document.
package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matheuskafuri/articles/internal/article"
	"github.com/matheuskafuri/articles/internal/relevance"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"
)

type Options struct {
	SummaryLength int
	SourceWeights relevance.SourceWeights
	Now           time.Time
}

// Result is what one file produced. Skipped counts feed items that had
// no link to use as a URL.
type Result struct {
	Articles []article.Article
	Skipped  int
}

// ParseFile reads path and converts it to articles.
func ParseFile(path string, opts Options) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		articles, err := parseYAML(data)
		if err != nil {
			return Result{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return Result{Articles: articles}, nil
	default:
		res, err := parseFeed(data, opts)
		if err != nil {
			return Result{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return res, nil
	}
}

func parseYAML(data []byte) ([]article.Article, error) {
	var articles []article.Article
	if err := yaml.Unmarshal(data, &articles); err != nil {
		return nil, err
	}
	for i, a := range articles {
		if a.URL == "" {
			return nil, fmt.Errorf("entry %d (%q): %w", i, a.Title, article.ErrMissingURL)
		}
		if a.RelevanceRating < 0 || a.RelevanceRating > relevance.MaxRating {
			return nil, fmt.Errorf("entry %d (%q): relevanceRating %v out of range 0-%v", i, a.Title, a.RelevanceRating, relevance.MaxRating)
		}
		if _, err := time.Parse(time.DateOnly, a.Date); err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w: got %q", i, a.Title, article.ErrInvalidDate, a.Date)
		}
	}
	return articles, nil
}

func parseFeed(data []byte, opts Options) (Result, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return Result{}, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	limit := opts.SummaryLength
	if limit <= 0 {
		limit = 300
	}

	var res Result
	for _, item := range feed.Items {
		if item.Link == "" {
			res.Skipped++
			continue
		}

		pub := now
		if item.PublishedParsed != nil {
			pub = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pub = *item.UpdatedParsed
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		summary := truncate(stripHTML(desc), limit)
		source := contentSource(feed, item)
		rating := relevance.Estimate(relevance.Input{
			Title:     item.Title,
			Summary:   summary,
			Source:    source,
			Published: pub,
		}, opts.SourceWeights, now)

		res.Articles = append(res.Articles, article.Article{
			ContentSource:   source,
			Title:           strings.TrimSpace(item.Title),
			URL:             item.Link,
			Summary:         summary,
			RelevanceRating: rating,
			Date:            pub.Format(time.DateOnly),
		})
	}
	return res, nil
}

// contentSource renders "Author / Feed Title", falling back to whichever
// half is known.
func contentSource(feed *gofeed.Feed, item *gofeed.Item) string {
	var author string
	switch {
	case item.Author != nil && item.Author.Name != "":
		author = item.Author.Name
	case len(item.Authors) > 0 && item.Authors[0] != nil:
		author = item.Authors[0].Name
	case feed.Author != nil:
		author = feed.Author.Name
	}
	title := strings.TrimSpace(feed.Title)
	author = strings.TrimSpace(author)
	switch {
	case author != "" && title != "":
		return author + " / " + title
	case author != "":
		return author
	}
	return title
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
