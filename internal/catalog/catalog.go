package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/matheuskafuri/articles/internal/article"
	_ "modernc.org/sqlite"
)

// Catalog is the on-disk article store that `articles import` fills and
// the table reads once at startup.
type Catalog struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Catalog, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?_pragma=query_only(1)")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	c := &Catalog{readDB: readDB, writeDB: writeDB}
	if err := c.init(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Catalog) init() error {
	_, err := c.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			url              TEXT PRIMARY KEY,
			content_source   TEXT NOT NULL,
			title            TEXT NOT NULL,
			summary          TEXT NOT NULL DEFAULT '',
			relevance_rating REAL NOT NULL DEFAULT 0,
			date             TEXT NOT NULL,
			imported_at      DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date DESC);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (c *Catalog) Close() error {
	var errs []error
	if c.readDB != nil {
		errs = append(errs, c.readDB.Close())
	}
	if c.writeDB != nil {
		errs = append(errs, c.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Upsert inserts articles, replacing any stored article with the same URL.
func (c *Catalog) Upsert(articles []article.Article) error {
	tx, err := c.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO articles (url, content_source, title, summary, relevance_rating, date, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			content_source = excluded.content_source,
			title = excluded.title,
			summary = excluded.summary,
			relevance_rating = excluded.relevance_rating,
			date = excluded.date,
			imported_at = excluded.imported_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, a := range articles {
		if a.URL == "" {
			return fmt.Errorf("upserting %q: %w", a.Title, article.ErrMissingURL)
		}
		_, err := stmt.Exec(a.URL, a.ContentSource, a.Title, a.Summary, a.RelevanceRating, a.Date, now)
		if err != nil {
			return fmt.Errorf("upserting article %s: %w", a.URL, err)
		}
	}

	return tx.Commit()
}

// All returns every stored article, newest date first.
func (c *Catalog) All() ([]article.Article, error) {
	rows, err := c.readDB.Query(`
		SELECT url, content_source, title, summary, relevance_rating, date
		FROM articles ORDER BY date DESC, url`)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []article.Article
	for rows.Next() {
		var a article.Article
		if err := rows.Scan(&a.URL, &a.ContentSource, &a.Title, &a.Summary, &a.RelevanceRating, &a.Date); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Collection loads the catalog as an immutable article collection.
func (c *Catalog) Collection() (article.Collection, error) {
	items, err := c.All()
	if err != nil {
		return article.Collection{}, err
	}
	return article.NewCollection(items)
}

// Prune deletes articles dated strictly before the given day and
// returns how many were removed.
func (c *Catalog) Prune(before time.Time) (int64, error) {
	cutoff := before.Format(time.DateOnly)
	res, err := c.writeDB.Exec("DELETE FROM articles WHERE date < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning articles: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		c.writeDB.Exec("VACUUM")
	}
	return n, nil
}

// Stats returns the article count and the size of the file at dbPath.
func (c *Catalog) Stats(dbPath string) (int, int64, error) {
	var count int
	if err := c.readDB.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting articles: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("stat %s: %w", dbPath, err)
	}
	return count, info.Size(), nil
}
