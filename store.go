package mdxblog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eringen/mdxblog/content"
)

// Store is the build-time content artifact: a SQLite file holding every
// compiled post and standalone page. `build` writes it, `serve` reads it.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The server only reads; WAL lets a rebuild replace contents underneath a
	// running server without blocking it.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    slug_as_params TEXT NOT NULL,
    source TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    date TEXT NOT NULL,
    published INTEGER NOT NULL DEFAULT 1,
    tags TEXT NOT NULL,
    body TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS pages (
    name TEXT PRIMARY KEY,
    body TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// Replace swaps the whole artifact for posts and pages in one transaction.
func (s *Store) Replace(ctx context.Context, posts []content.Post, pages map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM posts`, `DELETE FROM pages`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	insertPost, err := tx.PrepareContext(ctx, `INSERT INTO posts (slug, slug_as_params, source, title, description, date, published, tags, body) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insertPost.Close()
	for _, p := range posts {
		published := 0
		if p.Published {
			published = 1
		}
		if _, err := insertPost.ExecContext(ctx,
			p.Slug, p.SlugAsParams, p.Source, p.Title, p.Description,
			p.Date.Format(time.RFC3339), published, FormatTags(p.Tags), p.Body,
		); err != nil {
			return fmt.Errorf("insert %s: %w", p.Slug, err)
		}
	}

	for name, body := range pages {
		if _, err := tx.ExecContext(ctx, `INSERT INTO pages (name, body) VALUES (?, ?)`, name, body); err != nil {
			return fmt.Errorf("insert page %s: %w", name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES ('built_at', ?)`,
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return tx.Commit()
}

// Posts returns every post in the artifact, published or not, most recent
// first. Equal dates keep source path order, as the loader reads them.
func (s *Store) Posts(ctx context.Context) ([]content.Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, slug_as_params, source, title, description, date, published, tags, body FROM posts ORDER BY date DESC, source`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []content.Post
	for rows.Next() {
		var slug, slugAsParams, source, title, description, date, tags, body string
		var published int
		if err := rows.Scan(&slug, &slugAsParams, &source, &title, &description, &date, &published, &tags, &body); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, fmt.Errorf("post %s: bad date %q: %w", slug, date, err)
		}
		posts = append(posts, content.Post{
			Slug:         slug,
			SlugAsParams: slugAsParams,
			Source:       source,
			Title:        title,
			Description:  description,
			Date:         t,
			Published:    published == 1,
			Tags:         ParseTags(tags),
			Body:         body,
		})
	}
	return posts, rows.Err()
}

// Page returns the compiled body of a standalone page.
func (s *Store) Page(ctx context.Context, name string) (string, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM pages WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", content.ErrNotFound
	}
	return body, err
}

// BuiltAt returns when the artifact was last written; zero if never.
func (s *Store) BuiltAt(ctx context.Context) (time.Time, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'built_at'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, v)
}

// FormatTags encodes tags as a comma-delimited string with leading and
// trailing commas (e.g. ",go,web,"), the inverse of ParseTags.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "," + strings.Join(tags, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
