// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrUpstream is returned when the tile origin answers with a non-200.
var ErrUpstream = errors.New("tile origin returned an error")

// CreateSchema creates the tile cache table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tile schema: %w", err)
	}
	return nil
}

const schema = `
-- Cached raster tiles, keyed by slippy-map coordinates.
CREATE TABLE IF NOT EXISTS tile (
    z INTEGER NOT NULL,
    x INTEGER NOT NULL,
    y INTEGER NOT NULL,
    body BLOB NOT NULL,
    content_type TEXT NOT NULL,
    fetched_at TIMESTAMP NOT NULL,
    PRIMARY KEY (z, x, y)
);
`

// Open opens (or creates) the tile cache database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tile cache: %w", err)
	}
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Cache serves tiles cache-or-network: a previously cached tile is served
// as-is, otherwise the tile is fetched from the origin and cached
// opportunistically. No eviction, no size bound, no staleness check.
type Cache struct {
	db          *sql.DB
	client      *http.Client
	urlTemplate string
}

// New builds a cache over an open database. urlTemplate uses {s}, {z},
// {x}, {y} placeholders in the usual slippy-map form.
func New(db *sql.DB, urlTemplate string, timeout time.Duration) *Cache {
	return &Cache{
		db:          db,
		client:      &http.Client{Timeout: timeout},
		urlTemplate: urlTemplate,
	}
}

// Get returns the tile body and content type for z/x/y, from cache when
// available and from the origin otherwise. A failed cache write is logged
// and the fetched tile is still served.
func (c *Cache) Get(ctx context.Context, z, x, y int) ([]byte, string, error) {
	var body []byte
	var contentType string
	err := c.db.QueryRowContext(ctx,
		"SELECT body, content_type FROM tile WHERE z = ? AND x = ? AND y = ?",
		z, x, y,
	).Scan(&body, &contentType)
	if err == nil {
		return body, contentType, nil
	}
	if err != sql.ErrNoRows {
		// A broken cache read degrades to a plain fetch.
		slog.Warn("tile cache read failed", "error", err)
	}

	body, contentType, err = c.fetch(ctx, z, x, y)
	if err != nil {
		return nil, "", err
	}

	_, err = c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO tile (z, x, y, body, content_type, fetched_at) VALUES (?, ?, ?, ?, ?, ?)",
		z, x, y, body, contentType, time.Now(),
	)
	if err != nil {
		slog.Warn("tile cache write failed", "z", z, "x", x, "y", y, "error", err)
	}

	return body, contentType, nil
}

func (c *Cache) fetch(ctx context.Context, z, x, y int) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tileURL(z, x, y), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build tile request: %w", err)
	}
	req.Header.Set("User-Agent", "unitracker/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("tile fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read tile body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return body, contentType, nil
}

// tileURL expands the URL template. {s} rotates across the common a/b/c
// subdomains so parallel loads spread over origin hosts.
func (c *Cache) tileURL(z, x, y int) string {
	subdomains := "abc"
	i := (z + x + y) % len(subdomains)
	if i < 0 {
		i += len(subdomains)
	}
	sub := string(subdomains[i])

	r := strings.NewReplacer(
		"{s}", sub,
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	)
	return r.Replace(c.urlTemplate)
}
