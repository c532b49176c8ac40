package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobcast-engine/internal/fetch"
)

// Logos are tiny; anything bigger is not a logo.
const maxLogoBytes = 512 * 1024

// LogoCache fetches company logos and keeps the bytes in sqlite so repeat
// runs don't refetch the same CDN assets. Failures are the caller's problem
// only in the sense that the poster renders without a logo.
type LogoCache struct {
	db      *DB
	hc      *http.Client
	limiter *fetch.HostLimiter
}

func NewLogoCache(db *DB, timeout time.Duration, limiter *fetch.HostLimiter) *LogoCache {
	return &LogoCache{
		db:      db,
		hc:      &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

func logoKey(u string) string {
	h := sha256.Sum256([]byte(u))
	return hex.EncodeToString(h[:])
}

// Fetch returns the logo bytes and content type for rawURL, hitting the
// cache first and the network on a miss.
func (c *LogoCache) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, "", errors.New("empty logo url")
	}
	pu, err := url.Parse(rawURL)
	if err != nil || pu.Host == "" || (pu.Scheme != "http" && pu.Scheme != "https") {
		return nil, "", errors.New("unusable logo url")
	}

	key := logoKey(rawURL)

	var b []byte
	var ct string
	e := c.db.Pool.QueryRowContext(ctx,
		`SELECT bytes, content_type FROM logos WHERE key = ? LIMIT 1;`, key).Scan(&b, &ct)
	if e == nil {
		return b, ct, nil
	}
	if e != sql.ErrNoRows {
		log.Printf("[store] logo cache read err key=%s err=%v", key, e)
		// fall through to fetch; the cache never blocks a render
	}

	res, err := fetch.Get(ctx, c.hc, c.limiter, rawURL)
	if err != nil {
		return nil, "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, "", errors.New("logo fetch status " + res.Status)
	}

	b, err = io.ReadAll(io.LimitReader(res.Body, maxLogoBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(b) == 0 || len(b) > maxLogoBytes {
		return nil, "", errors.New("logo size out of bounds")
	}

	ct = res.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		// sniff as fallback
		ct = http.DetectContentType(b)
		if !strings.HasPrefix(ct, "image/") {
			return nil, "", errors.New("not an image")
		}
	}

	if _, err := c.db.Pool.ExecContext(ctx, `
INSERT OR REPLACE INTO logos(key, content_type, bytes, fetched_at)
VALUES(?,?,?,?);`,
		key, ct, b, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		log.Printf("[store] logo cache write err key=%s err=%v", key, err)
	}

	return b, ct, nil
}
