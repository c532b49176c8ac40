package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

const userAgent = "Jobcast/1.0 (+batch)"

// HostLimiter rate-limits per hostname (blog host, logo CDNs, etc) so one
// run cannot hammer any single origin.
type HostLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	if lim, ok := hl.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(hl.r, hl.b)
	hl.m[host] = lim
	return lim
}

func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return hl.limiterFor("_").Wait(ctx)
	}
	return hl.limiterFor(u.Host).Wait(ctx)
}

// Get issues a rate-limited GET. The client's own timeout still applies;
// ctx bounds the limiter wait plus the request.
func Get(ctx context.Context, hc *http.Client, lim *HostLimiter, rawURL string) (*http.Response, error) {
	if lim != nil {
		if err := lim.WaitURL(ctx, rawURL); err != nil {
			return nil, fmt.Errorf("limiter wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	return hc.Do(req)
}
