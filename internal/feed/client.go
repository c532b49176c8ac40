package feed

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"jobcast-engine/internal/domain"
	"jobcast-engine/internal/fetch"
	"jobcast-engine/internal/meta"
)

type Client struct {
	url     string
	zone    *time.Location
	hc      *http.Client
	limiter *fetch.HostLimiter

	now func() time.Time // overridable in tests
}

func NewClient(url string, timeout time.Duration, zone *time.Location, limiter *fetch.HostLimiter) *Client {
	return &Client{
		url:     url,
		zone:    zone,
		hc:      &http.Client{Timeout: timeout},
		limiter: limiter,
		now:     time.Now,
	}
}

// Blogger JSON envelope: every scalar is wrapped as {"$t": value}.
type wrapped struct {
	T string `json:"$t"`
}

type entryLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type feedEntry struct {
	ID        wrapped     `json:"id"`
	Title     wrapped     `json:"title"`
	Content   wrapped     `json:"content"`
	Published wrapped     `json:"published"`
	Link      []entryLink `json:"link"`
}

type envelope struct {
	Feed struct {
		Entry []feedEntry `json:"entry"`
	} `json:"feed"`
}

// FetchTodayJobs pulls the feed once and returns the entries published
// today in the reference zone, normalized and in feed order. Any fetch or
// decode problem yields an empty list; the run then simply has nothing to do.
func (c *Client) FetchTodayJobs(ctx context.Context) []domain.Job {
	res, err := fetch.Get(ctx, c.hc, c.limiter, c.url)
	if err != nil {
		log.Printf("[feed] fetch error: %v", err)
		return nil
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Printf("[feed] status %d from %s", res.StatusCode, c.url)
		return nil
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		log.Printf("[feed] decode error: %v", err)
		return nil
	}

	now := c.now()
	var jobs []domain.Job
	for _, e := range env.Feed.Entry {
		id := dedupID(e.ID.T)
		if id == "" {
			log.Printf("[feed] entry without usable id, skipping (title=%q)", e.Title.T)
			continue
		}
		if !PublishedToday(e.Published.T, c.zone, now) {
			continue
		}

		title := strings.TrimSpace(e.Title.T)
		if title == "" {
			title = "Job Opening"
		}

		jobs = append(jobs, domain.Job{
			ID:             id,
			Title:          title,
			CompanyName:    meta.CompanyFromTitle(e.Title.T),
			CompanyLogoURL: meta.LogoFromContent(e.Content.T),
			ApplyURL:       alternateLink(e.Link),
			Excerpt:        meta.Excerpt(e.Content.T, 200),
			PublishedAt:    e.Published.T,
		})
	}

	log.Printf("[feed] %d entries, %d published today", len(env.Feed.Entry), len(jobs))
	return jobs
}

// dedupID takes the trailing "-" segment of the raw Blogger id
// (tag:blogger.com,1999:blog-NNN.post-MMM).
func dedupID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parts := strings.Split(raw, "-")
	return strings.TrimSpace(parts[len(parts)-1])
}

func alternateLink(links []entryLink) string {
	for _, l := range links {
		if l.Rel == "alternate" {
			return l.Href
		}
	}
	return ""
}
