package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFixture = `{
  "feed": {
    "entry": [
      {
        "id": {"$t": "tag:blogger.com,1999:blog-111.post-1001"},
        "title": {"$t": "QA Engineer - Stale Corp"},
        "content": {"$t": "<p>old</p>"},
        "published": {"$t": "2026-02-03T22:00:00+05:30"},
        "link": [{"rel": "alternate", "href": "https://blog.example/qa"}]
      },
      {
        "id": {"$t": "tag:blogger.com,1999:blog-111.post-1002"},
        "title": {"$t": "Backend Engineer - Acme Hiring 2026"},
        "content": {"$t": "<img src=\"https://cdn.example/acme.png\"><p>Join Acme and build things.</p>"},
        "published": {"$t": "2026-02-04T09:30:00+05:30"},
        "link": [
          {"rel": "self", "href": "https://blog.example/self"},
          {"rel": "alternate", "href": "https://blog.example/backend"}
        ]
      },
      {
        "id": {"$t": "tag:blogger.com,1999:blog-111.post-1003"},
        "title": {"$t": "Data Analyst - Globex"},
        "content": {"$t": "<p>no image here</p>"},
        "published": {"$t": "2026-02-03T23:55:00-08:00"},
        "link": []
      }
    ]
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 5*time.Second, ist, nil)
	c.now = func() time.Time { return time.Date(2026, 2, 4, 12, 0, 0, 0, ist) }
	return c
}

func TestFetchTodayJobs(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedFixture))
	})

	jobs := c.FetchTodayJobs(context.Background())
	require.Len(t, jobs, 2) // yesterday's entry excluded

	// feed order preserved
	assert.Equal(t, "1002", jobs[0].ID)
	assert.Equal(t, "1003", jobs[1].ID)

	assert.Equal(t, "Backend Engineer - Acme Hiring 2026", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].CompanyName)
	assert.Equal(t, "https://cdn.example/acme.png", jobs[0].CompanyLogoURL)
	assert.Equal(t, "https://blog.example/backend", jobs[0].ApplyURL)
	assert.Equal(t, "Join Acme and build things.", jobs[0].Excerpt)
	assert.Equal(t, "2026-02-04T09:30:00+05:30", jobs[0].PublishedAt)

	// 23:55 -08:00 normalizes into today in IST; no logo, no alternate link
	assert.Equal(t, "Globex", jobs[1].CompanyName)
	assert.Empty(t, jobs[1].CompanyLogoURL)
	assert.Empty(t, jobs[1].ApplyURL)
}

func TestFetchTodayJobs_ServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	assert.Empty(t, c.FetchTodayJobs(context.Background()))
}

func TestFetchTodayJobs_BadBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	assert.Empty(t, c.FetchTodayJobs(context.Background()))
}

func TestFetchTodayJobs_SkipsEntryWithoutID(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"feed":{"entry":[
			{"id":{"$t":""},"title":{"$t":"x - Y"},"published":{"$t":"2026-02-04T09:00:00+05:30"}}
		]}}`))
	})
	assert.Empty(t, c.FetchTodayJobs(context.Background()))
}

func TestDedupID(t *testing.T) {
	assert.Equal(t, "456", dedupID("tag:blogger.com,1999:blog-123.post-456"))
	assert.Equal(t, "plain", dedupID("plain"))
	assert.Equal(t, "", dedupID(""))
	assert.Equal(t, "", dedupID("trailing-"))
}
