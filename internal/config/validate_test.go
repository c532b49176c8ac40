package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAndValidate_Defaults(t *testing.T) {
	var cfg Config
	cfg.Feed.URL = "https://blog.example/feed"

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())

	assert.Equal(t, 15, out.Feed.TimeoutSeconds)
	assert.Equal(t, "Asia/Kolkata", out.Feed.Timezone)
	assert.Equal(t, 300, out.Posting.PaceSeconds)
	assert.Equal(t, "https://api.telegram.org", out.Telegram.APIBase)
	assert.Equal(t, 20, out.Telegram.TimeoutSeconds)
	assert.Equal(t, 1200, out.Render.Width)
	assert.Equal(t, 900, out.Render.Height)
	assert.Equal(t, []string{"JobOpening", "Hiring", "Careers"}, out.Posting.Hashtags)
}

func TestNormalizeAndValidate_MissingFeedURL(t *testing.T) {
	_, res := NormalizeAndValidate(Config{})
	assert.False(t, res.OK())
}

func TestNormalizeAndValidate_HashtagCleanup(t *testing.T) {
	var cfg Config
	cfg.Feed.URL = "https://blog.example/feed"
	cfg.Posting.Hashtags = []string{"#Hiring", "hiring", "", "  ", "Careers"}

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Equal(t, []string{"Hiring", "Careers"}, out.Posting.Hashtags)
}

func TestNormalizeAndValidate_LowPaceWarns(t *testing.T) {
	var cfg Config
	cfg.Feed.URL = "https://blog.example/feed"
	cfg.Posting.PaceSeconds = 5

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.NotEmpty(t, res.Warnings)
}
