package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults for everything optional and
// validates the rest. Returns a normalized copy.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	// ---- Defaults ----

	if out.Feed.TimeoutSeconds == 0 {
		out.Feed.TimeoutSeconds = 15
	}
	if strings.TrimSpace(out.Feed.Timezone) == "" {
		out.Feed.Timezone = "Asia/Kolkata"
	}
	if out.Posting.PaceSeconds == 0 {
		out.Posting.PaceSeconds = 300
	}
	if len(out.Posting.Hashtags) == 0 {
		out.Posting.Hashtags = []string{"JobOpening", "Hiring", "Careers"}
	}
	if strings.TrimSpace(out.Telegram.APIBase) == "" {
		out.Telegram.APIBase = "https://api.telegram.org"
	}
	if out.Telegram.TimeoutSeconds == 0 {
		out.Telegram.TimeoutSeconds = 20
	}
	if out.Render.Width == 0 {
		out.Render.Width = 1200
	}
	if out.Render.Height == 0 {
		out.Render.Height = 900
	}
	if out.Render.LogoTimeoutSeconds == 0 {
		out.Render.LogoTimeoutSeconds = 10
	}

	// dedup hashtags, drop empties
	seen := map[string]bool{}
	var tags []string
	for _, t := range out.Posting.Hashtags {
		t = strings.TrimSpace(strings.TrimPrefix(t, "#"))
		if t == "" {
			continue
		}
		k := strings.ToLower(t)
		if seen[k] {
			continue
		}
		seen[k] = true
		tags = append(tags, t)
	}
	out.Posting.Hashtags = tags

	// ---- Validation rules ----

	if strings.TrimSpace(out.Feed.URL) == "" {
		res.addErr("feed.url is required")
	}
	if out.Feed.TimeoutSeconds < 0 {
		res.addErr("feed.timeout_seconds must be >= 0")
	}
	if out.Posting.PaceSeconds < 0 {
		res.addErr("posting.pace_seconds must be >= 0")
	} else if out.Posting.PaceSeconds < 60 {
		res.addWarn("posting.pace_seconds is very low (%d); Telegram may rate-limit the channel.", out.Posting.PaceSeconds)
	}
	if out.Telegram.TimeoutSeconds < 0 {
		res.addErr("telegram.timeout_seconds must be >= 0")
	}
	if out.Render.Width < 100 || out.Render.Height < 100 {
		res.addErr("render.width and render.height must be >= 100")
	}

	return out, res
}
