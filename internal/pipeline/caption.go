package pipeline

import (
	"html"
	"strings"

	"jobcast-engine/internal/domain"
)

type CaptionOptions struct {
	PromoLine string
	Hashtags  []string
}

// BuildCaption renders the fixed HTML caption for a job. Telegram parses
// the caption as HTML, so everything user-controlled is escaped.
func BuildCaption(job domain.Job, opt CaptionOptions) string {
	var b strings.Builder

	b.WriteString("<b>🚀 New Job Alert: " + html.EscapeString(job.Title) + "</b>\n\n")
	b.WriteString("🏢 <b>Company:</b> " + html.EscapeString(job.CompanyName) + "\n\n")

	if job.Excerpt != "" {
		b.WriteString(html.EscapeString(job.Excerpt) + "\n\n")
	}
	if job.ApplyURL != "" {
		b.WriteString(`🔗 <b>Apply Here:</b> <a href="` + html.EscapeString(job.ApplyURL) + `">Click to Apply</a>` + "\n\n")
	}
	if opt.PromoLine != "" {
		b.WriteString("<i>" + html.EscapeString(opt.PromoLine) + "</i>\n\n")
	}

	tags := make([]string, 0, len(opt.Hashtags)+1)
	for _, t := range opt.Hashtags {
		tags = append(tags, "#"+t)
	}
	if ct := companyTag(job.CompanyName); ct != "" {
		tags = append(tags, "#"+ct)
	}
	b.WriteString(strings.Join(tags, " "))

	return b.String()
}

func companyTag(company string) string {
	return strings.ReplaceAll(strings.TrimSpace(company), " ", "")
}
