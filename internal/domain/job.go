package domain

// Job is the normalized, pipeline-internal form of one feed entry.
// Built once during ingestion and never mutated after that.
type Job struct {
	ID             string // trailing segment of the raw feed id; dedup key
	Title          string
	CompanyName    string // "Company" when nothing could be extracted
	CompanyLogoURL string // empty when the content has no <img>
	ApplyURL       string // rel=alternate link, may be empty
	Excerpt        string // plain-text snippet of the content, may be empty
	PublishedAt    string // raw feed timestamp, kept for traceability
}
