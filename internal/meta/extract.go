package meta

import "strings"

// CompanySentinel is used whenever no company can be pulled out of a title.
const CompanySentinel = "Company"

// Words that start the disposable tail of a title's company part,
// e.g. "Acme Recruitment 2026 | Apply Now" -> "Acme".
var companyStopWords = []string{"recruitment", "hiring", "off campus", "job", "careers"}

// CompanyFromTitle extracts a company name from titles shaped like
// "Role - Company Hiring 2026". Best-effort string surgery, never fails;
// anything unextractable comes back as the sentinel.
func CompanyFromTitle(title string) string {
	_, after, found := strings.Cut(title, " - ")
	if !found {
		return CompanySentinel
	}

	low := strings.ToLower(after)
	cut := len(after)
	for _, w := range companyStopWords {
		if i := strings.Index(low, w); i >= 0 && i < cut {
			cut = i
		}
	}

	company := CleanText(after[:cut])
	if company == "" {
		return CompanySentinel
	}
	return company
}

// LogoFromContent scans content HTML for the first <img> src attribute.
// Deliberately not an HTML parser: feed content is frequently malformed
// and a missing logo is fine.
func LogoFromContent(content string) string {
	low := strings.ToLower(content)
	from := 0
	for {
		i := strings.Index(low[from:], "<img")
		if i < 0 {
			return ""
		}
		tagStart := from + i

		tagEnd := strings.IndexByte(low[tagStart:], '>')
		if tagEnd < 0 {
			tagEnd = len(low) - tagStart
		}
		tag := content[tagStart : tagStart+tagEnd]

		if j := strings.Index(strings.ToLower(tag), `src="`); j >= 0 {
			val := tag[j+len(`src="`):]
			if k := strings.IndexByte(val, '"'); k >= 0 {
				if src := strings.TrimSpace(val[:k]); src != "" {
					return src
				}
			}
		}

		from = tagStart + 4
	}
}

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
