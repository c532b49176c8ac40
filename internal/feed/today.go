package feed

import "time"

// LoadZone resolves the reference timezone for "today" checks. When the tz
// database is unavailable (scratch containers) it falls back to a fixed
// +05:30 offset, the default reference zone.
func LoadZone(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+30*60)
}

// PublishedToday reports whether ts falls on the same calendar date as now,
// with both instants viewed in loc. Feed timestamps carry arbitrary source
// offsets, so comparing raw date substrings misclassifies entries near
// midnight; always normalize to the reference zone first.
// Unparseable timestamps are excluded, never fatal.
func PublishedToday(ts string, loc *time.Location, now time.Time) bool {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return false
	}
	y1, m1, d1 := t.In(loc).Date()
	y2, m2, d2 := now.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
