package publication

import "strings"

// Merge enriches the curated publication list with dynamically fetched
// records. Records are matched by DOI when both sides have one, otherwise
// by title; both comparisons are case-insensitive and whitespace-trimmed.
// The curated list defines the member set: unmatched curated entries pass
// through unchanged and unmatched fetched records are not injected.
//
// On a match, the fetched value wins for every field it carries, except the
// DOI join key, which keeps the curated casing.
func Merge(curated []Curated, fetched []Publication) []Curated {
	out := make([]Curated, len(curated))
	for i, c := range curated {
		if p, ok := findMatch(c, fetched); ok {
			out[i] = enrich(c, p)
		} else {
			out[i] = c
		}
	}
	return out
}

// findMatch returns the first fetched record matching a curated entry.
func findMatch(c Curated, fetched []Publication) (Publication, bool) {
	for _, p := range fetched {
		if matches(c, p) {
			return p, true
		}
	}
	return Publication{}, false
}

// matches implements the join key: DOI equality when both sides have a
// DOI, title equality otherwise.
func matches(c Curated, p Publication) bool {
	if c.DOI != "" && p.DOI != "" {
		return equalKey(c.DOI, p.DOI)
	}
	return equalKey(c.Title, p.Title)
}

// equalKey compares two join-key strings, trimmed and case-insensitively.
func equalKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// enrich overlays fetched fields onto a curated entry.
func enrich(c Curated, p Publication) Curated {
	if p.Title != "" {
		c.Title = p.Title
	}
	if p.Authors != "" {
		c.Authors = p.Authors
	}
	if p.Journal != "" {
		c.Journal = p.Journal
	}
	if p.Year != 0 {
		c.Year = p.Year
	}
	if p.PubDate != "" {
		c.Date = p.PubDate
	}
	if c.DOI == "" {
		c.DOI = p.DOI
	}
	if p.ADSUrl != "" {
		c.ADSUrl = p.ADSUrl
	}
	if p.Role.Known() {
		c.Role = p.Role
	}
	if p.CitationCount > 0 {
		c.Citations = p.CitationCount
	}
	if p.Abstract != "" {
		c.Abstract = p.Abstract
	}
	return c
}
