// Package publication defines the core domain types for the portfolio's
// publication list and the data-shaping pipeline over them.
package publication

// Role is the subject's authorship position on a record.
type Role string

// Authorship roles. Unknown records never survive the pipeline.
const (
	RoleFirst    Role = "First Author"
	RoleSecond   Role = "Second Author"
	RoleCoAuthor Role = "Co-author"
	RoleUnknown  Role = "Unknown"
)

// Known returns true for a resolved role.
func (r Role) Known() bool {
	switch r {
	case RoleFirst, RoleSecond, RoleCoAuthor:
		return true
	}
	return false
}

// RoleForPosition maps a zero-based author-list position to a role.
func RoleForPosition(idx int) Role {
	switch {
	case idx < 0:
		return RoleUnknown
	case idx == 0:
		return RoleFirst
	case idx == 1:
		return RoleSecond
	}
	return RoleCoAuthor
}

// Publication is the canonical shape of a dynamically fetched record.
// Created fresh on every fetch, never persisted.
type Publication struct {
	Title         string `json:"title"`
	Authors       string `json:"authors"` // semicolon-joined display string
	Journal       string `json:"journal"`
	PubDate       string `json:"pubdate,omitempty"` // partial ISO, may carry -00 parts
	Year          int    `json:"year,omitempty"`    // 0 when pubdate is absent
	DOI           string `json:"doi,omitempty"`
	Bibcode       string `json:"bibcode,omitempty"`
	Abstract      string `json:"abstract,omitempty"`
	CitationCount int    `json:"citationCount"`
	ADSUrl        string `json:"adsUrl,omitempty"`
	Role          Role   `json:"role"`
}

// Curated is a hand-maintained publication entry. The curated list is
// authoritative for timeline membership; fetched records only enrich it.
type Curated struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Journal   string `json:"journal"`
	Year      int    `json:"year"`
	Date      string `json:"date,omitempty"` // display date, ISO or prose
	DOI       string `json:"doi,omitempty"`
	Citations int    `json:"citations,omitempty"`
	Type      string `json:"type,omitempty"`
	Role      Role   `json:"authorRole,omitempty"`
	Abstract  string `json:"abstract,omitempty"`
	ADSUrl    string `json:"adsUrl,omitempty"`
	FilePath  string `json:"file_path,omitempty"` // attached PDF, relative to store root
}

// Metrics holds aggregate bibliometric counts over a record set.
type Metrics struct {
	TotalCitations int `json:"totalCitations"`
	HIndex         int `json:"hIndex"`
}

// YearGroup is one year's bucket of the sorted timeline.
type YearGroup struct {
	Year         int       `json:"year"`
	Publications []Curated `json:"publications"`
}
