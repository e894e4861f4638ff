package subject

import (
	"regexp"
	"strings"
)

// Default emphasis markers, matching the site's author-highlight styling.
const (
	DefaultOpenMark  = `<span class="author-highlight">`
	DefaultCloseMark = `</span>`
)

// Highlighter wraps occurrences of the subject's name inside an author
// display string with emphasis markers.
//
// Substitutions are applied variant by variant, in list order, each on the
// string as modified by the previous variant. This sequential semantic is
// deliberate: with overlapping variants the first one in list order wins
// for a span, which a single combined alternation would not guarantee.
type Highlighter struct {
	openMark  string
	closeMark string
	patterns  []*regexp.Regexp
}

// NewHighlighter compiles one boundary-guarded, case-insensitive pattern
// per name variant. Empty markers fall back to the defaults.
func NewHighlighter(variants []string, openMark, closeMark string) *Highlighter {
	if openMark == "" {
		openMark = DefaultOpenMark
	}
	if closeMark == "" {
		closeMark = DefaultCloseMark
	}

	h := &Highlighter{openMark: openMark, closeMark: closeMark}
	for _, v := range variants {
		if strings.TrimSpace(v) == "" {
			continue
		}
		// Guard both ends with non-letter context so "Nayana AJ" does not
		// match inside "Nayana AJX".
		p := regexp.MustCompile(`(?i)(^|[^a-zA-Z])(` + regexp.QuoteMeta(v) + `)([^a-zA-Z]|$)`)
		h.patterns = append(h.patterns, p)
	}
	return h
}

// Highlight returns the authors string with every name-variant occurrence
// wrapped in the emphasis markers. No other substring is altered.
func (h *Highlighter) Highlight(authors string) string {
	out := authors
	for _, p := range h.patterns {
		out = p.ReplaceAllStringFunc(out, func(match string) string {
			m := p.FindStringSubmatch(match)
			if m == nil {
				return match
			}
			return m[1] + h.openMark + m[2] + h.closeMark + m[3]
		})
	}
	return out
}
