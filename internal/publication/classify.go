package publication

import (
	"strings"

	"github.com/adithyavalsaraj/folio/internal/ads"
)

// Classifier rule tables. These are configuration data, not control flow:
// extending the filter means adding a string here, not touching IsPublication.
var (
	// journalFragments are distinctive substrings of major astrophysics
	// journal names. A venue containing any of them looks like a journal.
	journalFragments = []string{
		"apj",
		"mnras",
		"nature",
		"science",
		"a&a",
		"pasp",
		"aj",
		"araa",
	}

	// preprintMarkers mark not-yet-published work that still counts.
	preprintMarkers = []string{
		"arxiv",
		"preprint",
		"in press",
		"under review",
	}

	// excludedVenues mark observational alerts, circulars, and bulletins
	// that are not articles. Exclusion always wins over inclusion.
	excludedVenues = []string{
		"atel",
		"telegram",
		"gcn",
		"tns",
		"iauc",
		"circular",
		"bulletin",
	}

	// excludedDoctypes are record types that never count as publications.
	excludedDoctypes = []string{
		"catalog",
		"software",
	}
)

// IsPublication reports whether a raw record counts as a genuine
// publication. This is a best-effort heuristic over free-text metadata:
// refereed records, recognizable journals, and preprints are kept;
// telegrams, circulars, catalogs, and software records are dropped.
func IsPublication(doc ads.Doc) bool {
	venue := strings.ToLower(doc.Venue())
	doctype := strings.ToLower(doc.DocType.String())

	included := hasProperty(doc.Property, "refereed") ||
		containsAny(venue, journalFragments) ||
		containsAny(venue, preprintMarkers)

	excluded := containsAny(venue, excludedVenues) ||
		containsAny(doctype, excludedDoctypes)

	return included && !excluded
}

// containsAny reports whether s contains any of the given fragments.
// s must already be lower-cased.
func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

// hasProperty reports whether the property tag list contains the given
// tag, case-insensitively.
func hasProperty(props []string, tag string) bool {
	for _, p := range props {
		if strings.EqualFold(p, tag) {
			return true
		}
	}
	return false
}
