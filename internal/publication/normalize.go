package publication

import (
	"strconv"
	"strings"

	"github.com/adithyavalsaraj/folio/internal/ads"
)

// Normalize converts a raw ADS record into a Publication. The role is left
// Unknown pending resolution. Every field degrades to a safe default, so
// this function cannot fail on malformed input.
func Normalize(doc ads.Doc) Publication {
	p := Publication{
		Title:         doc.Title.First(),
		Authors:       strings.Join(doc.Author, "; "),
		Journal:       journalOf(doc),
		PubDate:       doc.PubDate.String(),
		DOI:           doc.DOI.First(),
		Bibcode:       doc.Bibcode.String(),
		Abstract:      doc.Abstract.String(),
		CitationCount: doc.CitationCount.Int(),
		Role:          RoleUnknown,
	}

	if len(p.PubDate) >= 4 {
		if y, err := strconv.Atoi(p.PubDate[:4]); err == nil {
			p.Year = y
		}
	}

	if p.Bibcode != "" {
		p.ADSUrl = "https://ui.adsabs.harvard.edu/abs/" + p.Bibcode + "/abstract"
	}

	return p
}

// journalOf prefers the unformatted venue string over the short form.
func journalOf(doc ads.Doc) string {
	if doc.PubRaw != "" {
		return doc.PubRaw.String()
	}
	return doc.Pub.String()
}
