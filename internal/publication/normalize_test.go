package publication

import (
	"testing"

	"github.com/adithyavalsaraj/folio/internal/ads"
)

func TestNormalize(t *testing.T) {
	doc := ads.Doc{
		Title:         ads.FlexStrings{"Radio emission from SN 2023ixf"},
		Author:        ads.FlexStrings{"Nayana, A. J.", "Smith, J."},
		Pub:           "ApJ",
		PubRaw:        "The Astrophysical Journal",
		DOI:           ads.FlexStrings{"10.1000/x"},
		Bibcode:       "2024ApJ...1N",
		Abstract:      "We report...",
		PubDate:       "2024-05-00",
		CitationCount: 12,
	}

	p := Normalize(doc)

	if p.Title != "Radio emission from SN 2023ixf" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Authors != "Nayana, A. J.; Smith, J." {
		t.Errorf("Authors = %q", p.Authors)
	}
	if p.Journal != "The Astrophysical Journal" {
		t.Errorf("Journal = %q, want the unformatted venue", p.Journal)
	}
	if p.Year != 2024 {
		t.Errorf("Year = %d, want 2024", p.Year)
	}
	if p.DOI != "10.1000/x" {
		t.Errorf("DOI = %q", p.DOI)
	}
	if p.CitationCount != 12 {
		t.Errorf("CitationCount = %d", p.CitationCount)
	}
	if want := "https://ui.adsabs.harvard.edu/abs/2024ApJ...1N/abstract"; p.ADSUrl != want {
		t.Errorf("ADSUrl = %q, want %q", p.ADSUrl, want)
	}
	if p.Role != RoleUnknown {
		t.Errorf("Role = %q, want Unknown before resolution", p.Role)
	}
}

func TestNormalizeEmptyDoc(t *testing.T) {
	p := Normalize(ads.Doc{})

	if p.Title != "" || p.Authors != "" || p.Journal != "" {
		t.Errorf("expected empty strings, got %+v", p)
	}
	if p.Year != 0 {
		t.Errorf("Year = %d, want 0 for missing pubdate", p.Year)
	}
	if p.ADSUrl != "" {
		t.Errorf("ADSUrl = %q, want empty without a bibcode", p.ADSUrl)
	}
}

func TestNormalizeMalformedPubdate(t *testing.T) {
	p := Normalize(ads.Doc{PubDate: "soon"})
	if p.Year != 0 {
		t.Errorf("Year = %d, want 0 for unparsable pubdate", p.Year)
	}
	if p.PubDate != "soon" {
		t.Errorf("PubDate = %q, raw value should be preserved", p.PubDate)
	}
}

func TestNormalizeVenueFallsBackToShortForm(t *testing.T) {
	p := Normalize(ads.Doc{Pub: "MNRAS"})
	if p.Journal != "MNRAS" {
		t.Errorf("Journal = %q, want the short form when pub_raw is absent", p.Journal)
	}
}
