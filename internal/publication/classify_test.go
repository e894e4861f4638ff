package publication

import (
	"testing"

	"github.com/adithyavalsaraj/folio/internal/ads"
)

func TestIsPublication(t *testing.T) {
	tests := []struct {
		name string
		doc  ads.Doc
		want bool
	}{
		{
			name: "refereed property alone includes",
			doc:  ads.Doc{Pub: "Some Obscure Venue", Property: ads.FlexStrings{"REFEREED"}},
			want: true,
		},
		{
			name: "journal fragment without properties includes",
			doc:  ads.Doc{Pub: "Nature"},
			want: true,
		},
		{
			name: "preprint marker includes",
			doc:  ads.Doc{Pub: "arXiv e-prints"},
			want: true,
		},
		{
			name: "in press marker includes",
			doc:  ads.Doc{PubRaw: "ApJ, in press"},
			want: true,
		},
		{
			name: "telegram excluded even when refereed",
			doc:  ads.Doc{Pub: "The Astronomer's Telegram", Property: ads.FlexStrings{"REFEREED"}},
			want: false,
		},
		{
			name: "gcn circular excluded",
			doc:  ads.Doc{Pub: "GCN Circulars"},
			want: false,
		},
		{
			name: "software doctype excluded despite preprint venue",
			doc:  ads.Doc{Pub: "arXiv e-prints", DocType: "software"},
			want: false,
		},
		{
			name: "catalog doctype excluded despite refereed",
			doc:  ads.Doc{Pub: "ApJ", DocType: "catalog", Property: ads.FlexStrings{"refereed"}},
			want: false,
		},
		{
			name: "unrecognized venue without properties drops",
			doc:  ads.Doc{Pub: "Proceedings of Something"},
			want: false,
		},
		{
			name: "empty record drops",
			doc:  ads.Doc{},
			want: false,
		},
		{
			name: "venue matching is case-insensitive",
			doc:  ads.Doc{Pub: "MNRAS"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPublication(tt.doc); got != tt.want {
				t.Errorf("IsPublication(%+v) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}
}
