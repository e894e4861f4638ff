// Package subject models the portfolio subject's identity and the
// matching rules that depend on it: authorship-role resolution and
// author-name highlighting.
package subject

import (
	"strings"

	"github.com/adithyavalsaraj/folio/internal/publication"
)

// Subject is the researcher the portfolio belongs to. The ORCID match is
// authoritative when the record carries per-author identifiers; the name
// variants cover the comma/space/initial permutations seen in author lists
// and are the fallback for records without identifier metadata.
type Subject struct {
	ORCID        string
	NameVariants []string

	normalized []string // NameVariants run through NormalizeName
}

// New creates a Subject from an ORCID and a display-form name-variant list.
func New(orcid string, variants []string) *Subject {
	s := &Subject{
		ORCID:        orcid,
		NameVariants: variants,
		normalized:   make([]string, 0, len(variants)),
	}
	for _, v := range variants {
		if n := NormalizeName(v); n != "" {
			s.normalized = append(s.normalized, n)
		}
	}
	return s
}

// NormalizeName lower-cases a display name, strips periods, semicolons,
// and commas, and collapses runs of whitespace.
func NormalizeName(name string) string {
	lower := strings.ToLower(name)
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '.', ';', ',':
			return -1
		}
		return r
	}, lower)
	return strings.Join(strings.Fields(stripped), " ")
}

// MatchesName reports whether an author display name refers to the subject,
// by normalized containment of any name variant.
func (s *Subject) MatchesName(name string) bool {
	n := NormalizeName(name)
	for _, v := range s.normalized {
		if strings.Contains(n, v) {
			return true
		}
	}
	return false
}

// ResolveRole determines the subject's authorship position on a record.
//
// The per-author identifier list is checked first: if the subject's ORCID
// appears, its position decides the role. Otherwise the author display
// names are scanned for the first position matching a name variant. If
// neither matches, the role is Unknown and the record is dropped from the
// published set by callers.
func (s *Subject) ResolveRole(orcids, authors []string) publication.Role {
	if s.ORCID != "" {
		for i, id := range orcids {
			if id == s.ORCID {
				return publication.RoleForPosition(i)
			}
		}
	}

	for i, name := range authors {
		if s.MatchesName(name) {
			return publication.RoleForPosition(i)
		}
	}

	return publication.RoleUnknown
}
