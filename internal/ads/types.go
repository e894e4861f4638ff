// Package ads provides a client for the NASA ADS search API.
package ads

import (
	"encoding/json"
	"strconv"
)

// FlexString is a string field that tolerates the loose typing of ADS
// records: a JSON string decodes as-is, an array decodes to its first
// string element, anything else (null, number, object) decodes to "".
// Unmarshaling never fails.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil && len(list) > 0 {
		var first string
		if err := json.Unmarshal(list[0], &first); err == nil {
			*f = FlexString(first)
			return nil
		}
	}

	*f = ""
	return nil
}

// String returns the field value.
func (f FlexString) String() string {
	return string(f)
}

// FlexStrings is a string-list field. A JSON array decodes element by
// element (non-string elements are skipped), a bare string decodes to a
// one-element list, anything else decodes to nil. Unmarshaling never fails.
type FlexStrings []string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, raw := range list {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				out = append(out, s)
			}
		}
		*f = out
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexStrings{s}
		return nil
	}

	*f = nil
	return nil
}

// First returns the first element, or "" if the list is empty.
func (f FlexStrings) First() string {
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// FlexInt is an integer field that tolerates numbers, numeric strings,
// and floats. Anything unparsable decodes to 0. Unmarshaling never fails.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}

	var fl float64
	if err := json.Unmarshal(data, &fl); err == nil {
		*f = FlexInt(int(fl))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			*f = FlexInt(n)
			return nil
		}
	}

	*f = 0
	return nil
}

// Int returns the field value.
func (f FlexInt) Int() int {
	return int(f)
}

// Doc is one raw bibliographic record from the ADS search API. Every field
// uses a tolerant type so a missing or wrongly-typed field decodes to its
// zero value instead of failing the whole response.
type Doc struct {
	Title         FlexStrings `json:"title"`
	Author        FlexStrings `json:"author"`
	OrcidPub      FlexStrings `json:"orcid_pub"`
	OrcidUser     FlexStrings `json:"orcid_user"`
	FirstAuthor   FlexString  `json:"first_author"`
	Pub           FlexString  `json:"pub"`
	PubRaw        FlexString  `json:"pub_raw"`
	DOI           FlexStrings `json:"doi"`
	Bibcode       FlexString  `json:"bibcode"`
	Abstract      FlexString  `json:"abstract"`
	PubDate       FlexString  `json:"pubdate"`
	CitationCount FlexInt     `json:"citation_count"`
	DocType       FlexString  `json:"doctype"`
	Property      FlexStrings `json:"property"`
}

// Venue returns the formatted venue string, used for classification.
// Prefers pub over pub_raw, matching how ADS presents the short form.
func (d Doc) Venue() string {
	if d.Pub != "" {
		return d.Pub.String()
	}
	return d.PubRaw.String()
}

// SearchResponse is the envelope returned by the ADS search endpoint.
type SearchResponse struct {
	Response struct {
		NumFound int   `json:"numFound"`
		Docs     []Doc `json:"docs"`
	} `json:"response"`
}

// Docs returns the record list from the response.
func (r *SearchResponse) Docs() []Doc {
	return r.Response.Docs
}
