package publication

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// monthNames maps month-name tokens to month numbers, for display dates
// like "May 12, 2024".
var monthNames = []string{
	"january",
	"february",
	"march",
	"april",
	"may",
	"june",
	"july",
	"august",
	"september",
	"october",
	"november",
	"december",
}

var (
	// isoDateRe matches an ISO-like YYYY-MM[-DD] prefix. Zero month/day
	// parts ("2024-05-00") parse to 0, meaning absent.
	isoDateRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})(?:-(\d{1,2}))?`)

	// bareDayRe finds the first standalone 1-2 digit number in a prose date.
	bareDayRe = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// monthOf extracts a month (1-12) from a date string, or 0 if absent.
func monthOf(date string) int {
	if m := isoDateRe.FindStringSubmatch(date); m != nil {
		n, _ := strconv.Atoi(m[2])
		if n >= 1 && n <= 12 {
			return n
		}
		return 0
	}
	lower := strings.ToLower(date)
	for i, name := range monthNames {
		if strings.Contains(lower, name) {
			return i + 1
		}
	}
	return 0
}

// dayOf extracts a day of month from a date string, or 0 if absent.
func dayOf(date string) int {
	if m := isoDateRe.FindStringSubmatch(date); m != nil {
		if m[3] != "" {
			n, _ := strconv.Atoi(m[3])
			if n >= 1 && n <= 31 {
				return n
			}
		}
		return 0
	}
	if m := bareDayRe.FindStringSubmatch(date); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// SortByDate orders publications newest first: year desc, then month desc,
// then day desc. The sort is stable, so records with identical dates keep
// their pre-sort relative order.
func SortByDate(pubs []Curated) {
	sort.SliceStable(pubs, func(i, j int) bool {
		a, b := pubs[i], pubs[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		am, bm := monthOf(a.Date), monthOf(b.Date)
		if am != bm {
			return am > bm
		}
		return dayOf(a.Date) > dayOf(b.Date)
	})
}

// GroupByYear buckets an already-sorted publication list by year. Bucket
// order follows the list order (descending year after SortByDate); items
// within a bucket retain their order.
func GroupByYear(sorted []Curated) []YearGroup {
	var groups []YearGroup
	for _, p := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Year == p.Year {
			groups[n-1].Publications = append(groups[n-1].Publications, p)
			continue
		}
		groups = append(groups, YearGroup{Year: p.Year, Publications: []Curated{p}})
	}
	return groups
}
