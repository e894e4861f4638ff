// Package library runs the bibliometric pipeline: fetch the subject's ADS
// library, classify records into publications, resolve authorship roles,
// and aggregate citation metrics.
package library

import (
	"context"
	"log/slog"
	"sort"

	"github.com/adithyavalsaraj/folio/internal/ads"
	"github.com/adithyavalsaraj/folio/internal/publication"
	"github.com/adithyavalsaraj/folio/internal/subject"
)

// Service wires the ADS client to the classification pipeline for one
// subject. Every run is a pure function of the fetched record set; nothing
// is cached or persisted between calls.
type Service struct {
	client    *ads.Client
	subject   *subject.Subject
	libraryID string
	logger    *slog.Logger
}

// New creates a Service. A nil logger defaults to slog.Default().
func New(client *ads.Client, subj *subject.Subject, libraryID string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client:    client,
		subject:   subj,
		libraryID: libraryID,
		logger:    logger,
	}
}

// PublicationsResponse is the full pipeline result.
type PublicationsResponse struct {
	TotalItems        int                       `json:"totalItems"`
	FilteredItems     int                       `json:"filteredItems"`
	TotalPublications int                       `json:"totalPublications"`
	FirstAuthorCount  int                       `json:"firstAuthorCount"`
	SecondAuthorCount int                       `json:"secondAuthorCount"`
	CoAuthorCount     int                       `json:"coAuthorCount"`
	TotalCitations    int                       `json:"totalCitations"`
	HIndex            int                       `json:"hIndex"`
	Publications      []publication.Publication `json:"publications"`
}

// Publications fetches the library and runs the full pipeline: classify,
// normalize, resolve roles, drop unresolved records, sort newest first,
// and aggregate metrics over the surviving set.
func (s *Service) Publications(ctx context.Context) (*PublicationsResponse, error) {
	sr, err := s.client.Library(ctx, s.libraryID)
	if err != nil {
		return nil, err
	}
	docs := sr.Docs()

	pubs := make([]publication.Publication, 0, len(docs))
	for _, doc := range docs {
		if !publication.IsPublication(doc) {
			continue
		}
		p := publication.Normalize(doc)
		p.Role = s.subject.ResolveRole(doc.OrcidPub, doc.Author)
		if !p.Role.Known() {
			continue
		}
		pubs = append(pubs, p)
	}

	// Newest first. Partial ISO pubdates (YYYY-MM-DD with zero parts)
	// compare correctly as strings.
	sort.SliceStable(pubs, func(i, j int) bool {
		return pubs[i].PubDate > pubs[j].PubDate
	})

	resp := &PublicationsResponse{
		TotalItems:        len(docs),
		FilteredItems:     len(pubs),
		TotalPublications: len(pubs),
		Publications:      pubs,
	}
	for _, p := range pubs {
		switch p.Role {
		case publication.RoleFirst:
			resp.FirstAuthorCount++
		case publication.RoleSecond:
			resp.SecondAuthorCount++
		case publication.RoleCoAuthor:
			resp.CoAuthorCount++
		}
	}

	m := publication.Aggregate(pubs)
	resp.TotalCitations = m.TotalCitations
	resp.HIndex = m.HIndex

	s.logger.Info("library fetch",
		"total_items", resp.TotalItems,
		"filtered_items", resp.FilteredItems,
		"first_author", resp.FirstAuthorCount,
		"second_author", resp.SecondAuthorCount,
		"co_author", resp.CoAuthorCount,
		"h_index", resp.HIndex,
	)

	return resp, nil
}

// Stats fetches only citation counts and aggregates them over the raw,
// unfiltered library. This intentionally differs from Publications, which
// aggregates over the classified set; the two surfaces have always
// disagreed and callers depend on each.
func (s *Service) Stats(ctx context.Context) (publication.Metrics, error) {
	sr, err := s.client.LibraryCitations(ctx, s.libraryID)
	if err != nil {
		return publication.Metrics{}, err
	}

	docs := sr.Docs()
	counts := make([]int, len(docs))
	for i, d := range docs {
		counts[i] = d.CitationCount.Int()
	}
	return publication.CountMetrics(counts), nil
}

// Timeline fetches the library and merges it into the curated list,
// returning the sorted year-grouped timeline.
func (s *Service) Timeline(ctx context.Context, curated []publication.Curated) ([]publication.YearGroup, error) {
	resp, err := s.Publications(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTimeline(curated, resp.Publications), nil
}

// BuildTimeline merges fetched records into the curated list, sorts the
// result newest first, and groups it by year. A nil fetched list yields
// the curated-only timeline, which is the fallback when the upstream
// fetch fails.
func BuildTimeline(curated []publication.Curated, fetched []publication.Publication) []publication.YearGroup {
	merged := publication.Merge(curated, fetched)
	publication.SortByDate(merged)
	return publication.GroupByYear(merged)
}
