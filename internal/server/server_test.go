package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adithyavalsaraj/folio/internal/ads"
	"github.com/adithyavalsaraj/folio/internal/library"
	"github.com/adithyavalsaraj/folio/internal/publication"
	"github.com/adithyavalsaraj/folio/internal/storage"
	"github.com/adithyavalsaraj/folio/internal/subject"
)

const testORCID = "0000-0002-8070-5400"

const upstreamFixture = `{
	"response": {
		"numFound": 2,
		"docs": [
			{
				"title": ["Radio emission from SN 2023ixf"],
				"author": ["Nayana, A. J.", "Smith, J."],
				"orcid_pub": ["` + testORCID + `", "-"],
				"pub": "ApJ",
				"doi": ["10.1000/one"],
				"bibcode": "2024ApJ...1N",
				"pubdate": "2024-05-00",
				"citation_count": 10,
				"property": ["REFEREED"]
			},
			{
				"title": ["A magnetar survey"],
				"author": ["Smith, J.", "Nayana, A. J."],
				"pub": "MNRAS",
				"pubdate": "2023-01-00",
				"citation_count": 2,
				"property": ["REFEREED"]
			}
		]
	}
}`

// newTestServer wires a Server against a stubbed upstream. The upstream
// handler may be nil for the happy path.
func newTestServer(t *testing.T, upstream http.HandlerFunc, cfg Config) *Server {
	t.Helper()

	if upstream == nil {
		upstream = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(upstreamFixture))
		}
	}
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	client := ads.NewClient(ads.WithToken("test-token"), ads.WithBaseURL(ts.URL))
	subj := subject.New(testORCID, []string{"Nayana, A. J."})
	cfg.Service = library.New(client, subj, "testlib", nil)
	if cfg.Highlighter == nil {
		cfg.Highlighter = subject.NewHighlighter(subj.NameVariants, "«", "»")
	}
	return New(cfg)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	rec := get(t, s, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestPublicationsEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	rec := get(t, s, "/api/publications")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp library.PublicationsResponse
	decode(t, rec, &resp)

	assert.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, 2, resp.FilteredItems)
	assert.Equal(t, 1, resp.FirstAuthorCount)
	assert.Equal(t, 1, resp.SecondAuthorCount)
	assert.Equal(t, 12, resp.TotalCitations)
	assert.Equal(t, 2, resp.HIndex)
}

func TestPublicationsTokenMissing(t *testing.T) {
	t.Setenv("ADS_API_TOKEN", "")

	client := ads.NewClient(ads.WithBaseURL("http://unused.invalid"))
	subj := subject.New(testORCID, nil)
	s := New(Config{Service: library.New(client, subj, "testlib", nil)})

	rec := get(t, s, "/api/publications")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "ADS API token missing", body["error"])
}

func TestPublicationsUpstreamFailure(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, Config{})

	rec := get(t, s, "/api/publications")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Failed to fetch ADS data", body["error"], "upstream detail must not leak")
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	rec := get(t, s, "/api/publications/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var m publication.Metrics
	decode(t, rec, &m)
	assert.Equal(t, 12, m.TotalCitations)
	assert.Equal(t, 2, m.HIndex)
}

func TestTimelineMergesCurated(t *testing.T) {
	curated := []publication.Curated{
		{ID: "sn2023ixf", Title: "older title", DOI: "10.1000/ONE", Year: 2023},
	}
	s := newTestServer(t, nil, Config{Curated: curated})

	rec := get(t, s, "/api/timeline")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Live   bool                    `json:"live"`
		Groups []publication.YearGroup `json:"groups"`
	}
	decode(t, rec, &resp)

	assert.True(t, resp.Live)
	require.Len(t, resp.Groups, 1)
	assert.Equal(t, 2024, resp.Groups[0].Year, "merge pulls the fetched pubdate in")
	assert.Equal(t, "Radio emission from SN 2023ixf", resp.Groups[0].Publications[0].Title)
	assert.Equal(t, "10.1000/ONE", resp.Groups[0].Publications[0].DOI)
}

func TestTimelineFallsBackWhenUpstreamFails(t *testing.T) {
	curated := []publication.Curated{
		{ID: "a", Title: "Curated only", Authors: "Nayana, A. J.", Year: 2022},
	}
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, Config{Curated: curated})

	rec := get(t, s, "/api/timeline")
	require.Equal(t, http.StatusOK, rec.Code, "timeline degrades instead of failing")

	var resp struct {
		Live   bool                    `json:"live"`
		Groups []publication.YearGroup `json:"groups"`
	}
	decode(t, rec, &resp)

	assert.False(t, resp.Live)
	require.Len(t, resp.Groups, 1)
	assert.Equal(t, "Curated only", resp.Groups[0].Publications[0].Title)
}

func TestTimelineHighlight(t *testing.T) {
	curated := []publication.Curated{
		{ID: "a", Title: "Curated only", Authors: "Smith, J.; Nayana, A. J.", Year: 2022},
	}
	s := newTestServer(t, nil, Config{Curated: curated})

	rec := get(t, s, "/api/timeline?highlight=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "«Nayana, A. J.»"),
		"highlight=1 wraps the subject's name: %s", rec.Body.String())

	rec = get(t, s, "/api/timeline")
	assert.False(t, strings.Contains(rec.Body.String(), "«"),
		"no markers without highlight=1")
}

func TestCuratedWithoutIndex(t *testing.T) {
	s := newTestServer(t, nil, Config{})

	rec := get(t, s, "/api/curated")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCuratedQueries(t *testing.T) {
	db, err := storage.OpenDB(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Rebuild([]publication.Curated{
		{ID: "one", Title: "Radio emission", Authors: "Nayana, A. J.", Journal: "ApJ", Year: 2024, Role: publication.RoleFirst},
		{ID: "two", Title: "A magnetar survey", Authors: "Smith, J.", Journal: "MNRAS", Year: 2023, Role: publication.RoleCoAuthor},
	})
	require.NoError(t, err)

	s := newTestServer(t, nil, Config{Index: db})

	rec := get(t, s, "/api/curated?search=radio")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count        int                   `json:"count"`
		Publications []publication.Curated `json:"publications"`
	}
	decode(t, rec, &resp)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "one", resp.Publications[0].ID)

	rec = get(t, s, "/api/curated?role=coauthor")
	decode(t, rec, &resp)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "two", resp.Publications[0].ID)

	rec = get(t, s, "/api/curated?year=2024")
	decode(t, rec, &resp)
	assert.Equal(t, 1, resp.Count)

	rec = get(t, s, "/api/curated?role=nonsense")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, s, "/api/curated?year=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
