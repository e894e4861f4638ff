package ads

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const libraryFixture = `{
	"response": {
		"numFound": 2,
		"docs": [
			{
				"title": ["First paper"],
				"author": ["Nayana, A. J."],
				"bibcode": "2024ApJ...1N",
				"pubdate": "2024-05-00",
				"citation_count": 10
			},
			{
				"title": ["Second paper"],
				"bibcode": "2023MNRAS.2N",
				"pubdate": "2023-01-00",
				"citation_count": 3
			}
		]
	}
}`

func TestClientLibrary(t *testing.T) {
	var gotAuth, gotQuery, gotSort string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("q")
		gotSort = r.URL.Query().Get("sort")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(libraryFixture))
	}))
	defer ts.Close()

	c := NewClient(WithToken("test-token"), WithBaseURL(ts.URL))
	resp, err := c.Library(context.Background(), "lib123")
	if err != nil {
		t.Fatalf("Library() error = %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", gotAuth)
	}
	if gotQuery != "docs(library/lib123)" {
		t.Errorf("q = %q", gotQuery)
	}
	if gotSort != "pubdate desc" {
		t.Errorf("sort = %q", gotSort)
	}
	if resp.Response.NumFound != 2 {
		t.Errorf("NumFound = %d, want 2", resp.Response.NumFound)
	}
	if len(resp.Docs()) != 2 {
		t.Fatalf("len(Docs()) = %d, want 2", len(resp.Docs()))
	}
	if got := resp.Docs()[0].Title.First(); got != "First paper" {
		t.Errorf("first doc title = %q", got)
	}
}

func TestClientTokenMissing(t *testing.T) {
	t.Setenv("ADS_API_TOKEN", "")

	c := NewClient(WithBaseURL("http://unused.invalid"))
	_, err := c.Library(context.Background(), "lib123")
	if !IsTokenMissing(err) {
		t.Fatalf("Library() error = %v, want ErrTokenMissing", err)
	}
}

func TestClientHTTPErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"unauthorized", http.StatusUnauthorized, IsAuthError},
		{"forbidden", http.StatusForbidden, IsAuthError},
		{"rate limited", http.StatusTooManyRequests, IsRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			c := NewClient(WithToken("t"), WithBaseURL(ts.URL))
			_, err := c.Library(context.Background(), "lib")
			if err == nil || !tt.check(err) {
				t.Errorf("Library() error = %v, want sentinel for status %d", err, tt.status)
			}
		})
	}
}

func TestClientServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(WithToken("t"), WithBaseURL(ts.URL))
	_, err := c.Library(context.Background(), "lib")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Library() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
}

func TestClientInvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	c := NewClient(WithToken("t"), WithBaseURL(ts.URL))
	_, err := c.Library(context.Background(), "lib")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("Library() error = %v, want ErrInvalidResponse", err)
	}
}

func TestClientCitationsUsesNarrowFieldList(t *testing.T) {
	var gotFields string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFields = r.URL.Query().Get("fl")
		w.Write([]byte(`{"response": {"numFound": 0, "docs": []}}`))
	}))
	defer ts.Close()

	c := NewClient(WithToken("t"), WithBaseURL(ts.URL))
	if _, err := c.LibraryCitations(context.Background(), "lib"); err != nil {
		t.Fatalf("LibraryCitations() error = %v", err)
	}
	if gotFields != StatsFields {
		t.Errorf("fl = %q, want %q", gotFields, StatsFields)
	}
}
