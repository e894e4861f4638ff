// Package storage persists the curated publication list as JSONL and
// maintains an ephemeral SQLite index over it for queries.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/adithyavalsaraj/folio/internal/publication"
)

// MaxLineCapacity is the maximum buffer size for reading JSONL lines
// (1MB per line; abstracts can be long).
const MaxLineCapacity = 1024 * 1024

// ReadAll reads every curated publication from a JSONL file, one entry per
// line. A missing file returns an empty list, not an error: a fresh
// portfolio has no curated list yet.
func ReadAll(path string) ([]publication.Curated, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening publications file: %w", err)
	}
	defer f.Close()

	var pubs []publication.Curated
	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxLineCapacity)
	scanner.Buffer(buf, MaxLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var p publication.Curated
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		pubs = append(pubs, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading publications file: %w", err)
	}

	return pubs, nil
}

// WriteAll rewrites the JSONL file with the given entries.
func WriteAll(path string, pubs []publication.Curated) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating publications file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, p := range pubs {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding entry %s: %w", p.ID, err)
		}
	}
	return w.Flush()
}
