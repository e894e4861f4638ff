package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/adithyavalsaraj/folio/internal/publication"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite query index over the curated publication list. The
// JSONL file is canonical; the index is rebuilt from it and can be deleted
// at any time.
type DB struct {
	db *sql.DB
}

// selectFields is the standard column list for SELECT queries.
const selectFields = `id, title, authors, journal, pub_year, pub_date,
	doi, citations, type, role, abstract, ads_url, file_path`

// OpenDB opens or creates the index at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS pubs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			authors TEXT,
			journal TEXT,
			pub_year INTEGER NOT NULL,
			pub_date TEXT,
			doi TEXT,
			citations INTEGER,
			type TEXT,
			role TEXT,
			abstract TEXT,
			ads_url TEXT,
			file_path TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_pubs_doi ON pubs(doi) WHERE doi IS NOT NULL AND doi != '';
		CREATE INDEX IF NOT EXISTS idx_pubs_year ON pubs(pub_year);

		CREATE VIRTUAL TABLE IF NOT EXISTS pubs_fts USING fts5(
			id,
			title,
			authors,
			journal,
			type
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the index and repopulates it from the curated entries.
// Returns the number of entries indexed.
func (d *DB) Rebuild(pubs []publication.Curated) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM pubs"); err != nil {
		return 0, fmt.Errorf("clearing pubs table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM pubs_fts"); err != nil {
		return 0, fmt.Errorf("clearing pubs_fts table: %w", err)
	}

	insert, err := tx.Prepare(`
		INSERT INTO pubs (id, title, authors, journal, pub_year, pub_date,
			doi, citations, type, role, abstract, ads_url, file_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	insertFTS, err := tx.Prepare(`
		INSERT INTO pubs_fts (id, title, authors, journal, type)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing FTS insert: %w", err)
	}
	defer insertFTS.Close()

	for _, p := range pubs {
		if _, err := insert.Exec(p.ID, p.Title, p.Authors, p.Journal, p.Year,
			p.Date, p.DOI, p.Citations, p.Type, string(p.Role), p.Abstract,
			p.ADSUrl, p.FilePath); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", p.ID, err)
		}
		if _, err := insertFTS.Exec(p.ID, p.Title, p.Authors, p.Journal, p.Type); err != nil {
			return 0, fmt.Errorf("indexing %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return len(pubs), nil
}

// Query filters the curated list. An empty search matches everything; a
// non-empty search runs an FTS5 match over title/authors/journal/type. An
// empty role or zero year disables that filter. Results come back newest
// year first, then by id for determinism.
type Query struct {
	Search string
	Role   publication.Role
	Year   int
}

// Search returns the curated entries matching the query.
func (d *DB) Search(q Query) ([]publication.Curated, error) {
	var (
		where []string
		args  []any
	)

	if q.Search != "" {
		where = append(where, `id IN (SELECT id FROM pubs_fts WHERE pubs_fts MATCH ?)`)
		args = append(args, ftsQuery(q.Search))
	}
	if q.Role != "" {
		where = append(where, "role = ?")
		args = append(args, string(q.Role))
	}
	if q.Year != 0 {
		where = append(where, "pub_year = ?")
		args = append(args, q.Year)
	}

	query := "SELECT " + selectFields + " FROM pubs"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY pub_year DESC, id"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying publications: %w", err)
	}
	defer rows.Close()

	return scanAll(rows)
}

// All returns every curated entry, newest year first.
func (d *DB) All() ([]publication.Curated, error) {
	return d.Search(Query{})
}

// GetByID returns one curated entry, or nil if absent.
func (d *DB) GetByID(id string) (*publication.Curated, error) {
	row := d.db.QueryRow("SELECT "+selectFields+" FROM pubs WHERE id = ?", id)
	p, err := scanOne(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying publication %s: %w", id, err)
	}
	return p, nil
}

// Count returns the number of indexed entries.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM pubs").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting publications: %w", err)
	}
	return n, nil
}

// ftsQuery quotes each search term so user input cannot inject FTS5
// operators, and joins terms with implicit AND.
func ftsQuery(search string) string {
	terms := strings.Fields(search)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (*publication.Curated, error) {
	var p publication.Curated
	var role string
	if err := s.Scan(&p.ID, &p.Title, &p.Authors, &p.Journal, &p.Year,
		&p.Date, &p.DOI, &p.Citations, &p.Type, &role, &p.Abstract,
		&p.ADSUrl, &p.FilePath); err != nil {
		return nil, err
	}
	p.Role = publication.Role(role)
	return &p, nil
}

func scanOne(row *sql.Row) (*publication.Curated, error) {
	return scanRow(row)
}

func scanAll(rows *sql.Rows) ([]publication.Curated, error) {
	var pubs []publication.Curated
	for rows.Next() {
		p, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		pubs = append(pubs, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return pubs, nil
}
