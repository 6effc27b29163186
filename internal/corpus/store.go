// Package corpus converts directories of GABC sources into an SQLite corpus.
package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
	"github.com/FocuswithJustin/gabc2volpiano/core/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	root TEXT NOT NULL,
	driver TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS chants (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL REFERENCES runs(id),
	path TEXT NOT NULL,
	sha256 TEXT NOT NULL,
	blake3 TEXT NOT NULL,
	name TEXT,
	office_part TEXT,
	mode TEXT,
	text TEXT,
	volpiano TEXT,
	error TEXT
);
CREATE TABLE IF NOT EXISTS headers (
	chant_id TEXT NOT NULL REFERENCES chants(id),
	ordinal INTEGER NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (chant_id, ordinal)
);
CREATE INDEX IF NOT EXISTS idx_chants_run ON chants(run_id, path);
`

// Run is one invocation of Export.
type Run struct {
	ID        string
	StartedAt time.Time
	Root      string
	Driver    string
}

// Record is one row of the chants table. Error is empty for converted
// chants; Text and Volpiano are empty for failed ones.
type Record struct {
	ID         string
	RunID      string
	Path       string
	SHA256     string
	BLAKE3     string
	Name       string
	OfficePart string
	Mode       string
	Text       string
	Volpiano   string
	Error      string
}

// HeaderField is one header attribute stored for a chant.
type HeaderField struct {
	Key   string
	Value string
}

// Store is an SQLite corpus database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the corpus database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewIO("initialize", path, err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) insertRun(ctx context.Context, run *Run) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, started_at, root, driver) VALUES (?, ?, ?, ?)",
		run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.Root, run.Driver)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// insertChant writes rec and its header fields in a single transaction.
func (s *Store) insertChant(ctx context.Context, rec *Record, fields []HeaderField) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO chants
		(id, run_id, path, sha256, blake3, name, office_part, mode, text, volpiano, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.RunID, rec.Path, rec.SHA256, rec.BLAKE3,
		rec.Name, rec.OfficePart, rec.Mode, rec.Text, rec.Volpiano, rec.Error)
	if err != nil {
		return fmt.Errorf("insert chant %s: %w", rec.Path, err)
	}

	for i, f := range fields {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO headers (chant_id, ordinal, key, value) VALUES (?, ?, ?, ?)",
			rec.ID, i, f.Key, f.Value); err != nil {
			return fmt.Errorf("insert header %s: %w", f.Key, err)
		}
	}

	return tx.Commit()
}

// Runs returns all recorded runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, started_at, root, driver FROM runs ORDER BY started_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.Root, &r.Driver); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Chants returns the chants of a run ordered by path.
func (s *Store) Chants(ctx context.Context, runID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, run_id, path, sha256, blake3,
		COALESCE(name, ''), COALESCE(office_part, ''), COALESCE(mode, ''),
		COALESCE(text, ''), COALESCE(volpiano, ''), COALESCE(error, '')
		FROM chants WHERE run_id = ? ORDER BY path`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.RunID, &r.Path, &r.SHA256, &r.BLAKE3,
			&r.Name, &r.OfficePart, &r.Mode, &r.Text, &r.Volpiano, &r.Error); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Headers returns the header fields of a chant in source order.
func (s *Store) Headers(ctx context.Context, chantID string) ([]HeaderField, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, value FROM headers WHERE chant_id = ? ORDER BY ordinal", chantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HeaderField
	for rows.Next() {
		var f HeaderField
		if err := rows.Scan(&f.Key, &f.Value); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
