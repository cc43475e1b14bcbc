// Package history records conformance runs in a sqlite database so CI can
// query pass/fail trends across revisions. Recording is optional; the
// runner's stdout contract and exit code never depend on it.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/funvibe/reduct/internal/runner"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	total      INTEGER NOT NULL,
	failed     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	seq      INTEGER NOT NULL,
	name     TEXT NOT NULL,
	passed   INTEGER NOT NULL,
	expected TEXT NOT NULL DEFAULT '',
	actual   TEXT NOT NULL DEFAULT '',
	message  TEXT NOT NULL DEFAULT ''
);
`

// Store wraps the database handle. Open it once per process.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// NewRunID mints the identifier shared by the history row and any published
// results for the same run.
func NewRunID() string {
	return uuid.NewString()
}

// Record stores one run and its per-case results in a single transaction.
// The seq column preserves report order.
func (s *Store) Record(id string, startedAt time.Time, summary runner.Summary) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, started_at, total, failed) VALUES (?, ?, ?, ?)`,
		id, startedAt.UTC().Format(time.RFC3339), summary.Total, summary.Failed,
	)
	if err != nil {
		return err
	}

	for i, result := range summary.Results {
		message := ""
		if result.Err != nil {
			message = result.Err.Error()
		}
		_, err = tx.Exec(
			`INSERT INTO results (run_id, seq, name, passed, expected, actual, message)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, i, result.Name, result.Status == runner.StatusPassed,
			result.Expected, result.Actual, message,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Run is one recorded run, for queries.
type Run struct {
	ID        string
	StartedAt time.Time
	Total     int
	Failed    int
}

// Runs lists recorded runs, most recent first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`SELECT id, started_at, total, failed FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAt string
		if err := rows.Scan(&run.ID, &startedAt, &run.Total, &run.Failed); err != nil {
			return nil, err
		}
		run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ResultRow is one recorded case outcome, for queries.
type ResultRow struct {
	Name     string
	Passed   bool
	Expected string
	Actual   string
	Message  string
}

// Results lists the outcomes of one run in report order.
func (s *Store) Results(runID string) ([]ResultRow, error) {
	rows, err := s.db.Query(
		`SELECT name, passed, expected, actual, message FROM results WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ResultRow
	for rows.Next() {
		var row ResultRow
		if err := rows.Scan(&row.Name, &row.Passed, &row.Expected, &row.Actual, &row.Message); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
