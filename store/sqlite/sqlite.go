/*
Package sqlite provides a SQLite-backed run-history store.

PURPOSE:
  Persists an audit row for every budget computation served through the
  API. The calculator itself is pure and never reads these rows back into
  computation - the store is write-mostly history for operators ("what was
  computed, when, and from which requested identifier").

KEY TABLE:
  budget_runs: One row per computed summary. Money columns are stored as
  decimal TEXT to avoid float drift; the full summary document is kept as
  JSON for later inspection.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block and crash recovery improves.

USAGE:
  store, err := sqlite.New("./data/budget.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - api/handlers.go: Writes and lists runs
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists budget run history in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// RunRecord is one persisted budget computation.
type RunRecord struct {
	ID                string
	RequestedScenario string // Identifier as the caller sent it
	Scenario          string // Effective scenario after fallback
	TotalStaff        int
	TotalAnnualBudget string // Decimal text
	PersonnelCosts    string
	OperationalCosts  string
	CostPerEmployee   string
	SummaryJSON       string // Full export-shaped summary document
	CreatedAt         time.Time
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS budget_runs (
		id TEXT PRIMARY KEY,
		requested_scenario TEXT NOT NULL,
		scenario TEXT NOT NULL,
		total_staff INTEGER NOT NULL,
		total_annual_budget TEXT NOT NULL,
		personnel_costs TEXT NOT NULL,
		operational_costs TEXT NOT NULL,
		cost_per_employee TEXT NOT NULL,
		summary_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_budget_runs_scenario
		ON budget_runs(scenario);
	CREATE INDEX IF NOT EXISTS idx_budget_runs_created_at
		ON budget_runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveRun inserts one run row.
func (s *Store) SaveRun(ctx context.Context, run RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_runs (
			id, requested_scenario, scenario, total_staff,
			total_annual_budget, personnel_costs, operational_costs,
			cost_per_employee, summary_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.RequestedScenario, run.Scenario, run.TotalStaff,
		run.TotalAnnualBudget, run.PersonnelCosts, run.OperationalCosts,
		run.CostPerEmployee, run.SummaryJSON,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}
	return nil
}

// GetRun returns one run by ID, or nil when it does not exist.
func (s *Store) GetRun(ctx context.Context, id string) (*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, requested_scenario, scenario, total_staff,
		       total_annual_budget, personnel_costs, operational_costs,
		       cost_per_employee, summary_json, created_at
		FROM budget_runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns up to limit runs, most recent first.
// A limit <= 0 returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, requested_scenario, scenario, total_staff,
		       total_annual_budget, personnel_costs, operational_costs,
		       cost_per_employee, summary_json, created_at
		FROM budget_runs ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Reset deletes all run history. Dev and test use only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM budget_runs`)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*RunRecord, error) {
	var run RunRecord
	var createdAt string

	err := row.Scan(
		&run.ID, &run.RequestedScenario, &run.Scenario, &run.TotalStaff,
		&run.TotalAnnualBudget, &run.PersonnelCosts, &run.OperationalCosts,
		&run.CostPerEmployee, &run.SummaryJSON, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return &run, nil
}
