// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package audit persists one append-only entry per analysis run. Each
// entry carries summary columns for listing plus the full serialized
// AnalysisRecord snapshot, keyed by run ID. Entries are never updated or
// deleted. Implements: prd007-audit-log (R1-R3).
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/contract-engine/pkg/types"
)

const dbFile = "audit.db"

// Store manages the audit log SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the audit database at dir/audit.db, creating
// the schema if it does not exist (R1.1).
func NewStore(cfg types.AuditConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "audit"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating audit directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening audit database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			document_name TEXT,
			contract_type TEXT,
			language TEXT,
			risk_level TEXT NOT NULL,
			clause_count INTEGER NOT NULL,
			finding_count INTEGER NOT NULL,
			snapshot TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Append writes one entry for the record. The runs table is append-only:
// a duplicate run ID is rejected by the primary key, and no code path
// updates or deletes rows (R2.1-R2.2).
func (s *Store) Append(ctx context.Context, rec *types.AnalysisRecord) error {
	snapshot, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, created_at, document_name, contract_type, language, risk_level, clause_count, finding_count, snapshot)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		rec.Document.Name,
		string(rec.Document.ContractType),
		string(rec.Document.Language),
		string(rec.Contract.Level),
		len(rec.Clauses),
		len(rec.Findings),
		string(snapshot),
	)
	if err != nil {
		return fmt.Errorf("appending audit entry %s: %w", rec.RunID, err)
	}
	return nil
}

// Entry is one audit log row without the full snapshot.
type Entry struct {
	RunID        string             `json:"run_id" yaml:"run_id"`
	CreatedAt    time.Time          `json:"created_at" yaml:"created_at"`
	DocumentName string             `json:"document_name" yaml:"document_name"`
	ContractType types.ContractType `json:"contract_type" yaml:"contract_type"`
	Language     types.Language     `json:"language" yaml:"language"`
	RiskLevel    types.RiskLevel    `json:"risk_level" yaml:"risk_level"`
	Clauses      int                `json:"clauses" yaml:"clauses"`
	Findings     int                `json:"findings" yaml:"findings"`
}

// List returns entries newest-first, up to limit. A non-positive limit
// uses the store default (R3.1).
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, created_at, document_name, contract_type, language, risk_level, clause_count, finding_count
		 FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.RunID, &created, &e.DocumentName, &e.ContractType, &e.Language, &e.RiskLevel, &e.Clauses, &e.Findings); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp for %s: %w", e.RunID, err)
		}
		e.CreatedAt = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the full record snapshot for a run ID (R3.2).
func (s *Store) Get(ctx context.Context, runID string) (*types.AnalysisRecord, error) {
	var snapshot string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM runs WHERE run_id = ?`, runID,
	).Scan(&snapshot)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("audit entry %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("reading audit entry %s: %w", runID, err)
	}

	var rec types.AnalysisRecord
	if err := yaml.Unmarshal([]byte(snapshot), &rec); err != nil {
		return nil, fmt.Errorf("parsing snapshot for %s: %w", runID, err)
	}
	return &rec, nil
}
