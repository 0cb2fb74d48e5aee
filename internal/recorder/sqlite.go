package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			user_name   TEXT,
			age         INTEGER,
			gender      TEXT,
			mode        TEXT,
			score       INTEGER,
			gap_count   INTEGER,
			risk_total  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS health_risks (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    INTEGER NOT NULL,
			category  TEXT,
			level     INTEGER,
			reason    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_risks_run ON health_risks(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:30], err)
		}
	}
	return nil
}

// RecordRun stores one analysis run and its per-category health risks.
func (r *SQLiteRecorder) RecordRun(snap *RunSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var riskTotal int64
	for _, hr := range snap.Risks {
		riskTotal += int64(hr.RiskLevel)
	}

	res, err := r.db.Exec(`
		INSERT INTO analysis_runs
			(timestamp, user_name, age, gender, mode, score, gap_count, risk_total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), snap.UserName, snap.Age, string(snap.Gender),
		string(snap.Mode), snap.Score, snap.GapCount, riskTotal)
	if err != nil {
		return fmt.Errorf("insert analysis run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}

	for _, hr := range snap.Risks {
		if _, err := r.db.Exec(`
			INSERT INTO health_risks (run_id, category, level, reason)
			VALUES (?, ?, ?, ?)`,
			runID, string(hr.Category), hr.RiskLevel, hr.Reason); err != nil {
			return fmt.Errorf("insert health risk: %w", err)
		}
	}
	return nil
}

// RecentRuns returns the most recent runs, newest first.
func (r *SQLiteRecorder) RecentRuns(limit int) ([]RunRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(`
		SELECT id, timestamp, user_name, age, gender, mode, score, gap_count, risk_total
		FROM analysis_runs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.UserName, &rec.Age,
			&rec.Gender, &rec.Mode, &rec.Score, &rec.GapCount, &rec.RiskTotal); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
