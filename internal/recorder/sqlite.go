package recorder

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"property-forecast/internal/forecast"
)

// SQLiteRecorder stores run summaries and their monthly points in SQLite.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log logrus.FieldLogger
	now func() time.Time
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string, log logrus.FieldLogger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	r := &SQLiteRecorder{db: db, log: log, now: time.Now}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.WithField("path", dbPath).Info("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS forecast_runs (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp           INTEGER NOT NULL,
			label               TEXT NOT NULL,
			horizon_months      INTEGER NOT NULL,
			assumptions         TEXT NOT NULL,
			final_property_real REAL,
			final_fund_real     REAL,
			final_real_delta    REAL,
			leader              TEXT,
			crossover_month     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON forecast_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS forecast_points (
			run_id           INTEGER NOT NULL REFERENCES forecast_runs(id),
			month            INTEGER NOT NULL,
			property_nominal REAL,
			property_real    REAL,
			fund_nominal     REAL,
			fund_real        REAL,
			cash_flow        REAL,
			PRIMARY KEY (run_id, month)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the run and every month of both series in one transaction.
func (r *SQLiteRecorder) RecordRun(res *forecast.Result) (int64, error) {
	if res == nil || res.Comparison == nil {
		return 0, errors.New("nothing to record")
	}
	assumptions, err := json.Marshal(res.Assumptions)
	if err != nil {
		return 0, fmt.Errorf("encode assumptions: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	s := res.Comparison.Summary
	var crossover sql.NullInt64
	if s.CrossoverMonth != nil {
		crossover = sql.NullInt64{Int64: int64(*s.CrossoverMonth), Valid: true}
	}
	out, err := tx.Exec(`INSERT INTO forecast_runs
		(timestamp, label, horizon_months, assumptions,
		 final_property_real, final_fund_real, final_real_delta, leader, crossover_month)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		r.now().Unix(), res.Label, res.Assumptions.HorizonMonths, string(assumptions),
		s.FinalProperty.Real, s.FinalFund.Real, s.FinalRealDelta, string(s.Leader), crossover,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`INSERT INTO forecast_points
		(run_id, month, property_nominal, property_real, fund_nominal, fund_real, cash_flow)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	prop, fund := res.Comparison.Property, res.Comparison.Fund
	for i, p := range prop.Points {
		f := fund.Points[i]
		if _, err := stmt.Exec(id, p.Month, p.Nominal, p.Real, f.Nominal, f.Real, p.CashFlow); err != nil {
			return 0, fmt.Errorf("insert month %d: %w", p.Month, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	r.log.WithFields(logrus.Fields{"run_id": id, "label": res.Label}).Debug("forecast run recorded")
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (r *SQLiteRecorder) RecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(`SELECT id, timestamp, label, horizon_months,
		final_property_real, final_fund_real, final_real_delta, leader, crossover_month
		FROM forecast_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			run       RunSummary
			ts        int64
			crossover sql.NullInt64
		)
		if err := rows.Scan(&run.ID, &ts, &run.Label, &run.HorizonMonths,
			&run.FinalPropertyReal, &run.FinalFundReal, &run.FinalRealDelta, &run.Leader, &crossover); err != nil {
			return nil, err
		}
		run.RecordedAt = time.Unix(ts, 0).UTC()
		if crossover.Valid {
			m := int(crossover.Int64)
			run.CrossoverMonth = &m
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// PointCount reports how many monthly points are stored for a run.
func (r *SQLiteRecorder) PointCount(runID int64) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM forecast_points WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
