// Package usagelog records one row per dispatched invocation so hosts can
// answer "what ran, for whom, and how did it end" after the fact.
package usagelog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dispatch-tools/chatcmd/internal/usagelog/migrations"
)

// Outcome tags how an invocation ended.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeRejected Outcome = "rejected"
	OutcomeFault    Outcome = "fault"
)

// Record is one dispatched invocation.
type Record struct {
	ID         string
	Command    string
	SubCommand string
	Sender     string
	Outcome    Outcome
	Duration   time.Duration
	At         time.Time
}

// Open opens (or creates) the usage database at path and applies pending
// migrations. Callers own the returned handle.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open usage db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping usage db: %w", err)
	}

	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure usage db: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate usage db: %w", err)
	}

	return db, nil
}

// Insert stores one record. A missing ID or timestamp is filled in.
func Insert(db *sql.DB, r Record) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.At.IsZero() {
		r.At = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO invocations
		 (id, command, sub_command, sender, outcome, duration_ms, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Command,
		r.SubCommand,
		r.Sender,
		string(r.Outcome),
		r.Duration.Milliseconds(),
		r.At.Format(time.RFC3339),
	)
	return err
}

// Recent returns the latest records, newest first.
func Recent(db *sql.DB, limit int) ([]Record, error) {
	rows, err := db.Query(
		`SELECT id, command, sub_command, sender, outcome, duration_ms, at
		 FROM invocations
		 ORDER BY at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		r          Record
		outcome    string
		durationMS int64
		at         string
	)

	if err := rows.Scan(
		&r.ID,
		&r.Command,
		&r.SubCommand,
		&r.Sender,
		&outcome,
		&durationMS,
		&at,
	); err != nil {
		return Record{}, err
	}

	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return Record{}, err
	}

	r.Outcome = Outcome(outcome)
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.At = t
	return r, nil
}
