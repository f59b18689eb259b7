// Package migrations brings the usage-log schema up to date from SQL files
// embedded as sql/NN_description.sql.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var embedded embed.FS

type step struct {
	version     int
	description string
	statements  string
}

// Run applies every step not yet recorded in schema_migrations, each inside
// its own transaction. Safe to call on every open; an up-to-date database is
// a no-op.
func Run(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	steps, err := loadSteps()
	if err != nil {
		return err
	}

	for _, s := range steps {
		if applied[s.version] {
			continue
		}
		if err := applyStep(db, s); err != nil {
			return err
		}
	}
	return nil
}

func applyStep(db *sql.DB, s step) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration %d: %w", s.version, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(s.statements); err != nil {
		return fmt.Errorf("apply migration %d (%s): %w", s.version, s.description, err)
	}
	if _, err := tx.Exec(
		`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
		s.version, s.description,
	); err != nil {
		return fmt.Errorf("record migration %d: %w", s.version, err)
	}
	return tx.Commit()
}

func loadSteps() ([]step, error) {
	dir, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	names, err := fs.Glob(dir, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	byVersion := make(map[int]step, len(names))
	for _, name := range names {
		base := strings.TrimSuffix(name, ".sql")
		prefix, description, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: want NN_description.sql", name)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s: bad version: %w", name, err)
		}
		if dup, exists := byVersion[version]; exists {
			return nil, fmt.Errorf("version %d declared twice: %s and %s", version, dup.description, description)
		}

		content, err := fs.ReadFile(dir, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		byVersion[version] = step{
			version:     version,
			description: description,
			statements:  string(content),
		}
	}

	steps := make([]step, 0, len(byVersion))
	for _, s := range byVersion {
		steps = append(steps, s)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].version < steps[j].version })
	return steps, nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
