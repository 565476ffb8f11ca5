package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	name TEXT PRIMARY KEY,
	pin TEXT NOT NULL,
	balance REAL NOT NULL
);
`

// SQLite keeps the snapshot in a single accounts table. Save replaces the
// table contents inside one transaction, so a snapshot is never
// half-written even if the process dies mid-save.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load() ([]Record, error) {
	rows, err := s.db.Query(`SELECT name, pin, balance FROM accounts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Name, &r.PIN, &r.Balance); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (s *SQLite) Save(recs []Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM accounts`); err != nil {
		tx.Rollback()
		return err
	}
	for _, r := range recs {
		if _, err := tx.Exec(
			`INSERT INTO accounts (name, pin, balance) VALUES (?, ?, ?)`,
			r.Name, r.PIN, r.Balance,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
