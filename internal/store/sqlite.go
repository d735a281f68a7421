package store

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spent/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

var sqliteSeq atomic.Int64

// SQLite is a Backend on a private in-memory SQLite database.
// Nothing is written to disk; the data lives as long as the handle.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens a fresh in-memory database and creates the schema.
func OpenSQLite() (*SQLite, error) {
	name := fmt.Sprintf("file:spent-%d?mode=memory&cache=shared&_pragma=foreign_keys(on)", sqliteSeq.Add(1))

	db, err := sql.Open("sqlite", name)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	// One connection keeps the in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database, discarding its contents.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// List returns every expense ordered by seq.
func (s *SQLite) List() ([]model.Expense, error) {
	rows, err := s.db.Query(`SELECT id, title, amount, category, date, description
		FROM expenses ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func scanExpense(rows *sql.Rows) (model.Expense, error) {
	var e model.Expense
	var amount, category, date string
	if err := rows.Scan(&e.ID, &e.Title, &amount, &category, &date, &e.Description); err != nil {
		return model.Expense{}, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Expense{}, fmt.Errorf("expense %s amount %q: %w", e.ID, amount, err)
	}
	e.Amount = d
	e.Category = model.Category(category)
	e.Date, err = time.Parse(model.DateLayout, date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("expense %s date %q: %w", e.ID, date, err)
	}
	return e, nil
}

// Insert stores e ahead of every existing row.
func (s *SQLite) Insert(e model.Expense) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRow("SELECT COUNT(*) FROM expenses WHERE id = ?", e.ID).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateID
	}

	_, err = tx.Exec(`INSERT INTO expenses (id, seq, title, amount, category, date, description)
		VALUES (?, (SELECT COALESCE(MIN(seq), 0) - 1 FROM expenses), ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Amount.String(), string(e.Category), e.DateString(), e.Description,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Replace overwrites the row with e's id, keeping its seq.
func (s *SQLite) Replace(e model.Expense) error {
	res, err := s.db.Exec(`UPDATE expenses
		SET title = ?, amount = ?, category = ?, date = ?, description = ?
		WHERE id = ?`,
		e.Title, e.Amount.String(), string(e.Category), e.DateString(), e.Description, e.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes the row with id.
func (s *SQLite) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Count returns the number of stored rows.
func (s *SQLite) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
