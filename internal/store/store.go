// Package store holds the loaded dataset in an in-memory SQLite database
// and answers the selection queries the dashboard is built from.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/dmaia/cpidash/internal/model"
)

const dateLayout = "2006-01-02"

// Store is the process-wide dataset. It is written once during load and
// read-only afterwards, so no locking is layered on top of database/sql.
type Store struct {
	db *sql.DB
}

// Open creates an empty in-memory store.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening dataset db: %w", err)
	}

	// The :memory: DSN is per-connection; a second connection would see an
	// empty database with no schema.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert bulk-loads observations in a single transaction. Duplicate
// (division, state, date) rows keep the last value seen.
func (s *Store) Insert(obs []model.Observation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO observations
		(date, division, state, inflation_mom, label)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, o := range obs {
		_, err := stmt.Exec(o.Date.UTC().Format(dateLayout), o.Division, o.State, o.InflationMoM, o.Label)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Count returns the number of stored observations.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM observations").Scan(&n)
	return n, err
}

// Filter returns the observations matching division and state, optionally
// restricted to a closed date interval, ascending by date. A selection that
// matches nothing yields an empty series, not an error.
func (s *Store) Filter(division, state string, r *model.DateRange) (model.Series, error) {
	query := `SELECT date, division, state, inflation_mom, label
		FROM observations WHERE division = ? AND state = ?`
	args := []any{division, state}

	if r != nil {
		query += " AND date >= ? AND date <= ?"
		args = append(args, r.From.UTC().Format(dateLayout), r.To.UTC().Format(dateLayout))
	}
	query += " ORDER BY date ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var series model.Series
	for rows.Next() {
		var o model.Observation
		var dateStr string
		if err := rows.Scan(&dateStr, &o.Division, &o.State, &o.InflationMoM, &o.Label); err != nil {
			return nil, err
		}
		o.Date, err = time.ParseInLocation(dateLayout, dateStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("corrupt date %q: %w", dateStr, err)
		}
		series = append(series, o)
	}
	return series, rows.Err()
}

// Categories returns the display labels of the mapped divisions present in
// the dataset, sorted alphabetically. Unmapped codes (empty label) are
// excluded: they exist in the data but are never offered for selection.
func (s *Store) Categories() ([]string, error) {
	return s.stringColumn(
		"SELECT DISTINCT label FROM observations WHERE label != '' ORDER BY label ASC")
}

// States returns the states that have observations for the given division,
// sorted alphabetically.
func (s *Store) States(division string) ([]string, error) {
	return s.stringColumn(
		"SELECT DISTINCT state FROM observations WHERE division = ? ORDER BY state ASC", division)
}

// DateBounds returns the min and max observation dates for a selection.
// ok is false when the selection has no rows.
func (s *Store) DateBounds(division, state string) (minDate, maxDate time.Time, ok bool, err error) {
	var lo, hi sql.NullString
	err = s.db.QueryRow(
		"SELECT MIN(date), MAX(date) FROM observations WHERE division = ? AND state = ?",
		division, state,
	).Scan(&lo, &hi)
	if err != nil || !lo.Valid || !hi.Valid {
		return time.Time{}, time.Time{}, false, err
	}

	minDate, err = time.ParseInLocation(dateLayout, lo.String, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	maxDate, err = time.ParseInLocation(dateLayout, hi.String, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	return minDate, maxDate, true, nil
}

// Months returns the distinct observation dates for a selection, ascending.
// Used to populate the date-range picker.
func (s *Store) Months(division, state string) ([]time.Time, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT date FROM observations WHERE division = ? AND state = ? ORDER BY date ASC",
		division, state)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []time.Time
	for rows.Next() {
		var ds string
		if err := rows.Scan(&ds); err != nil {
			return nil, err
		}
		t, err := time.ParseInLocation(dateLayout, ds, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("corrupt date %q: %w", ds, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) stringColumn(query string, args ...any) ([]string, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
