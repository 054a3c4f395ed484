package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"options-builder/internal/payoff"
)

// SQLiteStore implements StrategyStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and ensures the
// schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS strategies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		strategy_type TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		expiry_date TEXT NOT NULL,
		parameters TEXT NOT NULL DEFAULT '{}',
		custom_legs TEXT NOT NULL DEFAULT '[]',
		notes TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_strategies_name ON strategies(name);
	CREATE INDEX IF NOT EXISTS idx_strategies_type ON strategies(strategy_type);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Create inserts a strategy and fills in its ID and timestamps.
func (s *SQLiteStore) Create(ctx context.Context, st *Strategy) error {
	params, legs, err := marshalJSONColumns(st.Parameters, st.CustomLegs)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO strategies (name, strategy_type, entry_date, expiry_date, parameters, custom_legs, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		st.Name, st.StrategyType, st.EntryDate, st.ExpiryDate, params, legs, st.Notes, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert strategy: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert strategy id: %w", err)
	}
	st.ID = id
	st.CreatedAt = now
	st.UpdatedAt = now
	return nil
}

// List returns saved strategies in insertion order with offset pagination.
func (s *SQLiteStore) List(ctx context.Context, skip, limit int) ([]Strategy, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, strategy_type, entry_date, expiry_date, parameters, custom_legs, notes, created_at, updated_at
		FROM strategies ORDER BY id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list strategies: %w", err)
	}
	defer rows.Close()

	strategies := []Strategy{}
	for rows.Next() {
		st, err := scanStrategy(rows)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, *st)
	}
	return strategies, rows.Err()
}

// Get returns the strategy with the given ID, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (*Strategy, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, strategy_type, entry_date, expiry_date, parameters, custom_legs, notes, created_at, updated_at
		FROM strategies WHERE id = ?`, id)

	st, err := scanStrategy(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Update applies the non-nil fields of upd and returns the updated record.
func (s *SQLiteStore) Update(ctx context.Context, id int64, upd StrategyUpdate) (*Strategy, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		st.Name = *upd.Name
	}
	if upd.StrategyType != nil {
		st.StrategyType = *upd.StrategyType
	}
	if upd.EntryDate != nil {
		st.EntryDate = *upd.EntryDate
	}
	if upd.ExpiryDate != nil {
		st.ExpiryDate = *upd.ExpiryDate
	}
	if upd.Parameters != nil {
		st.Parameters = upd.Parameters
	}
	if upd.CustomLegs != nil {
		st.CustomLegs = upd.CustomLegs
	}
	if upd.Notes != nil {
		st.Notes = *upd.Notes
	}

	params, legs, err := marshalJSONColumns(st.Parameters, st.CustomLegs)
	if err != nil {
		return nil, err
	}

	st.UpdatedAt = time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		UPDATE strategies
		SET name = ?, strategy_type = ?, entry_date = ?, expiry_date = ?, parameters = ?, custom_legs = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		st.Name, st.StrategyType, st.EntryDate, st.ExpiryDate, params, legs, st.Notes, st.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update strategy %d: %w", id, err)
	}
	return st, nil
}

// Delete removes the strategy with the given ID, or returns ErrNotFound.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM strategies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete strategy %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalJSONColumns(params map[string]any, legs []payoff.Leg) (string, string, error) {
	if params == nil {
		params = map[string]any{}
	}
	if legs == nil {
		legs = []payoff.Leg{}
	}
	p, err := json.Marshal(params)
	if err != nil {
		return "", "", fmt.Errorf("marshal parameters: %w", err)
	}
	l, err := json.Marshal(legs)
	if err != nil {
		return "", "", fmt.Errorf("marshal custom legs: %w", err)
	}
	return string(p), string(l), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStrategy(row rowScanner) (*Strategy, error) {
	var st Strategy
	var params, legs string
	var notes sql.NullString

	err := row.Scan(
		&st.ID, &st.Name, &st.StrategyType, &st.EntryDate, &st.ExpiryDate,
		&params, &legs, &notes, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	st.Notes = notes.String
	if err := json.Unmarshal([]byte(params), &st.Parameters); err != nil {
		return nil, fmt.Errorf("unmarshal parameters for strategy %d: %w", st.ID, err)
	}
	if err := json.Unmarshal([]byte(legs), &st.CustomLegs); err != nil {
		return nil, fmt.Errorf("unmarshal custom legs for strategy %d: %w", st.ID, err)
	}
	return &st, nil
}
