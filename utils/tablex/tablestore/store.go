// File: store.go
// Title: SQLite Table Snapshots
// Description: Persists named snapshots of tablex tables in SQLite. Unlike
//              CSV, a snapshot keeps column descriptions and the kind of
//              every cell, so typed values load back unchanged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-09
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-09 v0.1.0: Initial implementation
// - 2026-10-10 v0.1.1: Column descriptions, snapshot listing

package tablestore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/stringx"
	"github.com/msto63/extkit/utils/tablex"
)

// Snapshot describes a stored table
type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Columns   int       `json:"columns"`
	Rows      int       `json:"rows"`
}

// Store defines snapshot persistence for tables
type Store interface {
	Save(ctx context.Context, name string, t *tablex.Table) (string, error)
	Load(ctx context.Context, name string) (*tablex.Table, error)
	List(ctx context.Context) ([]Snapshot, error)
	Delete(ctx context.Context, name string) (bool, error)
	Close() error
}

// Config holds configuration for the SQLite store
type Config struct {
	Path   string
	Logger *log.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/tables.db",
	}
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	logger *log.Logger
}

var _ Store = (*SQLiteStore)(nil)

// Open opens or creates the database at cfg.Path and migrates the schema
func Open(ctx context.Context, cfg Config) (*SQLiteStore, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.GetDefault().WithName("tablestore")
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.TablestoreFailed("open", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
	if err != nil {
		return nil, errors.TablestoreFailed("open", err)
	}
	// A single connection serializes writers and keeps the pragmas in effect.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db, logger: logger}

	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, errors.TablestoreFailed("migrate", err)
	}

	logger.Debug("table store opened", log.Fields{"path": cfg.Path})
	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME NOT NULL,
		column_count INTEGER NOT NULL,
		row_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS snapshot_columns (
		snapshot_id TEXT NOT NULL REFERENCES snapshots(id),
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (snapshot_id, position)
	);

	CREATE TABLE IF NOT EXISTS snapshot_cells (
		snapshot_id TEXT NOT NULL REFERENCES snapshots(id),
		column_position INTEGER NOT NULL,
		row_index INTEGER NOT NULL,
		kind TEXT NOT NULL,
		value TEXT,
		PRIMARY KEY (snapshot_id, column_position, row_index)
	);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Save stores t under name, replacing an existing snapshot of that name.
// It returns the id of the new snapshot.
func (s *SQLiteStore) Save(ctx context.Context, name string, t *tablex.Table) (string, error) {
	if stringx.IsBlank(name) {
		return "", errors.InvalidInput(errors.ModuleTablestore, "save", name, "a non-blank snapshot name")
	}
	if t == nil {
		return "", errors.InvalidInput(errors.ModuleTablestore, "save", nil, "a table")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timer := s.logger.StartTimer("save_snapshot").WithField("snapshot", name)

	id, err := s.save(ctx, name, t)
	if err != nil {
		timer.StopWithError(err)
		return "", errors.TablestoreFailed("save", err)
	}

	timer.Stop()
	return id, nil
}

func (s *SQLiteStore) save(ctx context.Context, name string, t *tablex.Table) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := deleteByName(ctx, tx, name); err != nil {
		return "", err
	}

	id := uuid.NewString()
	columns := t.GetColumns()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, name, created_at, column_count, row_count)
		VALUES (?, ?, ?, ?, ?)
	`, id, name, time.Now().UTC(), len(columns), t.RowCount()); err != nil {
		return "", err
	}

	colStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_columns (snapshot_id, position, name, description)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return "", err
	}
	defer colStmt.Close()

	cellStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_cells (snapshot_id, column_position, row_index, kind, value)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", err
	}
	defer cellStmt.Close()

	for pos, c := range columns {
		if _, err := colStmt.ExecContext(ctx, id, pos, c.Name(), c.Description()); err != nil {
			return "", err
		}
		for row, v := range c.Values() {
			if _, err := cellStmt.ExecContext(ctx, id, pos, row, v.Kind().String(), encodeValue(v)); err != nil {
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Load restores the snapshot stored under name. A missing snapshot is a
// NOT_FOUND error.
func (s *SQLiteStore) Load(ctx context.Context, name string) (*tablex.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM snapshots WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, errors.TablestoreNotFound("load", name)
	}
	if err != nil {
		return nil, errors.TablestoreFailed("load", err)
	}

	t := tablex.New()
	t.SetLogger(s.logger)

	columns, err := s.loadColumns(ctx, id)
	if err != nil {
		return nil, errors.TablestoreFailed("load", err)
	}
	for _, c := range columns {
		t.AddColumnRef(c)
	}

	if err := s.loadCells(ctx, id, columns); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *SQLiteStore) loadColumns(ctx context.Context, id string) ([]*tablex.Column, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description FROM snapshot_columns
		WHERE snapshot_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []*tablex.Column
	for rows.Next() {
		var name, description string
		if err := rows.Scan(&name, &description); err != nil {
			return nil, err
		}
		columns = append(columns, tablex.NewColumn(name, description))
	}
	return columns, rows.Err()
}

func (s *SQLiteStore) loadCells(ctx context.Context, id string, columns []*tablex.Column) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT column_position, kind, value FROM snapshot_cells
		WHERE snapshot_id = ? ORDER BY column_position, row_index
	`, id)
	if err != nil {
		return errors.TablestoreFailed("load", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pos   int
			kind  string
			value sql.NullString
		)
		if err := rows.Scan(&pos, &kind, &value); err != nil {
			return errors.TablestoreFailed("load", err)
		}
		if pos < 0 || pos >= len(columns) {
			return corruptCell(id, pos, kind, "column position out of range")
		}

		v, err := decodeValue(kind, value)
		if err != nil {
			return corruptCell(id, pos, kind, err.Error())
		}
		columns[pos].Append(v)
	}
	if err := rows.Err(); err != nil {
		return errors.TablestoreFailed("load", err)
	}
	return nil
}

// List returns all snapshots ordered by name
func (s *SQLiteStore) List(ctx context.Context) ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at, column_count, row_count
		FROM snapshots ORDER BY name
	`)
	if err != nil {
		return nil, errors.TablestoreFailed("list", err)
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0)
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.CreatedAt, &snap.Columns, &snap.Rows); err != nil {
			return nil, errors.TablestoreFailed("list", err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.TablestoreFailed("list", err)
	}
	return snapshots, nil
}

// Delete removes the snapshot stored under name and reports whether one
// existed
func (s *SQLiteStore) Delete(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, errors.TablestoreFailed("delete", err)
	}
	defer tx.Rollback()

	deleted, err := deleteByName(ctx, tx, name)
	if err != nil {
		return false, errors.TablestoreFailed("delete", err)
	}
	if err := tx.Commit(); err != nil {
		return false, errors.TablestoreFailed("delete", err)
	}

	if deleted {
		s.logger.Audit("table snapshot deleted", log.Fields{"snapshot": name})
	}
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// deleteByName removes a snapshot with its columns and cells
func deleteByName(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM snapshots WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	for _, stmt := range []string{
		`DELETE FROM snapshot_cells WHERE snapshot_id = ?`,
		`DELETE FROM snapshot_columns WHERE snapshot_id = ?`,
		`DELETE FROM snapshots WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return false, err
		}
	}
	return true, nil
}

func corruptCell(id string, pos int, kind, reason string) *mdwerror.Error {
	return errors.NewErrorBuilder(errors.ModuleTablestore).
		Operation("load").
		Messagef("corrupt cell in snapshot %s: %s", id, reason).
		Code(mdwerror.CodeInvalidFormat).
		Severity(mdwerror.SeverityHigh).
		Detail("column_position", pos).
		Detail("kind", kind).
		Build()
}

// encodeValue stores a value as text without loss; null is SQL NULL
func encodeValue(v tablex.Value) any {
	switch v.Kind() {
	case tablex.KindNull:
		return nil
	case tablex.KindFloat:
		f, _ := v.Float()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case tablex.KindTime:
		t, _ := v.Time()
		return t.Format(time.RFC3339Nano)
	default:
		return v.String()
	}
}

func decodeValue(kind string, value sql.NullString) (tablex.Value, error) {
	k, ok := tablex.ParseKind(kind)
	if !ok {
		return tablex.Value{}, mdwerror.New("unknown kind " + strconv.Quote(kind))
	}
	if k == tablex.KindNull {
		return tablex.NullValue(), nil
	}
	if !value.Valid {
		return tablex.Value{}, mdwerror.New("missing value for kind " + kind)
	}

	switch k {
	case tablex.KindString:
		return tablex.StringValue(value.String), nil
	case tablex.KindInt:
		i, err := strconv.ParseInt(value.String, 10, 64)
		return tablex.IntValue(i), err
	case tablex.KindFloat:
		f, err := strconv.ParseFloat(value.String, 64)
		return tablex.FloatValue(f), err
	case tablex.KindBool:
		b, err := strconv.ParseBool(value.String)
		return tablex.BoolValue(b), err
	default:
		t, err := time.Parse(time.RFC3339Nano, value.String)
		return tablex.TimeValue(t), err
	}
}
