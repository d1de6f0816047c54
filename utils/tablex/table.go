// File: table.go
// Title: In-Memory Tabular Store
// Description: Table owns an ordered list of uniquely named columns. Name
//              lookups are case-insensitive through a folded-key index,
//              insertion order is kept separately for iteration and CSV
//              output. Lookups never fail; misses are reported by the return
//              value and a warning on the table logger.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-02 v0.1.0: Columns and cell operations
// - 2026-10-08 v0.2.0: Column references, per-table logger

package tablex

import (
	"slices"

	"golang.org/x/text/cases"

	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/stringx"
)

// Table is a column-major table. It is not safe for concurrent mutation;
// callers serialize access.
type Table struct {
	columns []*Column
	index   map[string]*Column
	logger  *log.Logger
}

// New creates a table, optionally with initial columns
func New(names ...string) *Table {
	t := &Table{
		index:  make(map[string]*Column),
		logger: log.GetDefault().WithName("tablex"),
	}
	for _, name := range names {
		t.AddColumn(name)
	}
	return t
}

// SetLogger replaces the diagnostics logger; nil discards diagnostics
func (t *Table) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.Discard()
	}
	t.logger = logger
}

// foldName returns the lookup key for a column name. A Caser keeps state,
// so a fresh one is used per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// AddColumn appends a new column. A blank name or a name already present
// (ignoring case) leaves the table unchanged and returns false.
func (t *Table) AddColumn(name string, description ...string) bool {
	return t.AddColumnRef(NewColumn(name, description...))
}

// AddColumnRef appends an existing column, which the table then owns
func (t *Table) AddColumnRef(c *Column) bool {
	if c == nil {
		return false
	}
	if stringx.IsBlank(c.name) {
		t.logger.Warn("column name is blank, column not added")
		return false
	}

	key := foldName(c.name)
	if _, exists := t.index[key]; exists {
		t.logger.Warn("column already exists", log.Fields{"column": c.name})
		return false
	}

	t.index[key] = c
	t.columns = append(t.columns, c)
	return true
}

// GetColumn returns the column with the given name, or nil
func (t *Table) GetColumn(name string) *Column {
	return t.index[foldName(name)]
}

// HasColumn reports whether a column with the given name exists
func (t *Table) HasColumn(name string) bool {
	return t.GetColumn(name) != nil
}

// GetColumns returns the columns in table order. The slice is a copy, the
// columns are not.
func (t *Table) GetColumns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames returns the column names in table order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// RowCount returns the length of the longest column
func (t *Table) RowCount() int {
	rows := 0
	for _, c := range t.columns {
		if c.Len() > rows {
			rows = c.Len()
		}
	}
	return rows
}

// IndexOf returns the position of the named column, or -1
func (t *Table) IndexOf(name string) int {
	return t.position(t.GetColumn(name))
}

func (t *Table) position(c *Column) int {
	if c == nil {
		return -1
	}
	for i, existing := range t.columns {
		if existing == c {
			return i
		}
	}
	return -1
}

// RemoveColumn removes the named column. It returns false if there is none.
func (t *Table) RemoveColumn(name string) bool {
	return t.removeAt(t.IndexOf(name))
}

// RemoveColumnRef removes c if the table owns it
func (t *Table) RemoveColumnRef(c *Column) bool {
	return t.removeAt(t.position(c))
}

func (t *Table) removeAt(i int) bool {
	if i < 0 {
		return false
	}
	c := t.columns[i]
	delete(t.index, foldName(c.name))
	t.columns = slices.Delete(t.columns, i, i+1)
	return true
}

// MoveColumn swaps the named column with the column at newIndex. Columns
// between the two positions do not shift. It returns false if the column
// is missing or newIndex is out of range.
func (t *Table) MoveColumn(name string, newIndex int) bool {
	return t.swap(t.IndexOf(name), newIndex, name)
}

// MoveColumnRef is MoveColumn for a column reference
func (t *Table) MoveColumnRef(c *Column, newIndex int) bool {
	name := ""
	if c != nil {
		name = c.name
	}
	return t.swap(t.position(c), newIndex, name)
}

func (t *Table) swap(from, to int, name string) bool {
	if from < 0 {
		return false
	}
	if to < 0 || to >= len(t.columns) {
		t.logger.Warn("column index out of range", log.Fields{
			"column":  name,
			"index":   to,
			"columns": len(t.columns),
		})
		return false
	}
	t.columns[from], t.columns[to] = t.columns[to], t.columns[from]
	return true
}

// AddData appends values to the named column in the given order. It returns
// false and logs a warning if the column does not exist.
func (t *Table) AddData(name string, values ...any) bool {
	c := t.GetColumn(name)
	if c == nil {
		t.logger.Warn("column not found, data not added", log.Fields{"column": name})
		return false
	}
	c.Append(values...)
	return true
}

// ExistsData reports whether the named column contains value
func (t *Table) ExistsData(name string, value any) bool {
	c := t.GetColumn(name)
	if c == nil {
		return false
	}
	return c.Contains(value)
}

// RemoveData removes every occurrence of each value from the named column
// and returns the number of removed cells
func (t *Table) RemoveData(name string, values ...any) int {
	c := t.GetColumn(name)
	if c == nil {
		t.logger.Debug("column not found, nothing removed", log.Fields{"column": name})
		return 0
	}
	return c.Remove(values...)
}

// GetData returns a copy of the named column's values. A missing column
// yields an empty slice.
func (t *Table) GetData(name string) []Value {
	c := t.GetColumn(name)
	if c == nil {
		return []Value{}
	}
	return c.Values()
}

// Row returns the values at row index i in column order. Columns shorter
// than i+1 contribute a null value.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.columns))
	for j, c := range t.columns {
		if v, ok := c.At(i); ok {
			row[j] = v
		}
	}
	return row
}
