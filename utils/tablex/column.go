// File: column.go
// Title: Table Columns
// Description: A named, ordered sequence of cell values. Columns of one
//              table grow independently, so a table may be ragged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation

package tablex

// Column holds the values of one table column in insertion order.
// The name is fixed at creation; the owning table indexes it.
type Column struct {
	name        string
	description string
	values      []Value
}

// NewColumn creates a detached column for Table.AddColumnRef
func NewColumn(name string, description ...string) *Column {
	c := &Column{name: name}
	if len(description) > 0 {
		c.description = description[0]
	}
	return c
}

// Name returns the column name as given on creation
func (c *Column) Name() string { return c.name }

// Description returns the optional description
func (c *Column) Description() string { return c.description }

// SetDescription replaces the description
func (c *Column) SetDescription(description string) { c.description = description }

// Len returns the number of values
func (c *Column) Len() int { return len(c.values) }

// Append adds values at the end, converting each with ValueOf
func (c *Column) Append(values ...any) {
	for _, v := range values {
		c.values = append(c.values, ValueOf(v))
	}
}

// Contains reports whether any value equals v
func (c *Column) Contains(v any) bool {
	target := ValueOf(v)
	for _, existing := range c.values {
		if existing.Equal(target) {
			return true
		}
	}
	return false
}

// Remove deletes every occurrence of each given value and returns how many
// values were removed. Order of the remaining values is kept.
func (c *Column) Remove(values ...any) int {
	if len(values) == 0 || len(c.values) == 0 {
		return 0
	}

	targets := make([]Value, len(values))
	for i, v := range values {
		targets[i] = ValueOf(v)
	}

	kept := c.values[:0]
	for _, existing := range c.values {
		if !matchesAny(existing, targets) {
			kept = append(kept, existing)
		}
	}

	removed := len(c.values) - len(kept)
	clear(c.values[len(kept):])
	c.values = kept
	return removed
}

// Values returns a copy of the values
func (c *Column) Values() []Value {
	out := make([]Value, len(c.values))
	copy(out, c.values)
	return out
}

// At returns the value at row index i, false if the column is shorter
func (c *Column) At(i int) (Value, bool) {
	if i < 0 || i >= len(c.values) {
		return Value{}, false
	}
	return c.values[i], true
}

// Strings returns the values stringified as in CSV output
func (c *Column) Strings() []string {
	out := make([]string, len(c.values))
	for i, v := range c.values {
		out[i] = v.String()
	}
	return out
}

func matchesAny(v Value, targets []Value) bool {
	for _, t := range targets {
		if v.Equal(t) {
			return true
		}
	}
	return false
}
