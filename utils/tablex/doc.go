/*
Package tablex provides a small in-memory, column-oriented table with CSV
encoding and decoding.

Package: tablex
Title: Ragged Tables with CSV Round-Tripping
Description: A Table owns an ordered list of named columns. Each column holds
             its own ordered sequence of Values, so columns may differ in
             length. CSV output pads short columns with empty fields.
Author: msto63
Version: v0.2.0
Created: 2026-10-02
Modified: 2026-10-08

Change History:
- 2026-10-02 v0.1.0: Initial implementation
- 2026-10-08 v0.2.0: Typed values, file loading, column references

# Columns

Column names are unique within a table, compared case-insensitively with
Unicode case folding. Lookups never fail with an error: GetColumn returns
nil, RemoveColumn and MoveColumn return false, GetData returns an empty slice.
Rejected operations log a warning on the table's logger.

MoveColumn is a swap, not an insert:

	t := tablex.New("A", "B", "C")
	t.MoveColumn("A", 2) // order is now C, B, A

# Values

Cells are Values, a tagged variant over null, string, int, float, bool and
time. AddData converts Go values with ValueOf:

	t.AddData("Age", 22, 22, 18, 14, 8, 2, 3)
	t.RemoveData("Age", 18) // removes every 18

Equality is by kind and payload, so IntValue(1) does not equal
FloatValue(1) or StringValue("1").

# CSV

	lines := t.ToCSV() // header + rows, ";" separated
	loaded, err := tablex.ParseCSV(strings.Join(lines, "\n"))

	rows := t.ToCSV(tablex.CSVOptions{Separator: ",", SkipHeader: true})

Fields are not quoted or escaped. A value containing the separator is split
when loaded again. Loaded fields are strings unless CSVOptions.InferTypes is
set, in which case InferValue restores ints, floats, bools and times and
maps empty fields to null.

Tables are not safe for concurrent mutation.
*/
package tablex
