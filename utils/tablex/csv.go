// File: csv.go
// Title: Table CSV Encoding and Decoding
// Description: Serializes a table to separator-delimited lines, padding
//              short columns with empty fields, and loads such lines back
//              into named columns positionally. Fields are neither quoted
//              nor escaped; a separator inside a value splits it on load.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-03
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-03 v0.1.0: ToCSV and LoadCSV
// - 2026-10-08 v0.2.0: WriteCSV, LoadCSVFile, typed loading
// - 2026-10-18 v0.2.1: Header-less loads keep leading empty rows

package tablex

import (
	"bufio"
	"io"
	"strings"

	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/filex"
	"github.com/msto63/extkit/utils/stringx"
)

// DefaultSeparator separates CSV fields unless CSVOptions says otherwise
const DefaultSeparator = ";"

// CSVOptions controls CSV encoding and decoding. The zero value writes and
// expects a header line and uses DefaultSeparator.
type CSVOptions struct {
	// Separator between fields; empty means DefaultSeparator
	Separator string

	// SkipHeader omits the header line on output. On input the content has
	// no header and rows fill the existing columns in table order.
	SkipHeader bool

	// InferTypes loads fields through InferValue instead of as strings
	InferTypes bool
}

func resolveCSVOptions(opts []CSVOptions) CSVOptions {
	var o CSVOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	return o
}

// ToCSV returns the header line (unless SkipHeader) followed by one line per
// row index up to RowCount. Every line has ColumnCount fields. A table
// without columns yields no lines.
func (t *Table) ToCSV(opts ...CSVOptions) []string {
	o := resolveCSVOptions(opts)
	if len(t.columns) == 0 {
		return []string{}
	}

	rows := t.RowCount()
	lines := make([]string, 0, rows+1)
	if !o.SkipHeader {
		lines = append(lines, strings.Join(t.ColumnNames(), o.Separator))
	}

	fields := make([]string, len(t.columns))
	for i := 0; i < rows; i++ {
		for j, c := range t.columns {
			if v, ok := c.At(i); ok {
				fields[j] = v.String()
			} else {
				fields[j] = ""
			}
		}
		lines = append(lines, strings.Join(fields, o.Separator))
	}
	return lines
}

// WriteCSV writes ToCSV to w, each line terminated by "\n"
func (t *Table) WriteCSV(w io.Writer, opts ...CSVOptions) error {
	bw := bufio.NewWriter(w)
	for _, line := range t.ToCSV(opts...) {
		if _, err := bw.WriteString(line); err != nil {
			return errors.TablexWriteFailed("write_csv", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.TablexWriteFailed("write_csv", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.TablexWriteFailed("write_csv", err)
	}
	return nil
}

// LoadCSV splits content into lines and loads them with LoadCSVLines. When
// content ends with a line terminator the empty line after it is ignored, so
// LoadCSV reads what WriteCSV writes. Lines joined without a final
// terminator whose last line is empty are ambiguous; load them with
// LoadCSVLines instead.
func (t *Table) LoadCSV(content string, opts ...CSVOptions) error {
	lines := stringx.SplitLines(content)
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return t.LoadCSVLines(lines, opts...)
}

// LoadCSVFile reads path and loads its content with LoadCSV. A missing file
// is a NOT_FOUND error.
func (t *Table) LoadCSVFile(path string, opts ...CSVOptions) error {
	if !filex.Exists(path) {
		return errors.TablexNotFound("load_csv_file", path)
	}
	content, err := filex.ReadString(path)
	if err != nil {
		return err
	}
	return t.LoadCSV(content, opts...)
}

// LoadCSVLines loads CSV lines into the table. Unless SkipHeader is set,
// blank lines before the header are skipped and the header names the target
// columns, which are added when missing. With SkipHeader every line is a
// row, blank ones included, and rows fill the existing columns in order.
// Each row is split by the separator and its fields are appended to the
// target columns positionally. Fields beyond the targets are dropped,
// missing trailing fields leave the column short.
//
// Content without a header line is an INVALID_INPUT error.
func (t *Table) LoadCSVLines(lines []string, opts ...CSVOptions) error {
	o := resolveCSVOptions(opts)

	first := 0
	var targets []*Column
	if o.SkipHeader {
		if len(t.columns) == 0 {
			return errors.TablexInvalidCSV("load_csv", "no header and no existing columns")
		}
		targets = t.GetColumns()
	} else {
		for first < len(lines) && stringx.IsBlank(lines[first]) {
			first++
		}
		if first == len(lines) {
			return errors.TablexInvalidCSV("load_csv", "missing header line")
		}
		targets = t.headerColumns(stringx.SplitFields(lines[first], o.Separator))
		first++
	}
	t.logger.Trace("csv targets resolved", log.Fields{
		"columns":     len(targets),
		"rows":        len(lines) - first,
		"skip_header": o.SkipHeader,
	})

	for n, line := range lines[first:] {
		fields := stringx.SplitFields(line, o.Separator)
		if len(fields) > len(targets) {
			t.logger.Warn("csv row has more fields than columns, extra fields dropped", log.Fields{
				"line":    first + n + 1,
				"fields":  len(fields),
				"columns": len(targets),
			})
			fields = fields[:len(targets)]
		}
		for i, field := range fields {
			if targets[i] == nil {
				continue
			}
			if o.InferTypes {
				targets[i].values = append(targets[i].values, InferValue(field))
			} else {
				targets[i].values = append(targets[i].values, StringValue(field))
			}
		}
	}
	return nil
}

// headerColumns resolves header names to columns, adding missing ones.
// Blank or repeated names map to nil and their fields are skipped.
func (t *Table) headerColumns(names []string) []*Column {
	targets := make([]*Column, len(names))
	claimed := make(map[*Column]bool, len(names))

	for i, name := range names {
		c := t.GetColumn(name)
		if c == nil && t.AddColumn(name) {
			c = t.GetColumn(name)
		}
		if c == nil {
			continue
		}
		if claimed[c] {
			t.logger.Warn("duplicate csv header, field skipped", log.Fields{"column": name, "position": i})
			continue
		}
		claimed[c] = true
		targets[i] = c
	}
	return targets
}

// ParseCSV creates a table from CSV content
func ParseCSV(content string, opts ...CSVOptions) (*Table, error) {
	o := resolveCSVOptions(opts)
	if o.SkipHeader {
		return nil, errors.TablexInvalidCSV("parse_csv", "a new table needs a header line")
	}

	t := New()
	if err := t.LoadCSV(content, o); err != nil {
		return nil, err
	}
	return t, nil
}
