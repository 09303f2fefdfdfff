// Package dataset loads the simulator's CSV artifacts into immutable
// in-memory tables and provides the generation filter over them.
package dataset

import (
	"fmt"
)

// Table is an immutable column-oriented table of simulation records.
// Every cell is stored as float64, matching the double-precision
// coercion applied at ingestion; tag columns keep integer semantics
// through the Int accessor. Row order is the file order.
type Table struct {
	names []string
	cols  map[string][]float64
	rows  int
}

// New builds a Table from column vectors. names fixes the column order;
// every named column must be present in cols and all columns must have
// equal length.
func New(names []string, cols map[string][]float64) (*Table, error) {
	rows := -1
	for _, name := range names {
		vals, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("column %q named but not provided", name)
		}
		if rows == -1 {
			rows = len(vals)
		} else if len(vals) != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", name, len(vals), rows)
		}
	}
	if rows == -1 {
		rows = 0
	}

	copied := make(map[string][]float64, len(names))
	for _, name := range names {
		vals := make([]float64, len(cols[name]))
		copy(vals, cols[name])
		copied[name] = vals
	}
	namesCopy := make([]string, len(names))
	copy(namesCopy, names)

	return &Table{names: namesCopy, cols: copied, rows: rows}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Columns returns the column names in ingestion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns a copy of the named column. Returns nil if the column
// does not exist.
func (t *Table) Column(name string) []float64 {
	vals, ok := t.cols[name]
	if !ok {
		return nil
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out
}

// Value returns the cell at (name, row). The column must exist and the
// row must be in range; ingestion validates columns and callers index
// rows obtained from this table.
func (t *Table) Value(name string, row int) float64 {
	return t.cols[name][row]
}

// Int returns the cell at (name, row) as an integer. Used for the
// generation tag columns, which the simulator writes as whole numbers.
func (t *Table) Int(name string, row int) int {
	return int(t.cols[name][row])
}

// Select returns a new Table containing the given rows, in the given
// order. The receiver is unchanged.
func (t *Table) Select(rows []int) *Table {
	cols := make(map[string][]float64, len(t.names))
	for _, name := range t.names {
		src := t.cols[name]
		vals := make([]float64, len(rows))
		for i, r := range rows {
			vals[i] = src[r]
		}
		cols[name] = vals
	}
	names := make([]string, len(t.names))
	copy(names, t.names)
	return &Table{names: names, cols: cols, rows: len(rows)}
}
