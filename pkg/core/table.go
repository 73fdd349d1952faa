package core

import "fmt"

// Row maps a column name to its cell for one calendar year.
type Row map[string]Cell

// Table is an ordered sequence of rows sharing one ordered column list.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable allocates an empty table with the given columns.
func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Clone deep copies the table so transforms never share rows with their input.
func (t *Table) Clone() *Table {
	n := NewTable(t.Columns)
	n.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		cp := make(Row, len(r))
		for k, v := range r {
			cp[k] = v
		}
		n.Rows[i] = cp
	}
	return n
}

func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends name to the column list if absent. Cells are set by the caller.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Append adds a row. Columns missing from r read as Missing.
func (t *Table) Append(r Row) { t.Rows = append(t.Rows, r) }

// Get returns the cell at row i, column name. Absent cells are Missing.
func (t *Table) Get(i int, name string) Cell {
	c, ok := t.Rows[i][name]
	if !ok {
		return Missing()
	}
	return c
}

// Column returns every cell of a column in row order.
func (t *Table) Column(name string) []Cell {
	out := make([]Cell, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Get(i, name)
	}
	return out
}

// Floats returns the numeric values of a column, skipping missing and text cells.
func (t *Table) Floats(name string) []float64 {
	out := make([]float64, 0, len(t.Rows))
	for i := range t.Rows {
		if f, ok := t.Get(i, name).Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// Pairs returns the rows where both x and y are numeric.
func (t *Table) Pairs(x, y string) (xs, ys []float64) {
	for i := range t.Rows {
		a, okA := t.Get(i, x).Float()
		b, okB := t.Get(i, y).Float()
		if okA && okB {
			xs = append(xs, a)
			ys = append(ys, b)
		}
	}
	return xs, ys
}

// Select projects the table onto cols. Unknown columns are an error.
func (t *Table) Select(cols ...string) (*Table, error) {
	for _, c := range cols {
		if !t.HasColumn(c) {
			return nil, fmt.Errorf("select: unknown column %q", c)
		}
	}
	n := NewTable(cols)
	n.Rows = make([]Row, len(t.Rows))
	for i := range t.Rows {
		r := make(Row, len(cols))
		for _, c := range cols {
			r[c] = t.Get(i, c)
		}
		n.Rows[i] = r
	}
	return n, nil
}

// Head returns a table holding the first n rows.
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	h := NewTable(t.Columns)
	h.Rows = t.Rows[:n]
	return h
}
