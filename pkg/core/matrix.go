package core

import "math"

// Matrix is a dense row-major numeric projection of a table. Missing cells are NaN.
type Matrix struct {
	R, C  int
	Names []string
	Data  []float64
}

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromTable projects the named columns of t. Unknown columns become all-NaN.
func FromTable(t *Table, cols ...string) *Matrix {
	m := NewMatrix(t.Len(), len(cols))
	m.Names = append([]string(nil), cols...)
	for i := 0; i < m.R; i++ {
		for j, name := range cols {
			m.Data[i*m.C+j] = t.Get(i, name).NaN()
		}
	}
	return m
}

// At returns element (i, j)
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.C+j] }

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	v := make([]float64, m.R)
	for i := 0; i < m.R; i++ {
		v[i] = m.Data[i*m.C+j]
	}
	return v
}

// CompletePairs returns the values of columns a and b on rows where neither is NaN.
func (m *Matrix) CompletePairs(a, b int) (xs, ys []float64) {
	for i := 0; i < m.R; i++ {
		x, y := m.At(i, a), m.At(i, b)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}
