package core

import (
	"math"
	"strconv"
)

// Kind tags what a Cell currently holds.
type Kind uint8

const (
	KindText Kind = iota
	KindNumber
	KindInteger
	KindLabel
	KindMissing
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "float64"
	case KindInteger:
		return "int64"
	case KindLabel:
		return "category"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Cell is a single table value. A missing cell never reads as zero:
// Float reports ok=false for it.
type Cell struct {
	kind Kind
	text string
	num  float64
	i    int64
}

// Text wraps raw, uncleaned source text.
func Text(s string) Cell { return Cell{kind: KindText, text: s} }

// Number wraps a cleaned floating point value. NaN is stored as Missing.
func Number(f float64) Cell {
	if math.IsNaN(f) {
		return Missing()
	}
	return Cell{kind: KindNumber, num: f}
}

// Integer wraps a whole number such as a population count.
func Integer(n int64) Cell { return Cell{kind: KindInteger, i: n, num: float64(n)} }

// Label wraps a bin label: the lower bound of the interval a value fell into.
func Label(lower float64) Cell { return Cell{kind: KindLabel, num: lower} }

// Missing is the explicit "no value" marker.
func Missing() Cell { return Cell{kind: KindMissing} }

func (c Cell) Kind() Kind { return c.kind }

func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// Raw returns the source text of a text cell.
func (c Cell) Raw() string { return c.text }

func (c Cell) Int() (int64, bool) { return c.i, c.kind == KindInteger }

// Float returns the numeric view of the cell. Text and missing cells are not numeric.
func (c Cell) Float() (float64, bool) {
	switch c.kind {
	case KindNumber, KindInteger, KindLabel:
		return c.num, true
	default:
		return 0, false
	}
}

// NaN returns the numeric value or NaN, for code that feeds gonum directly.
func (c Cell) NaN() float64 {
	if f, ok := c.Float(); ok {
		return f
	}
	return math.NaN()
}

func (c Cell) String() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumber, KindLabel:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindInteger:
		return strconv.FormatInt(c.i, 10)
	default:
		return "NaN"
	}
}

// Equal compares kind and payload; two missing cells are equal.
func (c Cell) Equal(o Cell) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case KindText:
		return c.text == o.text
	case KindInteger:
		return c.i == o.i
	case KindMissing:
		return true
	default:
		return c.num == o.num
	}
}
