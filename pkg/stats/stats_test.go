package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptive(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	t.Run("Should compute mean and sample deviation", func(t *testing.T) {
		assert.Equal(t, 5.0, Mean(x))
		assert.InDelta(t, 32.0/7.0, Variance(x), 1e-12)
		assert.InDelta(t, math.Sqrt(32.0/7.0), Std(x), 1e-12)
	})

	t.Run("Should find min and max regardless of order", func(t *testing.T) {
		lo, hi := MinMax([]float64{3, -1.5, 8, 0})
		assert.Equal(t, -1.5, lo)
		assert.Equal(t, 8.0, hi)
	})

	t.Run("Should interpolate percentiles like pandas", func(t *testing.T) {
		assert.Equal(t, 4.5, Median(x))
		assert.Equal(t, 4.0, Percentile(x, 25))
		assert.Equal(t, 5.5, Percentile(x, 75))
		assert.Equal(t, 2.0, Percentile(x, 0))
		assert.Equal(t, 9.0, Percentile(x, 100))
	})

	t.Run("Should return NaN for empty input", func(t *testing.T) {
		assert.True(t, math.IsNaN(Mean(nil)))
		assert.True(t, math.IsNaN(Std([]float64{1})))
		lo, hi := MinMax(nil)
		assert.True(t, math.IsNaN(lo))
		assert.True(t, math.IsNaN(hi))
	})
}

func TestCorrelation(t *testing.T) {
	t.Run("Should be one for a perfect positive line", func(t *testing.T) {
		assert.InDelta(t, 1.0, Correlation([]float64{1, 2, 3, 4}, []float64{10, 20, 30, 40}), 1e-12)
	})

	t.Run("Should be minus one for a perfect negative line", func(t *testing.T) {
		assert.InDelta(t, -1.0, Correlation([]float64{1, 2, 3}, []float64{3, 2, 1}), 1e-12)
	})

	t.Run("Should be NaN for constant or too short input", func(t *testing.T) {
		assert.True(t, math.IsNaN(Correlation([]float64{1, 1, 1}, []float64{1, 2, 3})))
		assert.True(t, math.IsNaN(Correlation([]float64{1}, []float64{1})))
		assert.True(t, math.IsNaN(Correlation([]float64{1, 2}, []float64{1})))
	})
}

func TestLinearFit(t *testing.T) {
	t.Run("Should recover intercept and slope", func(t *testing.T) {
		alpha, beta, ok := LinearFit([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7})

		require.True(t, ok)
		assert.InDelta(t, 1.0, alpha, 1e-9)
		assert.InDelta(t, 2.0, beta, 1e-9)
	})

	t.Run("Should refuse a vertical cloud", func(t *testing.T) {
		_, _, ok := LinearFit([]float64{2, 2, 2}, []float64{1, 2, 3})
		assert.False(t, ok)
	})
}

func TestDescribe(t *testing.T) {
	s := Describe([]float64{1, 2, 3, 4})

	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 2.5, s.Mean)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 1.75, s.P25)
	assert.Equal(t, 2.5, s.Median)
	assert.Equal(t, 3.25, s.P75)
	assert.Equal(t, 4.0, s.Max)
}
