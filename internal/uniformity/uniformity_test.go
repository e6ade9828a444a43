package uniformity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func TestPerms(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		p := NewPerms(3)
		all := combin.Permutations(3, 3)
		require.Len(t, all, 6)
		for range 10 {
			for _, perm := range all {
				p.Add(perm)
			}
		}
		assert.Equal(t, 60, p.Total())
		for _, perm := range all {
			assert.Equal(t, 10, p.Count(perm))
		}
		chi2, pValue := p.ChiSquare()
		assert.Zero(t, chi2)
		assert.InDelta(t, 1, pValue, 1e-9)
	})

	t.Run("skewed", func(t *testing.T) {
		p := NewPerms(3)
		for range 100 {
			p.Add([]int{0, 1, 2})
		}
		p.Add([]int{2, 1, 0})
		assert.Equal(t, 100, p.Count([]int{0, 1, 2}))
		assert.Equal(t, 0, p.Count([]int{1, 0, 2}))
		_, pValue := p.ChiSquare()
		assert.Less(t, pValue, 1e-6)
	})

	t.Run("critical value", func(t *testing.T) {
		// 11.0705 is the 95th percentile of chi-squared with 5 degrees of freedom
		assert.InDelta(t, 0.05, upperTail(11.0705, 5), 1e-4)
		assert.Equal(t, 1.0, upperTail(3, 0))
	})
}

func TestPositions(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		p := NewPositions(4)
		for range 50 {
			p.Add([]int{0, 1, 2, 3})
		}
		assert.Equal(t, 50, p.Total())
		for i := range 4 {
			assert.Equal(t, 1.0, p.Stay(i))
		}
		assert.Zero(t, p.Freq(0, 3))
		_, pValue := p.ChiSquare()
		assert.Less(t, pValue, 1e-6)
	})

	t.Run("rotations", func(t *testing.T) {
		p := NewPositions(3)
		for range 20 {
			p.Add([]int{0, 1, 2})
			p.Add([]int{1, 2, 0})
			p.Add([]int{2, 0, 1})
		}
		for i := range 3 {
			for j := range 3 {
				assert.InDelta(t, 1.0/3, p.Freq(i, j), 1e-12)
			}
		}
		chi2, pValue := p.ChiSquare()
		assert.Zero(t, chi2)
		assert.InDelta(t, 1, pValue, 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		p := NewPositions(2)
		assert.Zero(t, p.Stay(0))
	})
}
