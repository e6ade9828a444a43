// Package uniformity measures how evenly a shuffle spreads its outputs.
//
// Perms counts whole permutations of a small sequence, Positions counts where each
// original position ends up. Both report a chi-squared goodness-of-fit statistic
// against the uniform expectation together with its upper-tail p-value.
package uniformity

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// Perms counts occurrences of each permutation of n elements.
type Perms struct {
	n      int
	counts []float64
	total  int
}

// NewPerms returns a counter for the n! permutations of n elements.
// n should stay small; the counter holds n! buckets.
func NewPerms(n int) *Perms {
	return &Perms{
		n:      n,
		counts: make([]float64, combin.NumPermutations(n, n)),
	}
}

// Add records perm, which must be a permutation of 0..n-1.
func (p *Perms) Add(perm []int) {
	p.counts[combin.PermutationIndex(perm, p.n, p.n)]++
	p.total++
}

// Count returns how often perm was recorded.
func (p *Perms) Count(perm []int) int {
	return int(p.counts[combin.PermutationIndex(perm, p.n, p.n)])
}

// Total returns the number of recorded permutations.
func (p *Perms) Total() int { return p.total }

// ChiSquare returns the statistic and p-value of the recorded counts
// against an equal share for every permutation.
func (p *Perms) ChiSquare() (chi2, pValue float64) {
	return goodnessOfFit(p.counts, float64(p.total)/float64(len(p.counts)))
}

// Positions counts how often the element from position i lands at position j.
type Positions struct {
	n      int
	counts *mat.Dense
	total  int
}

func NewPositions(n int) *Positions {
	return &Positions{
		n:      n,
		counts: mat.NewDense(n, n, nil),
	}
}

// Add records perm, where perm[j] is the original position of the element now at j.
func (p *Positions) Add(perm []int) {
	for j, i := range perm {
		p.counts.Set(i, j, p.counts.At(i, j)+1)
	}
	p.total++
}

// Total returns the number of recorded permutations.
func (p *Positions) Total() int { return p.total }

// Freq returns the fraction of recorded permutations that moved position i to j.
func (p *Positions) Freq(i, j int) float64 {
	if p.total == 0 {
		return 0
	}
	return p.counts.At(i, j) / float64(p.total)
}

// Stay returns the fraction of recorded permutations that left position i in place.
func (p *Positions) Stay(i int) float64 { return p.Freq(i, i) }

// ChiSquare returns the statistic and p-value of every cell against total/n.
// Rows and columns both sum to total, leaving (n-1)^2 degrees of freedom.
func (p *Positions) ChiSquare() (chi2, pValue float64) {
	obs := make([]float64, 0, p.n*p.n)
	for i := range p.n {
		obs = append(obs, p.counts.RawRowView(i)...)
	}
	exp := make([]float64, len(obs))
	for i := range exp {
		exp[i] = float64(p.total) / float64(p.n)
	}
	chi2 = stat.ChiSquare(obs, exp)
	df := (p.n - 1) * (p.n - 1)
	return chi2, upperTail(chi2, df)
}

func goodnessOfFit(obs []float64, expected float64) (chi2, pValue float64) {
	exp := make([]float64, len(obs))
	for i := range exp {
		exp[i] = expected
	}
	chi2 = stat.ChiSquare(obs, exp)
	return chi2, upperTail(chi2, len(obs)-1)
}

func upperTail(chi2 float64, df int) float64 {
	if df < 1 {
		return 1
	}
	return distuv.ChiSquared{K: float64(df)}.Survival(chi2)
}
