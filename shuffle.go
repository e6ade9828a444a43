// Package shuffle reorders slices so that every permutation is equally likely.
//
// The permutation is drawn with the Fisher-Yates procedure: walking from the
// last position down to the second, each position is swapped with a uniformly
// chosen position at or before it. Sorting with a random comparator is not a
// substitute; its result depends on the sort's comparison pattern and is
// heavily skewed.
//
// Randomness comes from a Source chosen with an Option. Without options the
// process-wide generator of math/rand/v2 is used.
package shuffle

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrSource        = errors.New("randomness source failed")
	ErrNilSource     = errors.New("randomness source is nil")
	ErrInvalidLength = errors.New("length must not be negative")
)

// Shuffle permutes s in place.
// Slices of length 0 and 1 are left as they are without consulting the source.
//
// If the source fails, Shuffle returns an error wrapping ErrSource.
// s then still holds its original elements, but in an unspecified order
// that must not be treated as a shuffle.
func Shuffle[S ~[]E, E any](s S, opts ...Option) error {
	return Swap(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	}, opts...)
}

// Shuffled returns a shuffled copy of s and leaves s untouched.
// On error it returns nil.
func Shuffled[S ~[]E, E any](s S, opts ...Option) (S, error) {
	out := slices.Clone(s)
	if err := Shuffle(out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Swap shuffles a collection of n elements through swap,
// which exchanges the elements with indexes i and j.
func Swap(n int, swap func(i, j int), opts ...Option) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	src, err := newSource(opts...)
	if err != nil {
		return err
	}
	return fisherYates(src, n, swap)
}

// Perm returns the permutation Shuffle applies to a slice of length n:
// after shuffling, position k holds the element that was at Perm(n)[k].
// With the same seed or key, Perm and Shuffle draw the same permutation.
func Perm(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	if err := Swap(n, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	}, opts...); err != nil {
		return nil, err
	}
	return index, nil
}

// Unshuffle restores the order s had before a Shuffle with the same
// seed or key. It only makes sense with deterministic options such as
// WithSeed or WithKey. On error s is left untouched.
func Unshuffle[S ~[]E, E any](s S, opts ...Option) error {
	index, err := Perm(len(s), opts...)
	if err != nil {
		return err
	}
	cp := slices.Clone(s)
	for k, orig := range index {
		s[orig] = cp[k]
	}
	return nil
}

func fisherYates(src Source, n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSource, err)
		}
		if j < 0 || j > i {
			return fmt.Errorf("%w: index %d out of range [0, %d]", ErrSource, j, i)
		}
		swap(i, j)
	}
	return nil
}
