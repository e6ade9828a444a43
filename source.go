package shuffle

import (
	"math/rand/v2"

	"github.com/yyyoichi/fairshuffle/internal/bitsource"
	"github.com/yyyoichi/fairshuffle/internal/hrand"
)

// Source provides the randomness a shuffle consumes.
//
// IntN returns a uniformly distributed int in [0, n) for n > 0, or an error
// when no randomness is available. The shuffle never calls IntN concurrently,
// but it does not lock around it either: a Source shared between goroutines
// must synchronize itself.
type Source interface {
	IntN(n int) (int, error)
}

var (
	_ Source = globalSource{}
	_ Source = randSource{}
	_ Source = (*bitsource.Source)(nil)
	_ Source = (*hrand.Source)(nil)
)

// globalSource uses the process-wide generator of math/rand/v2,
// which is safe for concurrent use and cannot fail.
type globalSource struct{}

func (globalSource) IntN(n int) (int, error) { return rand.IntN(n), nil }

type randSource struct {
	r *rand.Rand
}

func (s randSource) IntN(n int) (int, error) { return s.r.IntN(n), nil }
