package shuffle

import (
	"crypto/rand"
	"io"
	mrand "math/rand/v2"

	"github.com/yyyoichi/fairshuffle/internal/bitsource"
	"github.com/yyyoichi/fairshuffle/internal/hrand"
)

type (
	// Option selects the randomness source of a shuffle.
	// Options are applied in order; when several set a source, the last one wins.
	Option func(*config) error
	config struct {
		src Source
	}
)

// WithSource shuffles with a caller provided Source.
func WithSource(src Source) Option {
	return func(c *config) error {
		if src == nil {
			return ErrNilSource
		}
		c.src = src
		return nil
	}
}

// WithRand shuffles with r. r is not safe for concurrent use,
// so it must not be shared with other goroutines during the call.
func WithRand(r *mrand.Rand) Option {
	return func(c *config) error {
		if r == nil {
			return ErrNilSource
		}
		c.src = randSource{r}
		return nil
	}
}

// WithSeed shuffles with a PCG generator seeded by seed.
// The same seed and the same input length always produce the same permutation.
func WithSeed(seed uint64) Option {
	return func(c *config) error {
		c.src = randSource{mrand.New(mrand.NewPCG(seed, seed))}
		return nil
	}
}

// WithReader shuffles with entropy read from r.
// Bits are consumed only as needed; a failed or short read aborts the shuffle.
func WithReader(r io.Reader) Option {
	return func(c *config) error {
		if r == nil {
			return ErrNilSource
		}
		c.src = bitsource.New(r)
		return nil
	}
}

// WithCrypto shuffles with entropy from crypto/rand.
func WithCrypto() Option {
	return WithReader(rand.Reader)
}

// WithKey shuffles with a SHA-256 counter stream keyed by key.
// Unlike WithSeed, the resulting permutation is fixed across Go releases and platforms,
// which makes it suitable for scrambles that must be undone later with Unshuffle.
func WithKey(key []byte) Option {
	return func(c *config) error {
		c.src = hrand.New(key)
		return nil
	}
}

func newSource(opts ...Option) (Source, error) {
	var c config
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	if c.src == nil {
		c.src = globalSource{}
	}
	return c.src, nil
}
