package hrand

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
)

const wordsPerRound = sha256.Size / 8

var (
	ErrInvalidBound = errors.New("bound must be positive")
)

// Source is a hash based random generator.
// Each round hashes round||key with SHA-256 and yields four big-endian uint64 words,
// so the stream depends only on the key and is identical on every platform.
//
// Source is not safe for concurrent use.
type Source struct {
	seed  []byte
	round uint32
	words [wordsPerRound]uint64
	seq   int
}

// New returns a Source keyed by key. The key is copied.
func New(key []byte) *Source {
	seed := make([]byte, len(key)+4)
	copy(seed[4:], key)
	return &Source{seed: seed, seq: wordsPerRound}
}

func (s *Source) nextRound() {
	binary.BigEndian.PutUint32(s.seed, s.round)
	hash := sha256.Sum256(s.seed)
	for i := range s.words {
		s.words[i] = binary.BigEndian.Uint64(hash[i*8:])
	}
	s.round++
	s.seq = 0
}

// Uint64 returns the next word of the stream.
func (s *Source) Uint64() uint64 {
	if s.seq == wordsPerRound {
		s.nextRound()
	}
	w := s.words[s.seq]
	s.seq++
	return w
}

// IntN returns an int in [0, n).
// Words below 2^64 mod n are rejected so every result is equally likely.
func (s *Source) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	un := uint64(n)
	thresh := -un % un
	for {
		if x := s.Uint64(); x >= thresh {
			return int(x % un), nil
		}
	}
}
