package bitsource

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/yyyoichi/bitstream-go"
)

const wordsPerFill = 4

var (
	ErrInvalidBound = errors.New("bound must be positive")
	ErrRead         = errors.New("failed to read entropy")
)

// Source draws bounded integers from the bits of an io.Reader.
// Every draw for n takes bits.Len(n-1) bits and rejects values >= n,
// which keeps the result uniform without wasting whole words.
//
// A failed or short read is returned as an error; the Source never
// fills the gap with zeros.
// Source is not safe for concurrent use.
type Source struct {
	r      io.Reader
	buf    []byte
	words  []uint64
	reader *bitstream.BitReader[uint64]
	pos    int
	end    int
}

// New returns a Source reading from r.
func New(r io.Reader) *Source {
	return &Source{
		r:     r,
		buf:   make([]byte, wordsPerFill*8),
		words: make([]uint64, wordsPerFill),
	}
}

func (s *Source) fill() error {
	if _, err := io.ReadFull(s.r, s.buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	for i := range s.words {
		s.words[i] = binary.BigEndian.Uint64(s.buf[i*8:])
	}
	s.reader = bitstream.NewBitReader(s.words, 0, 0)
	s.reader.SetBits(len(s.words) * 64)
	s.pos, s.end = 0, len(s.words)*64
	return nil
}

func (s *Source) read(k int) (uint64, error) {
	var v uint64
	for range k {
		if s.pos == s.end {
			if err := s.fill(); err != nil {
				return 0, err
			}
		}
		bit, _ := s.reader.ReadBitAt(s.pos)
		s.pos++
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, nil
}

// IntN returns an int in [0, n).
func (s *Source) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	if n == 1 {
		return 0, nil
	}
	un := uint64(n)
	k := bits.Len64(un - 1)
	for {
		v, err := s.read(k)
		if err != nil {
			return 0, err
		}
		if v < un {
			return int(v), nil
		}
	}
}
