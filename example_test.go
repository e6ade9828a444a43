package shuffle_test

import (
	"errors"
	"fmt"

	shuffle "github.com/yyyoichi/fairshuffle"
)

func Example_shuffle() {
	deck := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	// A keyed stream yields the same order on every platform.
	// Use WithCrypto or no option at all for unpredictable orders.
	if err := shuffle.Shuffle(deck, shuffle.WithKey([]byte("example"))); err != nil {
		fmt.Printf("Error shuffling: %v\n", err)
		return
	}
	fmt.Println(deck)

	// Undo the shuffle with the same key
	if err := shuffle.Unshuffle(deck, shuffle.WithKey([]byte("example"))); err != nil {
		fmt.Printf("Error unshuffling: %v\n", err)
		return
	}
	fmt.Println(deck)

	// Output:
	// [e f h c g a d b]
	// [a b c d e f g h]
}

// ExamplePerm shows which original position ends up where.
func ExamplePerm() {
	perm, err := shuffle.Perm(5, shuffle.WithKey([]byte("deck-1")))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(perm)
	// Output:
	// [4 2 3 1 0]
}

type drainedSource struct{}

func (drainedSource) IntN(int) (int, error) { return 0, errors.New("no entropy") }

// ExampleShuffled demonstrates how a failing source is reported.
func ExampleShuffled() {
	hand := []int{1, 2, 3}
	out, err := shuffle.Shuffled(hand, shuffle.WithSource(drainedSource{}))
	fmt.Println(errors.Is(err, shuffle.ErrSource), out == nil, hand)
	// Output:
	// true true [1 2 3]
}
