package rule

import (
	"fmt"
	"strings"
)

// State is the value held by a single cell.
type State uint8

const (
	// MinStates is the smallest usable alphabet.
	MinStates = 2
	// MaxStates keeps every state a single decimal digit in a Key.
	MaxStates = 10

	// maxKeys bounds the size of a table.
	maxKeys = 1 << 16
)

// Key is a neighborhood serialized as fixed-width decimal digits, most
// significant position (leftmost neighbor) first.
type Key string

// EncodeKey formats the given states as a Key.
func EncodeKey(states ...State) Key {
	var b strings.Builder
	b.Grow(len(states))
	for _, s := range states {
		b.WriteByte('0' + byte(s))
	}
	return Key(b.String())
}

// States decodes k back into its cell states.
func (k Key) States() []State {
	out := make([]State, len(k))
	for i := 0; i < len(k); i++ {
		out[i] = State(k[i] - '0')
	}
	return out
}

// KeyCount returns stateCount^(neighborhoodSize+1), the number of distinct
// neighborhood patterns.
func KeyCount(stateCount, neighborhoodSize int) (int, error) {
	if stateCount < MinStates || stateCount > MaxStates {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidStateCount, stateCount, MinStates, MaxStates)
	}
	if neighborhoodSize < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNeighborhood, neighborhoodSize)
	}
	n := 1
	for i := 0; i <= neighborhoodSize; i++ {
		n *= stateCount
		if n > maxKeys {
			return 0, fmt.Errorf("%w: %d states with %d neighbors exceeds %d keys",
				ErrInvalidNeighborhood, stateCount, neighborhoodSize, maxKeys)
		}
	}
	return n, nil
}

// Keys enumerates every neighborhood pattern in lexicographic order over the
// digit alphabet. The i-th key read as a base-stateCount number equals i.
func Keys(stateCount, neighborhoodSize int) ([]Key, error) {
	n, err := KeyCount(stateCount, neighborhoodSize)
	if err != nil {
		return nil, err
	}
	width := neighborhoodSize + 1
	keys := make([]Key, n)
	digits := make([]State, width)
	for i := range keys {
		v := i
		for p := width - 1; p >= 0; p-- {
			digits[p] = State(v % stateCount)
			v /= stateCount
		}
		keys[i] = EncodeKey(digits...)
	}
	return keys, nil
}
