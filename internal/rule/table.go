package rule

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type selects how a rule id is turned into a table.
type Type string

const (
	// Wolfram reads the rule id's digits, least significant first, as the
	// next state of each enumerated key.
	Wolfram Type = "wolfram"
	// Custom is recognized so it can be rejected; it has no derivation.
	Custom Type = "custom"
)

// ParseType maps a case-insensitive name to a Type.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case Wolfram, Custom:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedRuleType, s)
	}
}

// UnmarshalYAML reads a Type case-insensitively. Unknown names are kept so
// that validation can report them.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*t = Type(strings.ToLower(strings.TrimSpace(s)))
	return nil
}

// Entry pairs a neighborhood with the state it produces.
type Entry struct {
	Key  Key
	Next State
}

// Table is the total, immutable mapping from every neighborhood to the next
// state of its center cell. Slot i holds the result for the i-th key of Keys.
type Table struct {
	rule   uint64
	states int
	width  int
	next   []State
}

// Build derives the table for a Wolfram-style rule id.
func Build(ruleID uint64, stateCount, neighborhoodSize int) (*Table, error) {
	n, err := KeyCount(stateCount, neighborhoodSize)
	if err != nil {
		return nil, err
	}
	next := make([]State, n)
	v := ruleID
	base := uint64(stateCount)
	for i := range next {
		next[i] = State(v % base)
		v /= base
	}
	if v != 0 {
		return nil, fmt.Errorf("%w: rule %d needs more than %d base-%d digits",
			ErrRuleOutOfRange, ruleID, n, stateCount)
	}
	return &Table{rule: ruleID, states: stateCount, width: neighborhoodSize + 1, next: next}, nil
}

// Rule returns the rule id the table was built from.
func (t *Table) Rule() uint64 { return t.rule }

// States returns the size of the state alphabet.
func (t *Table) States() int { return t.states }

// Width returns the number of cells in a key.
func (t *Table) Width() int { return t.width }

// Len returns the number of keys.
func (t *Table) Len() int { return len(t.next) }

// At returns the next state for the key at enumeration index i.
func (t *Table) At(i int) State { return t.next[i] }

// Index returns the enumeration index of the given neighborhood.
func (t *Table) Index(states ...State) int {
	idx := 0
	for _, s := range states {
		idx = idx*t.states + int(s)
	}
	return idx
}

// Lookup returns the next state for k. It reports false when k is not a
// well-formed key for this table.
func (t *Table) Lookup(k Key) (State, bool) {
	if len(k) != t.width {
		return 0, false
	}
	idx := 0
	for i := 0; i < len(k); i++ {
		d := int(k[i]) - '0'
		if d < 0 || d >= t.states {
			return 0, false
		}
		idx = idx*t.states + d
	}
	return t.next[idx], true
}

// Entries lists every key with its result in enumeration order.
func (t *Table) Entries() []Entry {
	keys, _ := Keys(t.states, t.width-1)
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Key: k, Next: t.next[i]}
	}
	return out
}

// Digits returns the rule id zero-padded to one digit per key, most
// significant digit first.
func (t *Table) Digits() string {
	b := make([]byte, len(t.next))
	for i, s := range t.next {
		b[len(b)-1-i] = '0' + byte(s)
	}
	return string(b)
}

// Equal reports whether both tables map every key to the same state.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.states != o.states || t.width != o.width || len(t.next) != len(o.next) {
		return false
	}
	for i := range t.next {
		if t.next[i] != o.next[i] {
			return false
		}
	}
	return true
}
