package rule

import "errors"

var (
	// ErrRuleOutOfRange reports a rule id with more digits than the key space
	// has slots.
	ErrRuleOutOfRange = errors.New("rule: rule id out of range")

	// ErrInvalidStateCount reports a state count outside [MinStates, MaxStates].
	ErrInvalidStateCount = errors.New("rule: invalid state count")

	// ErrInvalidNeighborhood reports a neighborhood size below one or a key
	// space too large to tabulate.
	ErrInvalidNeighborhood = errors.New("rule: invalid neighborhood size")

	// ErrUnsupportedRuleType reports a rule type with no derivation.
	ErrUnsupportedRuleType = errors.New("rule: unsupported rule type")
)
