// Package seqops implements the operations shared by the runtime's ordered
// sequence types (strings, byte slices, tuples, lists): slice bound
// resolution, lexicographic comparison, linear search, occurrence counting
// and repetition. The algorithms never allocate and hold no state, they only
// read (or, for Repeat, write) caller-owned slices.
package seqops

import "errors"

// A ComparisonOperator designates one of the relational operations a
// sequence comparison can be asked to decide. NotEqual is deliberately
// absent: callers compute it as the negation of Equal.
type ComparisonOperator int

const (
	Equal ComparisonOperator = iota
	LessThan
	LessOrEqual
	GreaterThan
	GreaterOrEqual
)

var ErrUnexpectedComparisonOperator = errors.New("unexpected comparison operator: not-equal must be computed by callers as the negation of Equal")

var comparisonOperatorStrings = [...]string{
	Equal:          "==",
	LessThan:       "<",
	LessOrEqual:    "<=",
	GreaterThan:    ">",
	GreaterOrEqual: ">=",
}

func (op ComparisonOperator) String() string {
	if op < 0 || int(op) >= len(comparisonOperatorStrings) {
		return "<unknown comparison operator>"
	}
	return comparisonOperatorStrings[op]
}

// assertGreaterOrEqualOperator checks the operator that remains after
// direction normalization in the comparators.
func assertGreaterOrEqualOperator(op ComparisonOperator) {
	switch op {
	case Equal, GreaterThan, GreaterOrEqual:
	default:
		panic(ErrUnexpectedComparisonOperator)
	}
}
