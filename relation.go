package anchor

import (
	"fmt"
	"math"
)

// Relation is the comparison a constraint expresses between its two sides.
type Relation uint8

const (
	Equal              Relation = iota // first == second
	GreaterThanOrEqual                 // first >= second
	LessThanOrEqual                    // first <= second
)

// String returns the relation's operator.
func (r Relation) String() string {
	switch r {
	case Equal:
		return "=="
	case GreaterThanOrEqual:
		return ">="
	case LessThanOrEqual:
		return "<="
	default:
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
}

func (r Relation) valid() bool {
	return r <= LessThanOrEqual
}

// Holds reports whether lhs and rhs satisfy the relation, treating values
// within tolerance of each other as equal.
func (r Relation) Holds(lhs, rhs, tolerance float64) bool {
	switch r {
	case Equal:
		return math.Abs(lhs-rhs) <= tolerance
	case GreaterThanOrEqual:
		return lhs >= rhs-tolerance
	case LessThanOrEqual:
		return lhs <= rhs+tolerance
	default:
		return false
	}
}
