package anchor

import (
	"strconv"
	"strings"
)

// Constraint is the record handed to a Host. It reads
//
//	First <Relation> Second * Multiplier + Constant
//
// or, when Second is nil,
//
//	First <Relation> Constant
type Constraint struct {
	First      Anchor
	Relation   Relation
	Second     *Anchor
	Multiplier float64
	Constant   float64
}

// IsConstant reports whether the constraint compares against a literal
// rather than a second anchor.
func (c Constraint) IsConstant() bool {
	return c.Second == nil
}

// String renders the constraint, for example "card.centerX == root.centerX + 0".
func (c Constraint) String() string {
	var b strings.Builder
	b.WriteString(c.First.String())
	b.WriteByte(' ')
	b.WriteString(c.Relation.String())
	b.WriteByte(' ')

	if c.Second == nil {
		b.WriteString(formatFloat(c.Constant))
		return b.String()
	}

	b.WriteString(c.Second.String())
	if c.Multiplier != 1 {
		b.WriteString(" * ")
		b.WriteString(formatFloat(c.Multiplier))
	}
	if c.Constant < 0 {
		b.WriteString(" - ")
		b.WriteString(formatFloat(-c.Constant))
	} else {
		b.WriteString(" + ")
		b.WriteString(formatFloat(c.Constant))
	}
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
