package frame

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-anchor"
)

var (
	// ErrUnknownElement is returned when an anchor refers to an element
	// with no frame in the Layout.
	ErrUnknownElement = errors.New("element has no frame")

	// ErrUnsatisfied is returned by Activate for a constraint the frames violate.
	ErrUnsatisfied = errors.New("constraint not satisfied by frames")
)

// DefaultTolerance is the distance under which two coordinates count as equal.
const DefaultTolerance = 1e-9

// Direction is the writing direction used to place Leading and Trailing.
type Direction uint8

const (
	LeftToRight Direction = iota // Leading is the left edge
	RightToLeft                  // Leading is the right edge
)

// Layout maps elements to their computed frames. It also serves as an
// anchor.Host that only accepts constraints its frames satisfy.
// Elements must be comparable. A Layout is not safe for concurrent use.
type Layout struct {
	// Direction decides where Leading and Trailing resolve.
	Direction Direction

	// Tolerance overrides DefaultTolerance when positive.
	Tolerance float64

	frames      map[anchor.Element]Rect
	constraints []anchor.Constraint
}

var _ anchor.Host = (*Layout)(nil)

// NewLayout returns an empty left-to-right Layout.
func NewLayout() *Layout {
	return &Layout{frames: make(map[anchor.Element]Rect)}
}

// Set records the frame of e.
func (l *Layout) Set(e anchor.Element, r Rect) {
	if l.frames == nil {
		l.frames = make(map[anchor.Element]Rect)
	}
	l.frames[e] = r
}

// Frame returns the frame of e and whether one was set.
func (l *Layout) Frame(e anchor.Element) (Rect, bool) {
	r, ok := l.frames[e]
	return r, ok
}

// Value evaluates an anchor to a coordinate or a size.
func (l *Layout) Value(a anchor.Anchor) (float64, error) {
	r, ok := l.frames[a.Element]
	if !ok {
		return 0, fmt.Errorf("%s: %w", a, ErrUnknownElement)
	}

	if d, ok := a.Dimension(); ok {
		if d == anchor.Height {
			return r.Height, nil
		}
		return r.Width, nil
	}

	attr, _ := a.Attribute()
	switch attr {
	case anchor.Top:
		return r.Top(), nil
	case anchor.Bottom:
		return r.Bottom(), nil
	case anchor.CenterY:
		return r.CenterY(), nil
	case anchor.Left:
		return r.Left(), nil
	case anchor.Right:
		return r.Right(), nil
	case anchor.CenterX:
		return r.CenterX(), nil
	case anchor.Leading:
		if l.Direction == RightToLeft {
			return r.Right(), nil
		}
		return r.Left(), nil
	case anchor.Trailing:
		if l.Direction == RightToLeft {
			return r.Left(), nil
		}
		return r.Right(), nil
	default:
		return 0, fmt.Errorf("%s: unsupported attribute", a)
	}
}

// Check reports whether the frames satisfy c.
func (l *Layout) Check(c anchor.Constraint) (bool, error) {
	lhs, err := l.Value(c.First)
	if err != nil {
		return false, err
	}

	rhs := c.Constant
	if c.Second != nil {
		v, err := l.Value(*c.Second)
		if err != nil {
			return false, err
		}
		rhs = v*c.Multiplier + c.Constant
	}
	return c.Relation.Holds(lhs, rhs, l.tolerance()), nil
}

// Activate keeps c if the frames satisfy it and returns ErrUnsatisfied
// otherwise.
func (l *Layout) Activate(c anchor.Constraint) error {
	ok, err := l.Check(c)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", c, ErrUnsatisfied)
	}
	l.constraints = append(l.constraints, c)
	return nil
}

// Constraints returns the constraints accepted by Activate.
func (l *Layout) Constraints() []anchor.Constraint {
	out := make([]anchor.Constraint, len(l.constraints))
	copy(out, l.constraints)
	return out
}

// Violations returns the constraints in cs that the frames do not satisfy.
// A constraint that cannot be evaluated is reported through the error.
func (l *Layout) Violations(cs []anchor.Constraint) ([]anchor.Constraint, error) {
	var out []anchor.Constraint
	for _, c := range cs {
		ok, err := l.Check(c)
		if err != nil {
			return out, err
		}
		if !ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (l *Layout) tolerance() float64 {
	if l.Tolerance > 0 {
		return l.Tolerance
	}
	return DefaultTolerance
}
