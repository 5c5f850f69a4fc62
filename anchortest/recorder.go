// Package anchortest provides a recording [anchor.Host] for tests of
// view-setup code.
package anchortest

import (
	"reflect"

	"github.com/grindlemire/go-anchor"
)

// Recorder is an anchor.Host that keeps every activated constraint in
// activation order. The zero value is ready to use. It is not safe for
// concurrent use.
type Recorder struct {
	constraints []anchor.Constraint
	failNext    error
}

var _ anchor.Host = (*Recorder)(nil)

// Activate records c, or returns the error queued by FailNext without
// recording anything.
func (r *Recorder) Activate(c anchor.Constraint) error {
	if err := r.failNext; err != nil {
		r.failNext = nil
		return err
	}
	r.constraints = append(r.constraints, c)
	return nil
}

// FailNext makes the next Activate call fail with err.
func (r *Recorder) FailNext(err error) {
	r.failNext = err
}

// Constraints returns a copy of everything recorded so far.
func (r *Recorder) Constraints() []anchor.Constraint {
	out := make([]anchor.Constraint, len(r.constraints))
	copy(out, r.constraints)
	return out
}

// For returns the recorded constraints whose first anchor belongs to e.
// Elements of uncomparable types never match.
func (r *Recorder) For(e anchor.Element) []anchor.Constraint {
	if !isComparable(e) {
		return nil
	}
	var out []anchor.Constraint
	for _, c := range r.constraints {
		if isComparable(c.First.Element) && c.First.Element == e {
			out = append(out, c)
		}
	}
	return out
}

func isComparable(e anchor.Element) bool {
	return e == nil || reflect.TypeOf(e).Comparable()
}

// Len returns the number of recorded constraints.
func (r *Recorder) Len() int {
	return len(r.constraints)
}

// Reset forgets all recorded constraints and any queued failure.
func (r *Recorder) Reset() {
	r.constraints = nil
	r.failNext = nil
}

// View is a named element for tests.
type View struct {
	name string
}

// NewView returns a View rendered as name in constraint descriptions.
func NewView(name string) *View {
	return &View{name: name}
}

// Name returns the view's name.
func (v *View) Name() string {
	return v.name
}
