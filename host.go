package anchor

// Element is an opaque handle to a displayable surface owned by the host
// toolkit. The package only passes elements through to the Host.
type Element interface{}

// Host activates constraints against a toolkit's layout engine.
// Once Activate returns nil the host owns the constraint; nothing in this
// package keeps a reference to it.
type Host interface {
	Activate(c Constraint) error
}

// HostFunc adapts an ordinary function to a Host.
type HostFunc func(c Constraint) error

// Activate calls f(c).
func (f HostFunc) Activate(c Constraint) error {
	return f(c)
}
