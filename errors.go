package anchor

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation reports a request relating attributes that live
	// on different axes. Match it with errors.Is.
	ErrContractViolation = errors.New("layout contract violation")

	// ErrNilHost is returned when no host is available to activate constraints.
	ErrNilHost = errors.New("nil constraint host")

	// ErrNilElement is returned when a source or target element is nil.
	ErrNilElement = errors.New("nil element")

	// ErrInvalidValue is returned for offsets, constants and ratios that
	// cannot describe a layout (NaN, infinities, negative sizes).
	ErrInvalidValue = errors.New("invalid constraint value")
)

// ContractViolationError describes an attempt to relate two attributes that
// are on different axes, or to resolve an attribute through the accessor of
// the wrong axis.
type ContractViolationError struct {
	Source     Attribute
	Target     Attribute
	SourceAxis Axis
	TargetAxis Axis
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("cannot constrain %s (%s) to %s (%s): attributes must share an axis",
		e.Source, e.SourceAxis, e.Target, e.TargetAxis)
}

// Is makes errors.Is(err, ErrContractViolation) match.
func (e *ContractViolationError) Is(target error) bool {
	return target == ErrContractViolation
}

// unreachable panics for states the closed attribute set rules out.
func unreachable(format string, args ...any) {
	panic(fmt.Sprintf("anchor: unreachable: "+format, args...))
}
