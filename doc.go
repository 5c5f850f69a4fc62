// Package anchor declares anchor-based layout constraints between elements.
//
// An element relates one of its attributes (an edge, a center, or a
// dimension) to an attribute of another element with [Relate], or with the
// chainable [Builder] returned by [On]:
//
//	err := anchor.On(host, card).
//		Constrain(anchor.CenterX, root).
//		Constrain(anchor.CenterY, root).
//		FixWidth(100).
//		FixAspectRatio(1).
//		Err()
//
// The package never solves or lays anything out. Every request is validated
// and handed to a [Host], which owns the activated [Constraint] from then on.
// Two positional attributes can only be related when they share an [Axis];
// mixing axes returns a [*ContractViolationError].
package anchor
