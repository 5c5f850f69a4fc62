package anchor

import "fmt"

// Anchor is an axis-tagged reference to one position or one dimension of
// an element. Positional anchors carry an Attribute; size anchors carry a
// Dimension. The tag decides which anchors may be related to each other.
type Anchor struct {
	Element Element
	Axis    Axis

	attr  Attribute
	dim   Dimension
	isDim bool
}

// Attribute returns the positional attribute and true, or false for a
// dimension anchor.
func (a Anchor) Attribute() (Attribute, bool) {
	return a.attr, !a.isDim
}

// Dimension returns the dimension and true, or false for a positional anchor.
func (a Anchor) Dimension() (Dimension, bool) {
	return a.dim, a.isDim
}

// IsDimension reports whether the anchor refers to a width or height.
func (a Anchor) IsDimension() bool {
	return a.isDim
}

// String renders the anchor as element.name.
func (a Anchor) String() string {
	name := a.attr.String()
	if a.isDim {
		name = a.dim.String()
	}
	return elementName(a.Element) + "." + name
}

// HorizontalAnchor returns the anchor of a horizontal attribute (Left,
// Right, Leading, Trailing, CenterX) on e. A vertical attribute is a
// contract violation; an attribute outside the closed set is an invalid value.
func HorizontalAnchor(attr Attribute, e Element) (Anchor, error) {
	if int(attr) >= len(attributeNames) {
		return Anchor{}, fmt.Errorf("attribute %s: %w", attr, ErrInvalidValue)
	}
	switch attr {
	case Left, Right, Leading, Trailing, CenterX:
		return Anchor{Element: e, Axis: Horizontal, attr: attr}, nil
	default:
		return Anchor{}, &ContractViolationError{
			Source:     attr,
			Target:     attr,
			SourceAxis: AxisOf(attr),
			TargetAxis: Horizontal,
		}
	}
}

// VerticalAnchor returns the anchor of a vertical attribute (Top, Bottom,
// CenterY) on e. A horizontal attribute is a contract violation.
func VerticalAnchor(attr Attribute, e Element) (Anchor, error) {
	if int(attr) >= len(attributeNames) {
		return Anchor{}, fmt.Errorf("attribute %s: %w", attr, ErrInvalidValue)
	}
	switch attr {
	case Top, Bottom, CenterY:
		return Anchor{Element: e, Axis: Vertical, attr: attr}, nil
	default:
		return Anchor{}, &ContractViolationError{
			Source:     attr,
			Target:     attr,
			SourceAxis: AxisOf(attr),
			TargetAxis: Vertical,
		}
	}
}

// PositionAnchor resolves attr on e through the accessor for its own axis.
// It panics if no accessor claims the attribute, which the closed attribute
// set makes impossible.
func PositionAnchor(attr Attribute, e Element) Anchor {
	var (
		a   Anchor
		err error
	)
	switch AxisOf(attr) {
	case Horizontal:
		a, err = HorizontalAnchor(attr, e)
	case Vertical:
		a, err = VerticalAnchor(attr, e)
	default:
		unreachable("attribute %s has no axis", attr)
	}
	if err != nil {
		unreachable("attribute %s rejected by its own axis: %v", attr, err)
	}
	return a
}

// DimensionAnchor returns the width or height anchor of e.
func DimensionAnchor(d Dimension, e Element) Anchor {
	return Anchor{Element: e, Axis: d.Axis(), dim: d, isDim: true}
}

// WidthAnchor returns the width anchor of e.
func WidthAnchor(e Element) Anchor {
	return DimensionAnchor(Width, e)
}

// HeightAnchor returns the height anchor of e.
func HeightAnchor(e Element) Anchor {
	return DimensionAnchor(Height, e)
}

type named interface {
	Name() string
}

func elementName(e Element) string {
	switch v := e.(type) {
	case nil:
		return "<nil>"
	case named:
		return v.Name()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T(%v)", e, e)
	}
}
