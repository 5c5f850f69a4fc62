package anchor

import "fmt"

// Axis is the Horizontal or Vertical direction an attribute measures along.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Attribute is a positional layout attribute of an element.
type Attribute uint8

const (
	Top      Attribute = iota // Top edge
	Left                      // Left edge, independent of writing direction
	Bottom                    // Bottom edge
	Right                     // Right edge, independent of writing direction
	Leading                   // Start edge in the writing direction
	Trailing                  // End edge in the writing direction
	CenterX                   // Horizontal center
	CenterY                   // Vertical center
)

var attributeNames = [...]string{
	Top:      "top",
	Left:     "left",
	Bottom:   "bottom",
	Right:    "right",
	Leading:  "leading",
	Trailing: "trailing",
	CenterX:  "centerX",
	CenterY:  "centerY",
}

// Attributes returns every supported attribute in declaration order.
func Attributes() []Attribute {
	return []Attribute{Top, Left, Bottom, Right, Leading, Trailing, CenterX, CenterY}
}

// String returns the attribute name as used in constraint descriptions.
func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return fmt.Sprintf("Attribute(%d)", uint8(a))
}

// Axis returns the axis the attribute belongs to.
func (a Attribute) Axis() Axis {
	return AxisOf(a)
}

// AxisOf returns the axis of an attribute. Top, Bottom and CenterY are
// vertical; everything else is horizontal.
func AxisOf(a Attribute) Axis {
	switch a {
	case Top, Bottom, CenterY:
		return Vertical
	default:
		return Horizontal
	}
}

// ParseAttribute returns the attribute with the given name.
func ParseAttribute(name string) (Attribute, error) {
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), nil
		}
	}
	return 0, fmt.Errorf("unknown layout attribute %q", name)
}

// Dimension is a size attribute of an element.
type Dimension uint8

const (
	Width Dimension = iota
	Height
)

// String returns the dimension name.
func (d Dimension) String() string {
	switch d {
	case Width:
		return "width"
	case Height:
		return "height"
	default:
		return fmt.Sprintf("Dimension(%d)", uint8(d))
	}
}

// Axis returns Horizontal for Width and Vertical for Height.
func (d Dimension) Axis() Axis {
	if d == Height {
		return Vertical
	}
	return Horizontal
}
