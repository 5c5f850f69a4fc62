package anchor

import (
	"fmt"
	"math"
)

// RelateOption is a functional option for a single Relate request.
type RelateOption func(*relateConfig) error

type relateConfig struct {
	target Attribute
	offset float64
}

// To relates the source attribute to attr on the target element instead of
// the source attribute itself. attr must share the source attribute's axis.
func To(attr Attribute) RelateOption {
	return func(c *relateConfig) error {
		if int(attr) >= len(attributeNames) {
			return fmt.Errorf("target attribute %s: %w", attr, ErrInvalidValue)
		}
		c.target = attr
		return nil
	}
}

// WithOffset sets the constant added to the target side. Default is 0.
// NaN and infinite offsets are rejected.
func WithOffset(offset float64) RelateOption {
	return func(c *relateConfig) error {
		if math.IsNaN(offset) || math.IsInf(offset, 0) {
			return fmt.Errorf("offset %v: %w", offset, ErrInvalidValue)
		}
		c.offset = offset
		return nil
	}
}
