package anchor

import (
	"fmt"
	"math"
	"reflect"

	"github.com/grindlemire/go-anchor/internal/debug"
)

// Relate activates
//
//	source.attr <rel> target.attr' * 1 + offset
//
// on host, where attr' is attr unless overridden with [To] and offset is 0
// unless set with [WithOffset]. Relating two different attributes on
// different axes returns a [*ContractViolationError] and activates nothing.
func Relate(host Host, rel Relation, attr Attribute, source, target Element, opts ...RelateOption) error {
	if host == nil {
		return ErrNilHost
	}
	if isNil(source) || isNil(target) {
		return fmt.Errorf("relating %s: %w", attr, ErrNilElement)
	}
	if !rel.valid() {
		return fmt.Errorf("relation %s: %w", rel, ErrInvalidValue)
	}
	if int(attr) >= len(attributeNames) {
		return fmt.Errorf("source attribute %s: %w", attr, ErrInvalidValue)
	}

	cfg := relateConfig{target: attr}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}

	first, second, err := resolvePair(attr, source, cfg.target, target)
	if err != nil {
		if debug.Enabled() {
			debug.Log("anchor: reject %s.%s %s %s.%s: %v",
				elementName(source), attr, rel, elementName(target), cfg.target, err)
		}
		return err
	}

	return activate(host, Constraint{
		First:      first,
		Relation:   rel,
		Second:     &second,
		Multiplier: 1,
		Constant:   cfg.offset,
	})
}

// isNil reports whether e is nil or a nil pointer, map, slice, channel or
// function held in a non-nil interface.
func isNil(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// resolvePair resolves both attributes through the accessor of their shared
// axis. Identical attributes skip the axis check.
func resolvePair(srcAttr Attribute, source Element, dstAttr Attribute, target Element) (Anchor, Anchor, error) {
	if srcAttr == dstAttr {
		return PositionAnchor(srcAttr, source), PositionAnchor(dstAttr, target), nil
	}

	srcAxis, dstAxis := AxisOf(srcAttr), AxisOf(dstAttr)
	if srcAxis != dstAxis {
		return Anchor{}, Anchor{}, &ContractViolationError{
			Source:     srcAttr,
			Target:     dstAttr,
			SourceAxis: srcAxis,
			TargetAxis: dstAxis,
		}
	}

	resolve := HorizontalAnchor
	if srcAxis == Vertical {
		resolve = VerticalAnchor
	}
	first, err := resolve(srcAttr, source)
	if err != nil {
		return Anchor{}, Anchor{}, err
	}
	second, err := resolve(dstAttr, target)
	if err != nil {
		return Anchor{}, Anchor{}, err
	}
	return first, second, nil
}

func activate(host Host, c Constraint) error {
	if err := host.Activate(c); err != nil {
		debug.Log("anchor: host rejected %s: %v", c, err)
		return fmt.Errorf("activating %s: %w", c, err)
	}
	debug.Log("anchor: activate %s", c)
	return nil
}

// FixSize activates e.dim == constant on host.
func FixSize(host Host, e Element, dim Dimension, constant float64) error {
	return On(host, e).FixSize(dim, constant).Err()
}

// FixAspectRatio activates e.width == e.height * ratio on host.
func FixAspectRatio(host Host, e Element, ratio float64) error {
	return On(host, e).FixAspectRatio(ratio).Err()
}

// AlignAllEdges pins the top, leading, trailing and bottom edges of e to
// the same edges of target.
func AlignAllEdges(host Host, e, target Element) error {
	return On(host, e).AlignAllEdges(target).Err()
}

// Builder declares constraints on a single element. Each method returns the
// same Builder so declarations can be chained. The first failure stops the
// chain: later calls do nothing and Err reports it.
type Builder struct {
	host Host
	elem Element
	err  error
}

// On returns a Builder that activates constraints for e on host.
func On(host Host, e Element) *Builder {
	b := &Builder{host: host, elem: e}
	switch {
	case host == nil:
		b.err = ErrNilHost
	case isNil(e):
		b.err = ErrNilElement
	}
	return b
}

// Element returns the element the builder declares constraints for.
func (b *Builder) Element() Element {
	return b.elem
}

// Err returns the first error encountered by the chain, if any.
func (b *Builder) Err() error {
	return b.err
}

// Relate activates a relation from attr on the builder's element to target.
// See the package-level [Relate].
func (b *Builder) Relate(rel Relation, attr Attribute, target Element, opts ...RelateOption) *Builder {
	if b.err != nil {
		return b
	}
	b.err = Relate(b.host, rel, attr, b.elem, target, opts...)
	return b
}

// Constrain is Relate with [Equal].
func (b *Builder) Constrain(attr Attribute, target Element, opts ...RelateOption) *Builder {
	return b.Relate(Equal, attr, target, opts...)
}

// FixSize activates a constant equality on the given dimension.
// Negative and non-finite constants are rejected.
func (b *Builder) FixSize(dim Dimension, constant float64) *Builder {
	if b.err != nil {
		return b
	}
	if dim > Height {
		b.err = fmt.Errorf("dimension %s: %w", dim, ErrInvalidValue)
		return b
	}
	if constant < 0 || math.IsNaN(constant) || math.IsInf(constant, 0) {
		b.err = fmt.Errorf("%s constant %v: %w", dim, constant, ErrInvalidValue)
		return b
	}
	b.err = activate(b.host, Constraint{
		First:      DimensionAnchor(dim, b.elem),
		Relation:   Equal,
		Multiplier: 1,
		Constant:   constant,
	})
	return b
}

// FixWidth fixes the element's width.
func (b *Builder) FixWidth(constant float64) *Builder {
	return b.FixSize(Width, constant)
}

// FixHeight fixes the element's height.
func (b *Builder) FixHeight(constant float64) *Builder {
	return b.FixSize(Height, constant)
}

// FixAspectRatio activates width == height * ratio. The ratio must be
// positive and finite.
func (b *Builder) FixAspectRatio(ratio float64) *Builder {
	if b.err != nil {
		return b
	}
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		b.err = fmt.Errorf("aspect ratio %v: %w", ratio, ErrInvalidValue)
		return b
	}
	height := HeightAnchor(b.elem)
	b.err = activate(b.host, Constraint{
		First:      WidthAnchor(b.elem),
		Relation:   Equal,
		Second:     &height,
		Multiplier: ratio,
	})
	return b
}

// AlignAllEdges makes the top, leading, trailing and bottom edges equal to
// those of target.
func (b *Builder) AlignAllEdges(target Element) *Builder {
	return b.Constrain(Top, target).
		Constrain(Leading, target).
		Constrain(Trailing, target).
		Constrain(Bottom, target)
}

// Center makes both centers equal to those of target.
func (b *Builder) Center(target Element) *Builder {
	return b.Constrain(CenterX, target).
		Constrain(CenterY, target)
}
