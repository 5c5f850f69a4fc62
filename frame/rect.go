package frame

// Rect is an axis-aligned frame. X and Y are the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// CenterX returns the x-coordinate of the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the y-coordinate of the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}
