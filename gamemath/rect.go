package gamemath

// Rect is an axis-aligned box with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Overlaps reports a strict intersection. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// OverlapX returns the horizontal penetration depth, or 0 when the boxes do
// not overlap.
func (r Rect) OverlapX(o Rect) float64 {
	if !r.Overlaps(o) {
		return 0
	}
	return min(r.Right(), o.Right()) - max(r.X, o.X)
}
