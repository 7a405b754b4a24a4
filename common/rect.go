package common

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Overlaps reports whether r and b intersect. Edges that only touch do not
// count as an overlap.
func (r Rect) Overlaps(b Rect) bool {
	return r.X < b.X+b.W && r.X+r.W > b.X && r.Y < b.Y+b.H && r.Y+r.H > b.Y
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Right() float64 { return r.X + r.W }

func (r Rect) Bottom() float64 { return r.Y + r.H }
