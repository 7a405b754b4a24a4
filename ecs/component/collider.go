package component

import "github.com/milk9111/przemekrun/common"

// Collider is an axis-aligned box anchored at the entity Transform.
type Collider struct {
	Width  float64
	Height float64
}

// Bounds returns the world-space box for a collider at t.
func (c Collider) Bounds(t Transform) common.Rect {
	return common.Rect{X: t.X, Y: t.Y, W: c.Width, H: c.Height}
}

var ColliderComponent = NewComponent[Collider]()
