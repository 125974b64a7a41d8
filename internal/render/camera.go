package render

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Frame positions the camera over a width×height floor. Floors that fit are
// pinned to the top left; larger ones are centred on (cx, cy) and clamped so
// no space beyond the floor edge is shown.
func (c *Camera) Frame(cx, cy, width, height int) {
	cols := c.ViewWidth / 2
	c.OffsetX = clamp(cx-cols/2, 0, width-cols)
	c.OffsetY = clamp(cy-c.ViewHeight/2, 0, height-c.ViewHeight)
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
