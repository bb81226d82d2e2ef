package render

import "math"

// Camera maps bridge x units onto terminal columns. The bridge is split into
// one segment per level plus the starting ledge, each segment ColsPerStep
// columns wide. Emoji occupy 2 columns, so segments are kept even.
type Camera struct {
	OriginX      float64 // world x of the walker's starting spot
	StepDistance float64 // world units per segment
	LeftCol      int     // screen column of segment 0
	ColsPerStep  int
}

// NewCamera creates a camera sized for a screen width and level count.
func NewCamera(origin, stepDistance float64, screenW, levels int) *Camera {
	c := &Camera{OriginX: origin, StepDistance: stepDistance}
	c.Fit(screenW, levels)
	return c
}

// Fit recomputes the segment width so the whole bridge plus the far bank
// fits on screen.
func (c *Camera) Fit(screenW, levels int) {
	segments := levels + 2 // ledge + one per level + far bank
	cols := (screenW - 4) / segments
	cols -= cols % 2
	if cols < 2 {
		cols = 2
	}
	c.ColsPerStep = cols
	c.LeftCol = (screenW - cols*segments) / 2
	if c.LeftCol < 0 {
		c.LeftCol = 0
	}
}

// WorldToScreen converts a walker x into the screen column of its glyph.
// The walker stands in the middle of a segment.
func (c *Camera) WorldToScreen(x float64) int {
	steps := 0.0
	if c.StepDistance > 0 {
		steps = (x - c.OriginX) / c.StepDistance
	}
	col := float64(c.LeftCol) + (steps+0.5)*float64(c.ColsPerStep)
	// Snap to an even column so emoji never straddle a cell boundary.
	n := int(math.Floor(col))
	return n - n%2
}

// SegmentCol returns the first screen column of segment i.
func (c *Camera) SegmentCol(i int) int {
	return c.LeftCol + i*c.ColsPerStep
}
