package render

import (
	"riddle-bridge/assets"
	"riddle-bridge/internal/anim"
)

// drawScene renders the walker, the bridge and the lava below it.
func (v *View) drawScene() {
	c := v.camera
	segments := v.total + 2
	walkerCol := v.camera.WorldToScreen(v.x)

	for seg := 0; seg < segments; seg++ {
		left := c.SegmentCol(seg)
		for col := left; col < left+c.ColsPerStep; col += 2 {
			if g := v.bridgeGlyph(seg, col); g != "" {
				v.putGlyph(col, rowBridge, g, styleScene)
			}
			v.putGlyph(col, rowLava, lavaGlyph(col, 0), styleScene)
			v.putGlyph(col, rowLava+1, lavaGlyph(col, 1), styleScene)
		}
	}
	goalCol := c.SegmentCol(segments-1) + c.ColsPerStep/2
	goalCol -= goalCol % 2
	v.putGlyph(goalCol, rowWalker, assets.GlyphGoal, styleScene)

	walkerRow := rowWalker
	if v.pose == anim.PoseFalling {
		// The fall drops the walker through the broken span.
		walkerRow = rowBridge
	}
	v.putGlyph(walkerCol, walkerRow, PoseGlyph(v.pose), styleScene)
}

// bridgeGlyph picks the glyph for one cell of the bridge row. Segment 0 is
// the starting ledge and the last one the far bank. A span counts as crossed
// once the walker has moved past its start.
func (v *View) bridgeGlyph(seg, col int) string {
	last := v.total + 1
	if seg == 0 || seg == last {
		return assets.GlyphBridge
	}
	crossed := v.camera.WorldToScreen(v.x) >= v.camera.SegmentCol(seg)
	switch {
	case seg <= v.tiles:
		return assets.GlyphTile
	case crossed:
		return assets.GlyphBridge
	case v.gap && v.nextSegment() == seg:
		return assets.GlyphGap
	}
	return ""
}

// nextSegment is the span directly ahead of the walker.
func (v *View) nextSegment() int {
	c := v.camera
	col := c.WorldToScreen(v.x) - c.LeftCol
	if c.ColsPerStep <= 0 || col < 0 {
		return 1
	}
	return col/c.ColsPerStep + 1
}

// lavaGlyph scatters flames across the lava rows.
func lavaGlyph(col, row int) string {
	if (col/2+row*3)%5 == 0 {
		return assets.GlyphLavaBubble
	}
	return assets.GlyphLava
}
