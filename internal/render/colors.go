package render

import (
	"riddle-bridge/assets"
	"riddle-bridge/internal/anim"

	"github.com/gdamore/tcell/v2"
)

// Palette used across the scene and the panels.
var (
	styleTitle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 170, 60)).Bold(true)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleLowHUD  = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Blink(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleInput   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightYellow)
	styleLocked  = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorDarkSlateGray)
	styleScene   = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleDeath   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleVictory = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// PoseGlyph maps a walker pose to its emoji.
func PoseGlyph(p anim.Pose) string {
	switch p {
	case anim.PoseWalkA:
		return assets.GlyphWalkA
	case anim.PoseWalkB:
		return assets.GlyphWalkB
	case anim.PoseFalling:
		return assets.GlyphFalling
	}
	return assets.GlyphStand
}
