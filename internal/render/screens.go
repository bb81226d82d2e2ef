package render

import "riddle-bridge/assets"

// drawDeath renders the death overlay.
func (v *View) drawDeath() {
	_, h := v.screen.Size()
	y := h/2 - 4
	if y < 1 {
		y = 1
	}
	v.centerText(y, assets.GlyphSkull+"  "+assets.DeathTitle+"  "+assets.GlyphSkull, styleDeath)
	y += 2
	if v.endMessage != "" {
		v.centerText(y, v.endMessage, styleError)
		y += 2
	}
	y = v.drawSummary(y)
	v.drawEndFooter(y, false)
}

// drawWin renders the victory overlay with the tier message.
func (v *View) drawWin() {
	_, h := v.screen.Size()
	y := h/2 - 4
	if y < 1 {
		y = 1
	}
	v.centerText(y, assets.GlyphTrophy+"  "+v.endMessage+"  "+assets.GlyphTrophy, styleVictory)
	y += 2
	y = v.drawSummary(y)
	v.drawEndFooter(y, v.canPrint)
}

func (v *View) drawSummary(y int) int {
	for _, line := range v.summary {
		v.centerText(y, line, styleHUD)
		y++
	}
	if len(v.summary) > 0 {
		y++
	}
	return y
}

func (v *View) drawEndFooter(y int, certificate bool) {
	v.drawHLine(y, styleDim)
	y += 2
	opts := "[R] Try Again   [Q] Quit"
	if certificate {
		opts = "[R] Try Again   [P] Print certificate   [Q] Quit"
	}
	v.centerText(y, opts, styleText)
	if v.status != "" {
		v.centerText(y+2, v.status, styleNotice)
	}
}
