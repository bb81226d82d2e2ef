package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"riddle-bridge/assets"

	"github.com/mattn/go-runewidth"
)

// Screen rows of the play layout.
const (
	rowTitle  = 0
	rowHUD    = 1
	rowWalker = 4
	rowBridge = 5
	rowLava   = 6
	rowPanel  = 9
)

// lowLight is the level at and below which the light bar flickers.
const lowLight = 2

// drawHUD renders the title, level counter and light bar.
func (v *View) drawHUD() {
	w, _ := v.screen.Size()
	v.centerText(rowTitle, assets.Title, styleTitle)

	v.drawText(2, rowHUD, fmt.Sprintf("LEVEL: %d/%d", v.level+1, v.total), styleHUD)

	style := styleHUD
	if v.light <= lowLight {
		style = styleLowHUD
	}
	label := fmt.Sprintf("LIGHT: %d/%d ", v.light, v.max)
	bar := lightBar(v.light, v.max)
	x := w - 2 - runewidth.StringWidth(label) - 2*v.max
	if x < 0 {
		x = 0
	}
	v.drawText(x, rowHUD, label, style)
	x += runewidth.StringWidth(label)
	for _, g := range bar {
		v.putGlyph(x, rowHUD, g, style)
		x += 2
	}
	v.drawHLine(rowHUD+1, styleDim)
}

// lightBar returns one glyph per light slot, lit slots first.
func lightBar(level, max int) []string {
	if level < 0 {
		level = 0
	}
	if level > max {
		level = max
	}
	bar := make([]string, 0, max)
	for i := 0; i < max; i++ {
		if i < level {
			bar = append(bar, assets.GlyphLightOn)
		} else {
			bar = append(bar, assets.GlyphLightOff)
		}
	}
	return bar
}

// drawPanel renders the riddle, the answer field and the notices.
func (v *View) drawPanel() {
	w, h := v.screen.Size()
	v.drawHLine(rowPanel-1, styleDim)

	y := rowPanel
	if v.riddleVisible {
		for _, line := range wrap(v.prompt, w-4) {
			v.drawText(2, y, line, styleText)
			y++
		}
		y++

		fieldW := w - 14
		if fieldW < 10 {
			fieldW = 10
		}
		v.drawText(2, y, "Answer:", styleHUD)
		fieldStyle := styleInput
		if !v.controls {
			fieldStyle = styleLocked
		}
		text := v.input
		if v.controls {
			text += "_"
		}
		// Keep the tail of long input visible.
		for runewidth.StringWidth(text) > fieldW {
			_, size := utf8.DecodeRuneInString(text)
			text = text[size:]
		}
		text += strings.Repeat(" ", fieldW-runewidth.StringWidth(text))
		v.drawText(10, y, text, fieldStyle)
		y += 2
	}

	if v.errVisible {
		v.drawText(2, y, assets.WrongAnswer, styleError)
		y++
	}
	if v.notice {
		v.drawText(2, y, assets.SacrificeNotice, styleNotice)
	}

	help := "[Enter] answer   [Tab] sacrifice a light   [Esc] quit"
	if !v.controls {
		help = "..."
	}
	v.drawText(2, h-1, help, styleDim)
}

// wrap splits s into lines no wider than width display columns.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	return strings.Split(runewidth.Wrap(s, width), "\n")
}
