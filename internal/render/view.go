// Package render draws the riddle bridge onto a tcell screen.
package render

import (
	"riddle-bridge/internal/anim"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// endScreen is the terminal overlay state.
type endScreen uint8

const (
	endNone endScreen = iota
	endDeath
	endWin
)

// View is the terminal presenter. Every setter updates the model and
// redraws, so the screen always reflects the last call. View is not safe for
// concurrent use; drive it from the game loop goroutine.
type View struct {
	screen tcell.Screen
	camera *Camera

	// riddle panel
	prompt        string
	riddleVisible bool
	input         string
	errVisible    bool
	notice        bool
	controls      bool

	// HUD
	level, total int
	light, max   int

	// scene
	x     float64
	pose  anim.Pose
	tiles int
	gap   bool

	// end screens
	end        endScreen
	endMessage string
	summary    []string
	status     string
	canPrint   bool
}

// NewView creates a view for a bridge of levels segments. origin and step
// are the sequencer's starting x and step distance.
func NewView(screen tcell.Screen, levels int, origin, step float64) *View {
	w, _ := screen.Size()
	return &View{
		screen: screen,
		camera: NewCamera(origin, step, w, levels),
		total:  levels,
		x:      origin,
	}
}

// Reset clears per-run state for a fresh run.
func (v *View) Reset() {
	*v = View{
		screen: v.screen,
		camera: v.camera,
		total:  v.total,
		max:    v.max,
		light:  v.max,
		x:      v.camera.OriginX,
	}
	v.Draw()
}

func (v *View) ShowRiddle(prompt string) {
	v.prompt = prompt
	v.riddleVisible = true
	v.input = ""
	v.Draw()
}

func (v *View) HideRiddle() {
	v.riddleVisible = false
	v.Draw()
}

func (v *View) ShowLevel(index, total int) {
	v.level, v.total = index, total
	v.Draw()
}

func (v *View) ShowLight(level, max int) {
	v.light, v.max = level, max
	v.Draw()
}

func (v *View) ShowError(visible bool) {
	v.errVisible = visible
	v.Draw()
}

func (v *View) ShowSacrificeNotice(visible bool) {
	v.notice = visible
	v.Draw()
}

func (v *View) ShowDeathScreen(message string) {
	v.end = endDeath
	v.endMessage = message
	v.Draw()
}

func (v *View) ShowWinScreen(message string) {
	v.end = endWin
	v.endMessage = message
	v.Draw()
}

func (v *View) EnableControls(enabled bool) {
	v.controls = enabled
	v.Draw()
}

func (v *View) SetPosition(x float64) {
	v.x = x
	v.Draw()
}

func (v *View) SetPose(p anim.Pose) {
	v.pose = p
	v.Draw()
}

func (v *View) PlaceTile() {
	v.tiles++
	v.Draw()
}

func (v *View) ShowGap(visible bool) {
	v.gap = visible
	v.Draw()
}

// SetInput updates the answer field text.
func (v *View) SetInput(text string) {
	v.input = text
	v.Draw()
}

// SetSummary sets the run statistics listed on the end screens.
func (v *View) SetSummary(lines []string) {
	v.summary = lines
	v.Draw()
}

// SetStatus shows a one-line status message on the end screens.
func (v *View) SetStatus(msg string) {
	v.status = msg
	v.Draw()
}

// OfferCertificate toggles the certificate hint on the win screen.
func (v *View) OfferCertificate(enabled bool) {
	v.canPrint = enabled
	v.Draw()
}

// Resize refits the bridge to the current screen size.
func (v *View) Resize() {
	w, _ := v.screen.Size()
	v.camera.Fit(w, v.total)
	v.screen.Sync()
	v.Draw()
}

// Draw renders the full frame.
func (v *View) Draw() {
	v.screen.Clear()
	switch v.end {
	case endDeath:
		v.drawDeath()
	case endWin:
		v.drawWin()
	default:
		v.drawHUD()
		v.drawScene()
		v.drawPanel()
	}
	v.screen.Show()
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func (v *View) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	v.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		v.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text at (x, y), advancing by each rune's display width.
func (v *View) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		v.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// centerText writes text horizontally centered on row y.
func (v *View) centerText(y int, text string, style tcell.Style) {
	w, _ := v.screen.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	v.drawText(x, y, text, style)
}

func (v *View) drawHLine(y int, style tcell.Style) {
	w, _ := v.screen.Size()
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, '─', nil, style)
	}
}
