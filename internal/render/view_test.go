package render

import (
	"strings"
	"testing"

	"riddle-bridge/assets"
	"riddle-bridge/internal/anim"

	"github.com/gdamore/tcell/v2"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen() tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	_ = ss.Init()
	return ss
}

func newTestView() (*View, tcell.Screen) {
	s := newSimScreen()
	v := NewView(s, 10, 150, 120)
	v.ShowLight(5, 5)
	v.ShowLevel(0, 10)
	return v, s
}

// rowText returns the primary runes of row y.
func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

// screenText joins every row of the screen.
func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range h {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

// glyphCol returns the column of the first cell on row y whose primary rune
// starts glyph, or -1.
func glyphCol(s tcell.Screen, y int, glyph string) int {
	want := []rune(glyph)[0]
	w, _ := s.Size()
	for x := 0; x < w; x++ {
		if r, _, _, _ := s.GetContent(x, y); r == want {
			return x
		}
	}
	return -1
}

// ─── play layout ──────────────────────────────────────────────────────────────

func TestViewDrawsHUD(t *testing.T) {
	v, s := newTestView()
	v.ShowLevel(2, 10)
	hud := rowText(s, rowHUD)
	if !strings.Contains(hud, "LEVEL: 3/10") {
		t.Errorf("HUD missing level: %q", hud)
	}
	if !strings.Contains(hud, "LIGHT: 5/5") {
		t.Errorf("HUD missing light: %q", hud)
	}
	v.ShowLight(2, 5)
	if !strings.Contains(rowText(s, rowHUD), "LIGHT: 2/5") {
		t.Errorf("HUD not updated after light change: %q", rowText(s, rowHUD))
	}
}

func TestViewRiddlePanel(t *testing.T) {
	v, s := newTestView()
	v.ShowRiddle("Q: What is full of holes but still holds water?")
	v.EnableControls(true)
	v.SetInput("spon")

	text := screenText(s)
	if !strings.Contains(text, "What is full of holes") {
		t.Error("prompt not drawn")
	}
	if !strings.Contains(text, "Answer:") || !strings.Contains(text, "spon_") {
		t.Error("answer field not drawn with cursor")
	}
	if !strings.Contains(text, "[Tab] sacrifice") {
		t.Error("controls help missing while enabled")
	}

	v.HideRiddle()
	text = screenText(s)
	if strings.Contains(text, "What is full of holes") {
		t.Error("prompt still drawn after HideRiddle")
	}
}

func TestViewShowRiddleClearsInput(t *testing.T) {
	v, s := newTestView()
	v.ShowRiddle("Q: first")
	v.SetInput("typed")
	v.ShowRiddle("Q: second")
	if strings.Contains(screenText(s), "typed") {
		t.Error("answer field should be cleared for a new riddle")
	}
}

func TestViewWrapsLongPrompt(t *testing.T) {
	v, s := newTestView()
	long := strings.Repeat("riddle ", 30)
	v.ShowRiddle(long)
	if strings.TrimSpace(rowText(s, rowPanel+1)) == "" {
		t.Error("long prompt should wrap onto a second line")
	}
}

func TestViewErrorAndNotice(t *testing.T) {
	v, s := newTestView()
	v.ShowRiddle("Q: riddle")
	v.ShowError(true)
	v.ShowSacrificeNotice(true)
	text := screenText(s)
	if !strings.Contains(text, assets.WrongAnswer) {
		t.Error("error line missing")
	}
	if !strings.Contains(text, assets.SacrificeNotice) {
		t.Error("sacrifice notice missing")
	}
	v.ShowError(false)
	v.ShowSacrificeNotice(false)
	text = screenText(s)
	if strings.Contains(text, assets.WrongAnswer) || strings.Contains(text, assets.SacrificeNotice) {
		t.Error("indicators should be hidden")
	}
}

// ─── scene ────────────────────────────────────────────────────────────────────

func TestWalkerMovesOneSegmentPerStep(t *testing.T) {
	v, s := newTestView()
	v.SetPosition(150)
	start := glyphCol(s, rowWalker, assets.GlyphStand)
	if start < 0 {
		t.Fatal("walker not drawn")
	}
	v.SetPosition(270)
	end := glyphCol(s, rowWalker, assets.GlyphStand)
	if end-start != v.camera.ColsPerStep {
		t.Errorf("walker moved %d columns, want %d", end-start, v.camera.ColsPerStep)
	}
}

func TestWalkerPoses(t *testing.T) {
	v, s := newTestView()
	v.SetPose(anim.PoseWalkA)
	if glyphCol(s, rowWalker, assets.GlyphWalkA) < 0 {
		t.Error("walk pose A not drawn")
	}
	v.SetPose(anim.PoseFalling)
	if glyphCol(s, rowWalker, assets.GlyphFalling) >= 0 {
		t.Error("falling walker should leave the walking row")
	}
	if glyphCol(s, rowBridge, assets.GlyphFalling) < 0 {
		t.Error("falling walker should drop to the bridge row")
	}
}

func TestTilesDrawnOnBridge(t *testing.T) {
	v, s := newTestView()
	if glyphCol(s, rowBridge, assets.GlyphTile) >= 0 {
		t.Fatal("no tiles expected before any are placed")
	}
	v.PlaceTile()
	col := glyphCol(s, rowBridge, assets.GlyphTile)
	if col != v.camera.SegmentCol(1) {
		t.Errorf("first tile at column %d, want %d", col, v.camera.SegmentCol(1))
	}
}

func TestLavaDrawn(t *testing.T) {
	_, s := newTestView()
	if glyphCol(s, rowLava, assets.GlyphLava) < 0 {
		t.Error("lava row missing")
	}
}

// ─── end screens ──────────────────────────────────────────────────────────────

func TestDeathScreen(t *testing.T) {
	v, s := newTestView()
	v.SetSummary([]string{"Riddles answered: 3"})
	v.ShowDeathScreen(assets.LavaDeathMessage)
	text := screenText(s)
	for _, want := range []string{assets.DeathTitle, assets.LavaDeathMessage, "Riddles answered: 3", "[R] Try Again"} {
		if !strings.Contains(text, want) {
			t.Errorf("death screen missing %q", want)
		}
	}
	if strings.Contains(text, "[P]") {
		t.Error("death screen must not offer a certificate")
	}
}

func TestDeathScreenWithoutMessage(t *testing.T) {
	v, s := newTestView()
	v.ShowDeathScreen("")
	text := screenText(s)
	if !strings.Contains(text, assets.DeathTitle) {
		t.Error("death title missing")
	}
	if strings.Contains(text, assets.LavaDeathMessage) {
		t.Error("cause line should be hidden for an empty message")
	}
}

func TestWinScreen(t *testing.T) {
	v, s := newTestView()
	v.OfferCertificate(true)
	v.ShowWinScreen(assets.WinIntact)
	v.SetStatus("saved")
	text := screenText(s)
	for _, want := range []string{assets.WinIntact, "[P] Print certificate", "saved"} {
		if !strings.Contains(text, want) {
			t.Errorf("win screen missing %q", want)
		}
	}
}

func TestResetReturnsToPlayLayout(t *testing.T) {
	v, s := newTestView()
	v.PlaceTile()
	v.ShowWinScreen(assets.WinNeutral)
	v.Reset()
	text := screenText(s)
	if strings.Contains(text, assets.WinNeutral) {
		t.Error("win screen still shown after Reset")
	}
	if !strings.Contains(rowText(s, rowHUD), "LIGHT: 5/5") {
		t.Errorf("light not restored: %q", rowText(s, rowHUD))
	}
	if glyphCol(s, rowBridge, assets.GlyphTile) >= 0 {
		t.Error("tiles should be cleared on Reset")
	}
}

// ─── pure helpers ─────────────────────────────────────────────────────────────

func TestPoseGlyphsDistinct(t *testing.T) {
	seen := map[string]anim.Pose{}
	for _, p := range []anim.Pose{anim.PoseStand, anim.PoseWalkA, anim.PoseWalkB, anim.PoseFalling} {
		g := PoseGlyph(p)
		if prev, dup := seen[g]; dup {
			t.Errorf("poses %v and %v share glyph %q", prev, p, g)
		}
		seen[g] = p
	}
}

func TestLightBar(t *testing.T) {
	bar := lightBar(3, 5)
	if len(bar) != 5 {
		t.Fatalf("bar has %d slots, want 5", len(bar))
	}
	for i, g := range bar {
		want := assets.GlyphLightOff
		if i < 3 {
			want = assets.GlyphLightOn
		}
		if g != want {
			t.Errorf("slot %d = %q, want %q", i, g, want)
		}
	}
	if got := lightBar(-1, 5); got[0] != assets.GlyphLightOff {
		t.Error("negative light should render as empty")
	}
}

func TestCameraFitsScreen(t *testing.T) {
	for _, w := range []int{40, 80, 132} {
		c := NewCamera(150, 120, w, 10)
		if c.ColsPerStep%2 != 0 {
			t.Errorf("width %d: odd segment width %d", w, c.ColsPerStep)
		}
		if right := c.SegmentCol(12); right > w && c.ColsPerStep > 2 {
			t.Errorf("width %d: bridge ends at %d", w, right)
		}
		if col := c.WorldToScreen(150); col%2 != 0 {
			t.Errorf("width %d: walker on odd column %d", w, col)
		}
	}
}
