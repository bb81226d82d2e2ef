package assets

// Emoji constants used by the bridge scene.
const (
	GlyphStand      = "🧍"
	GlyphWalkA      = "🚶"
	GlyphWalkB      = "🏃"
	GlyphFalling    = "🫠"
	GlyphBridge     = "🟫"
	GlyphTile       = "🪵"
	GlyphGap        = "🕳️"
	GlyphLava       = "🟥"
	GlyphLavaBubble = "🔥"
	GlyphLightOn    = "🕯️"
	GlyphLightOff   = "▫️"
	GlyphGoal       = "🏰"
	GlyphSkull      = "💀"
	GlyphTrophy     = "🏆"
)

// Title is the banner shown above the bridge.
const Title = "✨ THE RIDDLE BRIDGE ✨"

// Screen copy for the terminal states.
const (
	LavaDeathMessage = "YOU FELL INTO THE LAVA!"
	DeathTitle       = "YOU DIED"
	SacrificeNotice  = "You sacrifice a light. The bridge mends itself..."
	WrongAnswer      = "Wrong answer. The bridge remains broken."
)

// Win messages, one per light tier.
const (
	WinBarely  = "YOU BARELY MADE IT! SO CLOSE TO THE LAVA..."
	WinIntact  = "EXCELLENT! YOU CROSSED WITH MOST OF YOUR LIGHT INTACT!"
	WinNeutral = "CONGRATULATIONS! YOU CROSSED THE BRIDGE!"
)
