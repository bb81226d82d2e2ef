package game

import (
	"fmt"

	"riddle-bridge/internal/bridge"
)

// summaryLines lists the run tally shown on the end screens.
func summaryLines(st bridge.State, total, maxLight int) []string {
	lines := []string{
		fmt.Sprintf("Level reached:     %d/%d", min(st.RiddleIndex+1, total), total),
		fmt.Sprintf("Light remaining:   %d/%d", st.Light, maxLight),
		fmt.Sprintf("Riddles answered:  %d", st.Answered),
		fmt.Sprintf("Lights sacrificed: %d", st.Sacrificed),
		fmt.Sprintf("Wrong guesses:     %d", st.WrongGuesses),
		fmt.Sprintf("Tiles laid:        %d", st.TilesPlaced),
	}
	if st.Phase == bridge.PhaseWon {
		lines[0] = fmt.Sprintf("Levels crossed:    %d/%d", total, total)
	}
	return lines
}
