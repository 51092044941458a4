package game

import (
	"fmt"
	"strings"
)

// helpPageCount is the number of help pages with content.
const helpPageCount = 2

// helpPages holds the body of each page, indexed from 1.
var helpPages = map[uint64][]string{
	1: {
		"- help: Displays this message",
		"- clear: Clears commands on the screen",
		"- tutorial: Show the tutorial for this game",
		"- go <direction>: Move the player to the next direction",
		"- ragequit: Leaves the game (you will lose your progress)",
		"- infos: Display informations about the place you stand",
	},
	2: {
		"- continue: to continue a story/speech",
		"- skip: skip this room to go to the next",
		"- attack: attacks the monster / NPC",
	},
}

// HelpPage renders a help page. Pages without content still get the header
// and the "(n/2)" footer.
func HelpPage(page uint64) string {
	var b strings.Builder

	b.WriteString("\nSHOWING 'Labyrinth' COMMANDS\n")
	b.WriteString("============================\n\n")
	for _, line := range helpPages[page] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\n============(%d/%d)===========\n", page, helpPageCount)

	return b.String()
}
