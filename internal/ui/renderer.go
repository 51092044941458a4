package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	promptText        = "> "
	waitingPromptText = "(continue) > "
)

// Renderer handles drawing the console to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the message log, newest at the bottom, a separator and the
// input prompt. waiting switches to the prompt that asks for "continue".
func (r *Renderer) Render(console *Console, waiting bool) {
	r.screen.Clear()

	width, height := r.screen.Size()
	logHeight := height - 2
	if logHeight < 0 {
		logHeight = 0
	}

	rows := console.Lines(width)
	if len(rows) > logHeight {
		rows = rows[len(rows)-logHeight:]
	}
	for y, row := range rows {
		r.screen.SetString(0, y, row.Text, r.messageStyle(row))
	}

	if height >= 2 {
		sep := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		r.screen.SetString(0, height-2, strings.Repeat("─", width), sep)
	}

	prompt := promptText
	if waiting {
		prompt = waitingPromptText
	}
	promptStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	x := r.screen.SetString(0, height-1, prompt, promptStyle)
	x = r.screen.SetString(x, height-1, console.Input(), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.ShowCursor(x, height-1)

	r.screen.Show()
}

// messageStyle returns the style for a log row. Echoed commands stand out.
func (r *Renderer) messageStyle(row Message) tcell.Style {
	if strings.HasPrefix(row.Text, promptText) {
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}
	if row.Color == tcell.ColorDefault {
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	return tcell.StyleDefault.Foreground(row.Color)
}
