package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultHistoryLimit is how many messages a console keeps by default.
const DefaultHistoryLimit = 500

// Message is one entry of the display history.
type Message struct {
	Text  string
	Color tcell.Color
}

// Console holds the display history and the line being typed.
type Console struct {
	messages []Message
	limit    int
	input    []rune
}

// NewConsole creates a console keeping at most limit messages.
// A limit of 0 or less uses DefaultHistoryLimit.
func NewConsole(limit int) *Console {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Console{limit: limit}
}

// Print appends a message in the default color.
func (c *Console) Print(text string) {
	c.PrintColor(text, tcell.ColorDefault)
}

// PrintColor appends a message in the given color, dropping the oldest
// messages once the limit is reached.
func (c *Console) PrintColor(text string, color tcell.Color) {
	c.messages = append(c.messages, Message{Text: text, Color: color})
	if over := len(c.messages) - c.limit; over > 0 {
		c.messages = append(c.messages[:0], c.messages[over:]...)
	}
}

// Clear empties the display history.
func (c *Console) Clear() {
	c.messages = c.messages[:0]
}

// Messages returns the display history, oldest first.
func (c *Console) Messages() []Message {
	return c.messages
}

// Insert adds a rune at the end of the input line.
func (c *Console) Insert(r rune) {
	c.input = append(c.input, r)
}

// Backspace removes the last rune of the input line.
func (c *Console) Backspace() {
	if len(c.input) > 0 {
		c.input = c.input[:len(c.input)-1]
	}
}

// Input returns the line being typed.
func (c *Console) Input() string {
	return string(c.input)
}

// Submit returns the typed line and starts a new one.
func (c *Console) Submit() string {
	line := string(c.input)
	c.input = c.input[:0]
	return line
}

// Lines flattens the history into display rows no wider than width,
// keeping each row's color. Multi-line messages are split on newlines.
func (c *Console) Lines(width int) []Message {
	var rows []Message
	for _, m := range c.messages {
		for _, line := range strings.Split(m.Text, "\n") {
			for _, row := range wrap(line, width) {
				rows = append(rows, Message{Text: row, Color: m.Color})
			}
		}
	}
	return rows
}

// wrap cuts line into pieces of at most width runes. An empty line stays
// one empty row.
func wrap(line string, width int) []string {
	runes := []rune(line)
	if width <= 0 || len(runes) <= width {
		return []string{line}
	}

	var rows []string
	for len(runes) > width {
		rows = append(rows, string(runes[:width]))
		runes = runes[width:]
	}
	return append(rows, string(runes))
}
