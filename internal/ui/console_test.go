package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestConsoleHistory(t *testing.T) {
	c := NewConsole(3)

	c.Print("one")
	c.Print("two")
	c.PrintColor("three", tcell.ColorRed)
	c.Print("four")

	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len(Messages()) = %d, want 3", len(msgs))
	}
	if msgs[0].Text != "two" || msgs[2].Text != "four" {
		t.Errorf("Messages() = %v, want two..four", msgs)
	}
	if msgs[1].Color != tcell.ColorRed {
		t.Errorf("Messages()[1].Color = %v, want ColorRed", msgs[1].Color)
	}

	c.Clear()
	if len(c.Messages()) != 0 {
		t.Errorf("len(Messages()) after Clear = %d, want 0", len(c.Messages()))
	}
}

func TestConsoleDefaultLimit(t *testing.T) {
	c := NewConsole(0)
	for i := 0; i < DefaultHistoryLimit+10; i++ {
		c.Print("x")
	}
	if got := len(c.Messages()); got != DefaultHistoryLimit {
		t.Errorf("len(Messages()) = %d, want %d", got, DefaultHistoryLimit)
	}
}

func TestConsoleInput(t *testing.T) {
	c := NewConsole(10)

	c.Backspace() // no-op on empty line
	for _, r := range "go lefx" {
		c.Insert(r)
	}
	c.Backspace()
	c.Insert('t')

	if got := c.Input(); got != "go left" {
		t.Errorf("Input() = %q, want %q", got, "go left")
	}
	if got := c.Submit(); got != "go left" {
		t.Errorf("Submit() = %q, want %q", got, "go left")
	}
	if got := c.Input(); got != "" {
		t.Errorf("Input() after Submit = %q, want empty", got)
	}
}

func TestConsoleLines(t *testing.T) {
	c := NewConsole(10)
	c.Print("first\nsecond")
	c.PrintColor("abcdefgh", tcell.ColorBlue)
	c.Print("")

	rows := c.Lines(5)
	want := []string{"first", "secon", "d", "abcde", "fgh", ""}
	if len(rows) != len(want) {
		t.Fatalf("Lines(5) = %v, want %v", rows, want)
	}
	for i, w := range want {
		if rows[i].Text != w {
			t.Errorf("Lines(5)[%d] = %q, want %q", i, rows[i].Text, w)
		}
	}
	if rows[3].Color != tcell.ColorBlue || rows[4].Color != tcell.ColorBlue {
		t.Error("wrapped rows should keep the message color")
	}
}
