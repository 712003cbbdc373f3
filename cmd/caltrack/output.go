package main

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

func getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

// nameColumnWidth budgets the free-text column: the numeric columns get a
// fixed share of the terminal and the name takes what is left.
func nameColumnWidth(numColumns int) int {
	// Roughly 3 chars of border/padding per column plus 8 per numeric cell.
	width := getTerminalWidth() - numColumns*3 - (numColumns-1)*8
	if width < 10 {
		width = 10
	}
	if width > 60 {
		width = 60
	}
	return width
}

// truncateCell shortens a value with an ellipsis, accounting for
// multi-byte characters.
func truncateCell(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
