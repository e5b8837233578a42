package main

import (
	"os"

	"golang.org/x/term"
)

var termGetSize = func(fd int) (int, int, error) {
	return term.GetSize(fd)
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// terminalWidth returns the width of writer when it is a terminal, or 0.
func terminalWidth(writer any) int {
	file, ok := writer.(*os.File)
	if !ok || !termIsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := termGetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}
