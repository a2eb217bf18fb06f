package ui

import (
	"github.com/gdamore/tcell/v2"
)

// NewScreen creates and initializes the terminal surface: raw input mode and
// the alternate screen buffer via Init, with the cursor hidden. Callers must
// arrange for Fini to run on every exit path so the terminal is restored.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}
