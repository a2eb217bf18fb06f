package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/blockfall/termtris/internal/model"
)

// kindColors maps each piece kind to the background color of its cells
var kindColors = [...]tcell.Color{
	model.KindI: tcell.ColorAqua,
	model.KindO: tcell.ColorYellow,
	model.KindT: tcell.ColorFuchsia,
	model.KindS: tcell.ColorGreen,
	model.KindZ: tcell.ColorRed,
	model.KindJ: tcell.ColorBlue,
	model.KindL: tcell.ColorOlive,
}

// blockStyle returns the cell style for a piece kind
func blockStyle(k model.Kind) tcell.Style {
	return tcell.StyleDefault.Background(kindColors[k])
}
