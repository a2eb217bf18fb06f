package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/blockfall/termtris/internal/model"
)

// Screen layout. The well interior starts one cell in from the border and
// each board cell is two terminal columns wide so blocks come out roughly
// square.
const (
	boardOriginX = 1
	boardOriginY = 1
	cellWidth    = 2

	wellRight = model.Width*cellWidth + 1 // column of the right border

	hudX     = model.Width*cellWidth + 4
	scoreRow = 2
	levelRow = 3
	linesRow = 4
	nextRow  = 6

	// Preview anchor in board coordinates; deliberately outside the well so
	// it shares the cell-to-screen transform with the falling piece.
	previewX = model.Width + 6
	previewY = 8

	footerRow = model.Height + 3

	title = "TERM TETRIS"
)

var (
	scoreLabel = "Score: "
	levelLabel = "Level: "
	linesLabel = "Lines: "
	nextLabel  = "Next:"
)

// Renderer draws the game incrementally. After the initial full frame it only
// touches what changed: the previously drawn piece cells are blanked, the
// current piece cells drawn, and the whole board repainted only after a lock
// or line clear. The HUD numbers are refreshed every frame.
type Renderer struct {
	screen     tcell.Screen
	lastDrawn  *model.Piece
	boardDirty bool
}

// NewRenderer creates a renderer targeting the given screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// DrawFrame paints the complete frame from scratch: well border, title, HUD
// labels, board contents, preview and current piece. Called once at startup
// and again after a terminal resize.
func (r *Renderer) DrawFrame(g *model.Game) {
	r.screen.Clear()
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.screen.SetContent(0, 0, '┌', nil, white)
	r.screen.SetContent(wellRight, 0, '┐', nil, white)
	r.screen.SetContent(0, model.Height+1, '└', nil, white)
	r.screen.SetContent(wellRight, model.Height+1, '┘', nil, white)
	for x := 1; x < wellRight; x++ {
		r.screen.SetContent(x, 0, '─', nil, white)
		r.screen.SetContent(x, model.Height+1, '─', nil, white)
	}
	for y := 1; y <= model.Height; y++ {
		r.screen.SetContent(0, y, '│', nil, white)
		r.screen.SetContent(wellRight, y, '│', nil, white)
	}

	r.printText(hudX, 0, white, title)
	r.printText(hudX, scoreRow, tcell.StyleDefault, scoreLabel)
	r.printText(hudX, levelRow, tcell.StyleDefault, levelLabel)
	r.printText(hudX, linesRow, tcell.StyleDefault, linesLabel)
	r.printText(hudX, nextRow, tcell.StyleDefault, nextLabel)

	r.drawBoard(g.Board)
	r.drawPreview(g.Next)
	r.drawPiece(g.Cur)
	r.drawHUDValues(g)

	cur := g.Cur
	r.lastDrawn = &cur
	r.boardDirty = false
	r.screen.Show()
}

// MarkBoardDirty schedules a full board repaint on the next Render. The
// erase record is dropped too: the repaint overwrites those cells, and
// blanking them afterwards would punch holes in freshly locked blocks.
func (r *Renderer) MarkBoardDirty() {
	r.boardDirty = true
	r.lastDrawn = nil
}

// Render performs one incremental frame update
func (r *Renderer) Render(g *model.Game) {
	if r.boardDirty {
		r.drawBoard(g.Board)
		r.drawPreview(g.Next)
		r.boardDirty = false
	}
	if r.lastDrawn != nil {
		r.erasePiece(*r.lastDrawn)
	}
	r.drawPiece(g.Cur)
	r.drawHUDValues(g)

	cur := g.Cur
	r.lastDrawn = &cur
	r.screen.Show()
}

// DrawFooter prints the end-of-session message below the well
func (r *Renderer) DrawFooter(msg string) {
	r.printText(0, footerRow, tcell.StyleDefault.Foreground(tcell.ColorWhite), msg)
	r.screen.Show()
}

func (r *Renderer) drawBoard(b *model.Board) {
	for y := 0; y < model.Height; y++ {
		for x := 0; x < model.Width; x++ {
			if k := b.Get(x, y); k != model.KindNone {
				r.drawCell(x, y, blockStyle(k))
			} else {
				r.drawCell(x, y, tcell.StyleDefault)
			}
		}
	}
}

func (r *Renderer) drawPiece(p model.Piece) {
	style := blockStyle(p.Kind)
	for _, o := range p.Blocks() {
		x, y := p.X+o.DX, p.Y+o.DY
		if x < 0 || x >= model.Width || y < 0 || y >= model.Height {
			continue
		}
		r.drawCell(x, y, style)
	}
}

func (r *Renderer) erasePiece(p model.Piece) {
	for _, o := range p.Blocks() {
		x, y := p.X+o.DX, p.Y+o.DY
		if x < 0 || x >= model.Width || y < 0 || y >= model.Height {
			continue
		}
		r.drawCell(x, y, tcell.StyleDefault)
	}
}

// drawPreview repaints the next-piece pane. Unlike drawPiece it does not
// clip to the well, since the preview lives outside it.
func (r *Renderer) drawPreview(next model.Kind) {
	for y := previewY; y < previewY+4; y++ {
		for x := previewX; x < previewX+4; x++ {
			r.drawCell(x, y, tcell.StyleDefault)
		}
	}
	p := model.Piece{Kind: next, X: previewX, Y: previewY}
	style := blockStyle(next)
	for _, o := range p.Blocks() {
		r.drawCell(p.X+o.DX, p.Y+o.DY, style)
	}
}

// drawCell paints one board cell (two terminal columns) in the given style
func (r *Renderer) drawCell(x, y int, style tcell.Style) {
	sx := boardOriginX + x*cellWidth
	sy := boardOriginY + y
	r.screen.SetContent(sx, sy, ' ', nil, style)
	r.screen.SetContent(sx+1, sy, ' ', nil, style)
}

func (r *Renderer) drawHUDValues(g *model.Game) {
	r.printText(hudX+runewidth.StringWidth(scoreLabel), scoreRow, tcell.StyleDefault, strconv.FormatUint(g.Score, 10))
	r.printText(hudX+runewidth.StringWidth(levelLabel), levelRow, tcell.StyleDefault, strconv.Itoa(g.Level))
	r.printText(hudX+runewidth.StringWidth(linesLabel), linesRow, tcell.StyleDefault, strconv.Itoa(g.Lines))
}

// printText writes a string starting at (x, y), advancing by display width
func (r *Renderer) printText(x, y int, style tcell.Style, text string) {
	for _, c := range text {
		r.screen.SetContent(x, y, c, nil, style)
		x += runewidth.RuneWidth(c)
	}
}
