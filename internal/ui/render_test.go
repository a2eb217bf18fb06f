package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/suite"

	"github.com/blockfall/termtris/internal/model"
)

type RenderSuite struct {
	suite.Suite
	screen   tcell.SimulationScreen
	renderer *Renderer
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderSuite))
}

func (s *RenderSuite) SetupTest() {
	s.screen = tcell.NewSimulationScreen("UTF-8")
	s.Require().NoError(s.screen.Init())
	s.screen.SetSize(80, 30)
	s.renderer = NewRenderer(s.screen)
}

func (s *RenderSuite) TearDownTest() {
	s.screen.Fini()
}

func (s *RenderSuite) newGame() *model.Game {
	return &model.Game{
		Board: model.NewBoard(),
		Cur:   model.NewPiece(model.KindO),
		Next:  model.KindI,
		Level: 1,
	}
}

// cellBackground returns the background color drawn for board cell (x, y)
func (s *RenderSuite) cellBackground(x, y int) tcell.Color {
	_, _, style, _ := s.screen.GetContent(boardOriginX+x*cellWidth, boardOriginY+y)
	_, bg, _ := style.Decompose()
	return bg
}

// textAt reads n runes starting at screen position (x, y)
func (s *RenderSuite) textAt(x, y, n int) string {
	runes := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		c, _, _, _ := s.screen.GetContent(x+i, y)
		runes = append(runes, c)
	}
	return string(runes)
}

func (s *RenderSuite) TestDrawFrameBorder() {
	s.renderer.DrawFrame(s.newGame())

	topLeft, _, _, _ := s.screen.GetContent(0, 0)
	topRight, _, _, _ := s.screen.GetContent(wellRight, 0)
	bottomLeft, _, _, _ := s.screen.GetContent(0, model.Height+1)
	side, _, _, _ := s.screen.GetContent(0, 10)

	s.Equal('┌', topLeft)
	s.Equal('┐', topRight)
	s.Equal('└', bottomLeft)
	s.Equal('│', side)
}

func (s *RenderSuite) TestDrawFrameTitleAndLabels() {
	s.renderer.DrawFrame(s.newGame())

	s.Equal(title, s.textAt(hudX, 0, len(title)))
	s.Equal("Score: 0", s.textAt(hudX, scoreRow, 8))
	s.Equal("Level: 1", s.textAt(hudX, levelRow, 8))
	s.Equal("Lines: 0", s.textAt(hudX, linesRow, 8))
	s.Equal("Next:", s.textAt(hudX, nextRow, 5))
}

func (s *RenderSuite) TestDrawFrameDrawsCurrentPiece() {
	s.renderer.DrawFrame(s.newGame())

	// O at spawn occupies (4,0) (5,0) (4,1) (5,1)
	s.Equal(tcell.ColorYellow, s.cellBackground(4, 0))
	s.Equal(tcell.ColorYellow, s.cellBackground(5, 1))
	s.Equal(tcell.ColorDefault, s.cellBackground(3, 0))
}

func (s *RenderSuite) TestDrawFrameDrawsPreview() {
	s.renderer.DrawFrame(s.newGame())

	// I preview: blocks at dy=1 from the preview anchor
	s.Equal(tcell.ColorAqua, s.cellBackground(previewX, previewY+1))
	s.Equal(tcell.ColorAqua, s.cellBackground(previewX+3, previewY+1))
	s.Equal(tcell.ColorDefault, s.cellBackground(previewX, previewY))
}

func (s *RenderSuite) TestRenderErasesPreviousPiece() {
	g := s.newGame()
	s.renderer.DrawFrame(g)

	g.Cur.X++
	s.renderer.Render(g)

	s.Equal(tcell.ColorDefault, s.cellBackground(4, 0), "vacated cell must be blanked")
	s.Equal(tcell.ColorYellow, s.cellBackground(5, 0))
	s.Equal(tcell.ColorYellow, s.cellBackground(6, 0))
}

func (s *RenderSuite) TestRenderRepaintsBoardWhenDirty() {
	g := s.newGame()
	s.renderer.DrawFrame(g)

	g.Board.Set(0, 19, model.KindZ)
	g.Next = model.KindT
	s.renderer.MarkBoardDirty()
	s.renderer.Render(g)

	s.Equal(tcell.ColorRed, s.cellBackground(0, 19))
	// Preview refreshes along with the board: T's top block replaces I's row.
	s.Equal(tcell.ColorFuchsia, s.cellBackground(previewX+1, previewY))
	s.Equal(tcell.ColorDefault, s.cellBackground(previewX+3, previewY+1))
}

func (s *RenderSuite) TestRenderDirtySkipsStaleErase() {
	g := s.newGame()
	s.renderer.DrawFrame(g)

	// Lock the piece where it stands, as the controller would.
	g.Board.LockPiece(g.Cur)
	s.renderer.MarkBoardDirty()
	g.Cur = model.NewPiece(model.KindT)
	g.Cur.Y = 5
	s.renderer.Render(g)

	// The locked cells must survive the frame instead of being erased as
	// "previous piece" cells.
	s.Equal(tcell.ColorYellow, s.cellBackground(4, 0))
	s.Equal(tcell.ColorYellow, s.cellBackground(5, 1))
}

func (s *RenderSuite) TestRenderRefreshesHUD() {
	g := s.newGame()
	s.renderer.DrawFrame(g)

	g.Score = 1234
	g.Level = 5
	g.Lines = 42
	s.renderer.Render(g)

	s.Equal("Score: 1234", s.textAt(hudX, scoreRow, 11))
	s.Equal("Level: 5", s.textAt(hudX, levelRow, 8))
	s.Equal("Lines: 42", s.textAt(hudX, linesRow, 9))
}

func (s *RenderSuite) TestDrawFooter() {
	s.renderer.DrawFrame(s.newGame())
	s.renderer.DrawFooter("Game Over. Thanks for playing.")

	s.Equal("Game Over.", s.textAt(0, footerRow, 10))
}
