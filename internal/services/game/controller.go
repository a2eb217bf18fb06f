package game

import (
	"log/slog"
	"time"

	"github.com/blockfall/termtris/internal/dependencies/random"
	"github.com/blockfall/termtris/internal/model"
	"github.com/blockfall/termtris/internal/services/scoring"
)

// Controller owns the game rules: spawning, movement, gravity, locking and
// scoring. It mutates the Game it is handed and never retains state between
// calls, so a single controller can serve any number of sessions.
type Controller struct {
	scoring *scoring.Service
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(scoring *scoring.Service, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		scoring: scoring,
		random:  random,
		logger:  logger,
	}
}

// NewGame initializes a fresh session. The first piece and the next kind are
// drawn independently and uniformly, repeats included; there is no bag
// randomizer smoothing the distribution.
func (c *Controller) NewGame() *model.Game {
	g := &model.Game{
		Board: model.NewBoard(),
		Cur:   model.NewPiece(c.randomKind()),
		Next:  c.randomKind(),
		Level: 1,
	}
	c.logger.Info("game started",
		slog.String("first", g.Cur.Kind.String()),
		slog.String("next", g.Next.String()),
	)
	return g
}

func (c *Controller) randomKind() model.Kind {
	return model.Kinds[c.random.Intn(len(model.Kinds))]
}

// SpawnNext promotes the stored next kind to the falling piece and draws a
// new next kind. If the fresh piece already collides the game is over and
// nothing else is touched.
func (c *Controller) SpawnNext(g *model.Game) {
	g.Cur = model.NewPiece(g.Next)
	g.Next = c.randomKind()
	if g.Board.Collides(g.Cur) {
		g.Over = true
		c.logger.Info("game over",
			slog.Uint64("score", g.Score),
			slog.Int("level", g.Level),
			slog.Int("lines", g.Lines),
		)
	}
}

// MoveLeft shifts the piece one column left if legal
func (c *Controller) MoveLeft(g *model.Game) bool {
	return g.Cur.TryMove(g.Board, -1, 0)
}

// MoveRight shifts the piece one column right if legal
func (c *Controller) MoveRight(g *model.Game) bool {
	return g.Cur.TryMove(g.Board, 1, 0)
}

// RotateCW rotates the piece clockwise if a legal placement exists
func (c *Controller) RotateCW(g *model.Game) bool {
	return g.Cur.TryRotate(g.Board, true)
}

// RotateCCW rotates the piece counter-clockwise if a legal placement exists
func (c *Controller) RotateCCW(g *model.Game) bool {
	return g.Cur.TryRotate(g.Board, false)
}

// SoftDrop moves the piece down one row, scoring a point on success
func (c *Controller) SoftDrop(g *model.Game) bool {
	if !g.Cur.TryMove(g.Board, 0, 1) {
		return false
	}
	g.Score += c.scoring.SoftDropPoints(1)
	return true
}

// HardDrop slams the piece to its lowest legal position and returns the
// number of rows descended. The piece locks on the following gravity tick,
// same as a piece that drifted down on its own.
func (c *Controller) HardDrop(g *model.Game) int {
	rows := 0
	for g.Cur.TryMove(g.Board, 0, 1) {
		rows++
	}
	g.Score += c.scoring.HardDropPoints(rows)
	return rows
}

// ApplyGravity attempts the periodic one-row descent. When the piece cannot
// move down it is locked into the board, full rows are cleared and scored,
// the level is re-checked, and the next piece spawns (possibly ending the
// game). It reports whether the board changed, which is the renderer's cue
// for a full board redraw.
func (c *Controller) ApplyGravity(g *model.Game) (locked bool) {
	if g.Cur.TryMove(g.Board, 0, 1) {
		return false
	}

	g.Board.LockPiece(g.Cur)
	cleared := g.Board.ClearLines()
	if cleared > 0 {
		g.Lines += cleared
		points := c.scoring.LineClearPoints(cleared, g.Level)
		g.Score += points
		c.logger.Info("lines cleared",
			slog.Int("count", cleared),
			slog.Uint64("points", points),
			slog.Int("total_lines", g.Lines),
		)
		if c.scoring.ShouldLevelUp(g.Lines, g.Level) {
			g.Level++
			c.logger.Info("level up", slog.Int("level", g.Level))
		}
	}

	c.SpawnNext(g)
	return true
}

// GravityDelay returns the current pause between gravity ticks
func (c *Controller) GravityDelay(g *model.Game) time.Duration {
	return c.scoring.GravityDelay(g.Level)
}
