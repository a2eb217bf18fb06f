package ui

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/blockfall/termtris/internal/dependencies/clock"
	"github.com/blockfall/termtris/internal/model"
	gamesvc "github.com/blockfall/termtris/internal/services/game"
)

// pollTimeout bounds each input wait and doubles as the frame pace
const pollTimeout = 16 * time.Millisecond

// footerMessage is shown once after the loop ends, on both quit and game over
const footerMessage = "Game Over. Thanks for playing."

// Loop drives one session. Each iteration consumes at most one key event,
// applies gravity when the level's delay has elapsed, then redraws what
// changed. The event pump runs on its own goroutine (tcell's ChannelEvents)
// but game state is only ever touched from the goroutine running Run.
type Loop struct {
	screen     tcell.Screen
	renderer   *Renderer
	controller *gamesvc.Controller
	clock      clock.Clock
	logger     *slog.Logger
}

// NewLoop creates a run loop for the given screen and controller
func NewLoop(screen tcell.Screen, controller *gamesvc.Controller, clk clock.Clock, logger *slog.Logger) *Loop {
	return &Loop{
		screen:     screen,
		renderer:   NewRenderer(screen),
		controller: controller,
		clock:      clk,
		logger:     logger,
	}
}

// Run plays the session until a quit key or game over, leaving the footer on
// screen. The caller is responsible for tearing the screen down afterwards.
func (l *Loop) Run(g *model.Game) error {
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go l.screen.ChannelEvents(events, quit)
	defer close(quit)

	l.renderer.DrawFrame(g)

	lastGravity := l.clock.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if l.handleKey(g, ev) {
					l.logger.Info("quit requested")
					l.renderer.DrawFooter(footerMessage)
					return nil
				}
			case *tcell.EventResize:
				l.screen.Sync()
				l.renderer.DrawFrame(g)
			}
		case <-time.After(pollTimeout):
		}

		if l.clock.Since(lastGravity) >= l.controller.GravityDelay(g) {
			if l.controller.ApplyGravity(g) {
				l.renderer.MarkBoardDirty()
			}
			lastGravity = l.clock.Now()
			if g.Over {
				l.renderer.DrawFooter(footerMessage)
				return nil
			}
		}

		l.renderer.Render(g)
	}
}

// handleKey applies one key event and reports whether the loop should exit
func (l *Loop) handleKey(g *model.Game, ev *tcell.EventKey) bool {
	switch MapKey(ev) {
	case ActionQuit:
		return true
	case ActionMoveLeft:
		l.controller.MoveLeft(g)
	case ActionMoveRight:
		l.controller.MoveRight(g)
	case ActionSoftDrop:
		l.controller.SoftDrop(g)
	case ActionRotateCW:
		l.controller.RotateCW(g)
	case ActionRotateCCW:
		l.controller.RotateCCW(g)
	case ActionHardDrop:
		l.controller.HardDrop(g)
	}
	return false
}
