package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blockfall/termtris/internal/dependencies/clock"
	"github.com/blockfall/termtris/internal/dependencies/random"
	gamesvc "github.com/blockfall/termtris/internal/services/game"
	"github.com/blockfall/termtris/internal/services/scoring"
	"github.com/blockfall/termtris/internal/ui"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "termtris",
		Short: "Terminal falling-block puzzle game",
		Long: `termtris is a falling-block puzzle game that runs in the terminal.

Controls:
  left/a      move left          right/d     move right
  down/s      soft drop          space       hard drop
  up/w/k      rotate clockwise   j           rotate counter-clockwise
  q/esc       quit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame()
		},
	}
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runGame wires the session together and plays it to completion. The screen
// teardown is deferred so the terminal is restored even when the loop fails
// or panics.
func runGame() error {
	logger := newLogger()

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	controller := gamesvc.NewController(scoring.New(), random.New(), logger)
	game := controller.NewGame()

	loop := ui.NewLoop(screen, controller, clock.New(), logger)
	return loop.Run(game)
}
