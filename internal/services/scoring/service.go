package scoring

import "time"

// Base points for clearing n rows at once, before the level multiplier.
// Anything above four rows (not reachable with standard pieces, but the
// compaction allows it) pays the flat jackpot value.
var lineClearBase = map[int]uint64{
	1: 100,
	2: 300,
	3: 500,
	4: 800,
}

const lineClearJackpot = 1000

// Gravity curve: 800ms between drops at level 1, 45ms faster per level,
// clamped at level 16.
const (
	baseGravity     = 800 * time.Millisecond
	gravityStep     = 45 * time.Millisecond
	maxGravitySteps = 15
)

// Service computes points and difficulty progression. It is stateless; all
// counters live on the Game.
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// LineClearPoints returns the points awarded for clearing the given number of
// rows simultaneously at the given level
func (s *Service) LineClearPoints(cleared, level int) uint64 {
	if cleared <= 0 {
		return 0
	}
	base, ok := lineClearBase[cleared]
	if !ok {
		base = lineClearJackpot
	}
	return base * uint64(level)
}

// SoftDropPoints returns the points for manually dropping the given number of
// rows one at a time
func (s *Service) SoftDropPoints(rows int) uint64 {
	return uint64(rows)
}

// HardDropPoints returns the points for an instant drop spanning the given
// number of rows
func (s *Service) HardDropPoints(rows int) uint64 {
	return 2 * uint64(rows)
}

// ShouldLevelUp reports whether the cumulative line count has crossed the
// next ten-line threshold for the given level. Callers bump the level by one
// when this returns true; a clear that jumps several thresholds at once still
// only raises the level once per check.
func (s *Service) ShouldLevelUp(lines, level int) bool {
	return lines/10 >= level
}

// GravityDelay returns the pause between automatic drops at the given level:
// a linear ramp from 800ms at level 1 down to a 125ms floor at level 16+
func (s *Service) GravityDelay(level int) time.Duration {
	steps := level - 1
	if steps > maxGravitySteps {
		steps = maxGravitySteps
	}
	if steps < 0 {
		steps = 0
	}
	return baseGravity - time.Duration(steps)*gravityStep
}
