package episode

import "github.com/lixenwraith/slime-arena/core"

// Condition decides whether an episode is over
type Condition interface {
	Done(g *core.GameState) bool
}

// Terminal ends the episode on a point or when any slime has no touches left
type Terminal struct{}

func (Terminal) Done(g *core.GameState) bool {
	if g.PointScored {
		return true
	}
	for _, id := range core.SlimeIDs {
		if g.Slimes[id].TouchesRemaining <= 0 {
			return true
		}
	}
	return false
}

// Truncated cuts the episode once the tick counter reaches MaxSteps
type Truncated struct {
	MaxSteps int
}

func (t Truncated) Done(g *core.GameState) bool {
	return g.Steps >= t.MaxSteps
}
