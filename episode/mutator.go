package episode

import (
	"math/rand"

	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
	"github.com/lixenwraith/slime-arena/vmath"
)

// Reset ranges; x ranges are for the right half and mirror for the left
const (
	slimeMinX     = 0.26
	slimeMaxX     = 6
	slimeMaxZ     = 3
	ballMinX      = 4
	ballMaxX      = 5
	ballMinY      = 2
	ballMaxY      = 4
	ballMaxZ      = 1
	ballMinVY     = -1
	ballMaxVY     = 3
	ballMaxVZ     = 2
	ballSideCoinP = 0.5
)

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// RandomReset re-seeds a state for a new rally
// Slimes are placed at rest on their own half with full touches, the ball
// starts high over a random half drifting across the court
func RandomReset(rng *rand.Rand, g *core.GameState) {
	g.Slimes = map[core.SlimeID]*core.Slime{
		core.SlimeRight: core.NewSlime(
			uniform(rng, slimeMinX, slimeMaxX),
			uniform(rng, -slimeMaxZ, slimeMaxZ),
		),
		core.SlimeLeft: core.NewSlime(
			uniform(rng, -slimeMaxX, -slimeMinX),
			uniform(rng, -slimeMaxZ, slimeMaxZ),
		),
	}

	x := uniform(rng, ballMinX, ballMaxX)
	if rng.Float32() < ballSideCoinP {
		x = -x
	}
	g.BallPosition = vmath.Vec3{
		X: x,
		Y: uniform(rng, ballMinY, ballMaxY),
		Z: uniform(rng, -ballMaxZ, ballMaxZ),
	}
	g.BallVelocity = vmath.Vec3{
		Y: uniform(rng, ballMinVY, ballMaxVY),
		Z: uniform(rng, -ballMaxVZ, ballMaxVZ),
	}

	g.PointScored = false
	g.ScoringSide = core.SideNone
	g.Steps = 0
	g.BallSide = core.SideOf(x)
}

// NewRandomState builds a freshly reset state at the given difficulty
func NewRandomState(rng *rand.Rand, difficulty int) *core.GameState {
	g := core.NewGameState()
	g.Difficulty = difficulty
	RandomReset(rng, g)
	return g
}

// homeX is the idle x position of a slime's half
func homeX(id core.SlimeID) float32 {
	if id == core.SlimeLeft {
		return -parameter.CourtHalfX / 2
	}
	return parameter.CourtHalfX / 2
}
