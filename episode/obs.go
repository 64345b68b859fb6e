package episode

import (
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
)

// ObservationSize is ball (6) + self (8) + other (8)
const ObservationSize = 22

// Observer builds flat per-slime observations
// Slimes that started on the positive half see the court mirrored
type Observer struct {
	invert map[core.SlimeID]bool
}

// NewObserver fixes each slime's frame from the episode's initial state
func NewObserver(initial *core.GameState) *Observer {
	o := &Observer{invert: make(map[core.SlimeID]bool, len(initial.Slimes))}
	for id, s := range initial.Slimes {
		o.invert[id] = s.Position.X > 0
	}
	return o
}

// Observe returns the observation vector for one slime
func (o *Observer) Observe(id core.SlimeID, g *core.GameState) []float32 {
	invert := o.invert[id]
	sign := float32(1)
	if invert {
		sign = -1
	}

	obs := make([]float32, 0, ObservationSize)
	obs = append(obs,
		sign*g.BallPosition.X, g.BallPosition.Y, sign*g.BallPosition.Z,
		sign*g.BallVelocity.X, g.BallVelocity.Y, sign*g.BallVelocity.Z,
	)
	obs = appendSlime(obs, g.Slimes[id], sign)
	for _, other := range core.SlimeIDs {
		if other != id {
			obs = appendSlime(obs, g.Slimes[other], sign)
		}
	}
	return obs
}

// ObserveAll builds observations for every slime
func (o *Observer) ObserveAll(g *core.GameState) map[core.SlimeID][]float32 {
	out := make(map[core.SlimeID][]float32, len(core.SlimeIDs))
	for _, id := range core.SlimeIDs {
		out[id] = o.Observe(id, g)
	}
	return out
}

func appendSlime(obs []float32, s *core.Slime, sign float32) []float32 {
	canJump := float32(0)
	if s.Grounded() && s.JumpCooldown <= 0 {
		canJump = 1
	}
	return append(obs,
		sign*s.Position.X, sign*s.Position.Z,
		sign*s.Velocity.X, sign*s.Velocity.Z,
		s.Velocity.Y, s.Position.Y,
		float32(s.TouchesRemaining)/parameter.MaxTouches,
		canJump,
	)
}
