package episode

import (
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
	"github.com/lixenwraith/slime-arena/vmath"
)

// Rewards maps each slime to its reward for one step
type Rewards map[core.SlimeID]float32

// RewardFunc scores a state after a step
type RewardFunc interface {
	Rewards(g *core.GameState) Rewards
}

// PointReward gives +1 to the slime on the scoring half and -1 to the other
type PointReward struct{}

func (PointReward) Rewards(g *core.GameState) Rewards {
	r := make(Rewards, len(core.SlimeIDs))
	for _, id := range core.SlimeIDs {
		if !g.PointScored {
			r[id] = 0
			continue
		}
		if core.SideOf(g.Slimes[id].Position.X) == g.ScoringSide {
			r[id] = 1
		} else {
			r[id] = -1
		}
	}
	return r
}

// TouchesReward favors conserving touches, -1 once they are spent
type TouchesReward struct{}

func (TouchesReward) Rewards(g *core.GameState) Rewards {
	r := make(Rewards, len(core.SlimeIDs))
	for _, id := range core.SlimeIDs {
		touches := g.Slimes[id].TouchesRemaining
		if touches <= 0 {
			r[id] = -1
			continue
		}
		r[id] = float32(touches) / parameter.MaxTouches
	}
	return r
}

// BallDistanceReward penalizes distance to the ball, scaled by 1/10
type BallDistanceReward struct{}

func (BallDistanceReward) Rewards(g *core.GameState) Rewards {
	r := make(Rewards, len(core.SlimeIDs))
	for _, id := range core.SlimeIDs {
		d := vmath.V3Mag(vmath.V3Sub(g.Slimes[id].Position, g.BallPosition))
		r[id] = -d / 10
	}
	return r
}

// Weighted pairs a reward with its weight in a CombinedReward
type Weighted struct {
	Fn     RewardFunc
	Weight float32
}

// CombinedReward sums weighted rewards
type CombinedReward []Weighted

func (c CombinedReward) Rewards(g *core.GameState) Rewards {
	r := make(Rewards, len(core.SlimeIDs))
	for _, w := range c {
		for id, v := range w.Fn.Rewards(g) {
			r[id] += w.Weight * v
		}
	}
	return r
}

// DefaultReward weights scoring well above touch farming
func DefaultReward() CombinedReward {
	return CombinedReward{
		{Fn: PointReward{}, Weight: 50},
		{Fn: TouchesReward{}, Weight: 0.2},
		{Fn: BallDistanceReward{}, Weight: 1},
	}
}
