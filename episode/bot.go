package episode

import (
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
	"github.com/lixenwraith/slime-arena/vmath"
)

// Policy chooses a world-frame action for one slime
type Policy interface {
	Act(id core.SlimeID, g *core.GameState) core.Action
}

// PolicyFunc adapts a function to Policy
type PolicyFunc func(id core.SlimeID, g *core.GameState) core.Action

func (f PolicyFunc) Act(id core.SlimeID, g *core.GameState) core.Action {
	return f(id, g)
}

// Idle holds the slime where it is
var Idle = PolicyFunc(func(id core.SlimeID, g *core.GameState) core.Action {
	return core.Action{Target: g.Slimes[id].Position}
})

// ChaseBot steers under the ball's predicted landing point on its own half
// and jumps when the ball drops into reach overhead
type ChaseBot struct {
	// Setback keeps the bot slightly behind the ball so contacts push it netward
	Setback float32
	// JumpRange is the horizontal ball distance that triggers a jump
	JumpRange float32
	// JumpHeight is the ball height below which the bot jumps
	JumpHeight float32
}

// NewChaseBot returns a bot with stock tuning
func NewChaseBot() *ChaseBot {
	return &ChaseBot{Setback: 0.25, JumpRange: 0.9, JumpHeight: 2.2}
}

// contactHeight is the ball centre height when it meets a resting slime's crown
const contactHeight = parameter.SlimeRestHeight + parameter.SlimeRadius + parameter.BallRadius

// PredictLanding returns where the ball centre falls through height h, ignoring walls and net
func PredictLanding(pos, vel vmath.Vec3, h float32) vmath.Vec3 {
	g := -parameter.Gravity.Y
	dy := pos.Y - h
	disc := vel.Y*vel.Y + 2*g*dy
	if disc < 0 || g <= 0 {
		return vmath.Vec3{X: pos.X, Y: h, Z: pos.Z}
	}
	t := (vel.Y + vmath.Sqrt(disc)) / g
	if t < 0 {
		t = 0
	}
	return vmath.Vec3{X: pos.X + vel.X*t, Y: h, Z: pos.Z + vel.Z*t}
}

func (b *ChaseBot) Act(id core.SlimeID, g *core.GameState) core.Action {
	s := g.Slimes[id]
	side := core.SideRight
	if id == core.SlimeLeft {
		side = core.SideLeft
	}
	dir := float32(side)

	land := PredictLanding(g.BallPosition, g.BallVelocity, contactHeight)
	if core.SideOf(land.X) != side {
		return core.Action{Target: vmath.Vec3{X: homeX(id)}}
	}

	minX := parameter.NetHalfThickness + parameter.SlimeRadius
	maxX := parameter.CourtHalfX - parameter.SlimeRadius
	maxZ := parameter.CourtHalfZ - parameter.SlimeRadius
	target := vmath.Vec3{
		X: dir * vmath.Clamp(dir*land.X+b.Setback, minX, maxX),
		Z: vmath.Clamp(land.Z, -maxZ, maxZ),
	}

	horiz := vmath.V3Mag(vmath.V3Horizontal(vmath.V3Sub(g.BallPosition, s.Position)))
	jump := horiz < b.JumpRange && g.BallPosition.Y < b.JumpHeight && g.BallVelocity.Y < 0
	return core.Action{Target: target, Jump: jump}
}

// VectorPolicy drives a slime from a flat observation-to-action function,
// as an external learner would
type VectorPolicy struct {
	Observer *Observer
	Fn       func(obs []float32) [4]float32
}

func (p *VectorPolicy) Act(id core.SlimeID, g *core.GameState) core.Action {
	return parseAction(id, p.Fn(p.Observer.Observe(id, g)), g)
}
