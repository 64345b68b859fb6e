package physics

import (
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
)

// ResolveSlimeBall applies the elastic slime-ball contact and the touch rules
// A contact registers only when the slime's touch debounce has expired: it
// consumes a touch, or with none left ends the rally against the ball's half
// Returns true if an impulse was applied
func ResolveSlimeBall(g *core.GameState, id core.SlimeID, ctx *core.TickContext) bool {
	s := g.Slimes[id]
	if _, ok := ElasticCollision3D(s.Body(), g.BallBody(), parameter.SlimeBallRestitution); !ok {
		return false
	}

	if s.TouchCooldown > 0 {
		ctx.Emit(core.EventContact, id, core.SideOf(s.Position.X))
		return true
	}
	s.TouchCooldown = parameter.TouchCooldownSeconds

	if s.TouchesRemaining > 0 {
		s.TouchesRemaining--
		ctx.Emit(core.EventTouch, id, core.SideOf(s.Position.X))
		return true
	}

	if !g.PointScored {
		g.PointScored = true
		g.ScoringSide = core.ScoringSideFor(g.BallPosition.X)
	}
	ctx.Emit(core.EventTouchLimit, id, g.ScoringSide)
	return true
}
