package engine

import (
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
	"github.com/lixenwraith/slime-arena/physics"
)

// tick runs the fixed per-tick pipeline; the order is part of the contract
//  1. clear scoring
//  2. per slime in id order: cooldowns, locomotion, integrate, constraints, ball contact
//  3. ball: integrate, net, side tracking, walls, floor
//  4. advance step counter
//
// Slime-slime contact is never checked
func (e *Engine) tick() {
	g := e.state
	ctx := &e.ctx
	dt := parameter.DT

	g.PointScored = false
	g.ScoringSide = core.SideNone

	for _, id := range core.SlimeIDs {
		s := g.Slimes[id]

		physics.DecayCooldowns(s, dt)

		act, ok := ctx.Actions[id]
		if ok {
			s.Target = act.Target
		}
		if physics.TryJump(s, ok && act.Jump, e.tuning) {
			ctx.Emit(core.EventJump, id, core.SideOf(s.Position.X))
		}
		physics.Steer(s, e.tuning, dt)

		prev := physics.Integrate(s.Body(), parameter.Gravity, dt)
		side := physics.SlimeNetSide(id, prev.X)
		physics.ConstrainSlime(s, side)

		if physics.ResolveSlimeBall(g, id, ctx) {
			// Positional correction may have pushed the slime into the floor or net
			physics.ConstrainSlime(s, side)
		}
	}

	prevBall := physics.Integrate(g.BallBody(), parameter.Gravity, dt)
	physics.ResolveBallNet(g, prevBall, ctx)
	physics.UpdateBallSide(g, ctx)
	physics.ResolveBallWalls(g, ctx)
	physics.ResolveBallFloor(g, ctx)

	g.Steps++
}
