package physics

import (
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
	"github.com/lixenwraith/slime-arena/vmath"
)

// --- Slime ---

// ClampSlimeFloor keeps the slime centre at or above the floor-rest height
// Only downward velocity is cancelled
func ClampSlimeFloor(s *core.Slime) bool {
	if s.Position.Y >= parameter.SlimeRestHeight {
		return false
	}
	s.Position.Y = parameter.SlimeRestHeight
	if s.Velocity.Y < 0 {
		s.Velocity.Y = 0
	}
	return true
}

// SlimeNetSide is the half the net blocker holds a slime on
// A slime exactly on the plane is held on its home half
func SlimeNetSide(id core.SlimeID, prevX float32) core.Side {
	if side := core.SideOf(prevX); side != core.SideNone {
		return side
	}
	return id.HomeSide()
}

// ClampSlimeNet stops a slime below blocker height from crossing the net plane
// side is the half the slime started the tick on; SideNone disables the check
func ClampSlimeNet(s *core.Slime, side core.Side) bool {
	if s.Position.Y >= parameter.SlimeBlockerHeight {
		return false
	}
	limit := parameter.NetHalfThickness + parameter.SlimeRadius
	switch side {
	case core.SideLeft:
		if s.Position.X > parameter.NetPlaneX-limit {
			s.Position.X = parameter.NetPlaneX - limit
			s.Velocity.X = 0
			return true
		}
	case core.SideRight:
		if s.Position.X < parameter.NetPlaneX+limit {
			s.Position.X = parameter.NetPlaneX + limit
			s.Velocity.X = 0
			return true
		}
	}
	return false
}

// ClampSlimeCourt keeps the slime body inside the court walls
func ClampSlimeCourt(s *core.Slime) bool {
	hx := parameter.CourtHalfX - parameter.SlimeRadius
	hz := parameter.CourtHalfZ - parameter.SlimeRadius
	cx := StopAxis(&s.Position.X, &s.Velocity.X, -hx, hx)
	cz := StopAxis(&s.Position.Z, &s.Velocity.Z, -hz, hz)
	return cx || cz
}

// ConstrainSlime applies floor, net and wall constraints in that order
func ConstrainSlime(s *core.Slime, side core.Side) {
	ClampSlimeFloor(s)
	ClampSlimeNet(s, side)
	ClampSlimeCourt(s)
}

// --- Ball ---

// netSide resolves which half the ball approaches the net from
// Exactly on the plane falls back to the direction of travel
func netSide(prevX, velX, x float32) core.Side {
	if side := core.SideOf(prevX); side != core.SideNone {
		return side
	}
	switch {
	case velX > 0:
		return core.SideLeft
	case velX < 0:
		return core.SideRight
	}
	if side := core.SideOf(x); side != core.SideNone {
		return side
	}
	return core.SideLeft
}

// ResolveBallNet bounces the ball off the net face or top edge, whichever is nearer
// Corner contact is approximated by the nearest-face choice
// A ball whose centre crossed the plane within one tick from beside the net
// (prev below the top edge) is treated as a face hit from its origin side
func ResolveBallNet(g *core.GameState, prev vmath.Vec3, ctx *core.TickContext) bool {
	pos := &g.BallPosition
	vel := &g.BallVelocity

	top := parameter.NetHeight + parameter.BallRadius
	if pos.Y >= top {
		return false
	}

	reach := parameter.BallRadius + parameter.NetHalfThickness
	offset := pos.X - parameter.NetPlaneX
	side := netSide(prev.X, vel.X, pos.X)
	now := core.SideOf(pos.X)
	crossed := prev.Y < top && now != core.SideNone && now != side

	if !crossed && vmath.Abs(offset) >= reach {
		return false
	}

	faceDepth := reach - vmath.Abs(offset)
	topDepth := top - pos.Y

	if !crossed && topDepth < faceDepth {
		pos.Y = top
		if vel.Y < 0 {
			vel.Y = -vel.Y * parameter.BallRestitution
		}
	} else {
		dir := float32(side)
		pos.X = parameter.NetPlaneX + dir*reach
		if vel.X*dir < 0 {
			vel.X = -vel.X * parameter.BallRestitution
		}
	}
	ctx.Emit(core.EventNet, 0, side)
	return true
}

// UpdateBallSide tracks which half the ball is on once it clears the net footprint
// Crossing to the other half refreshes both slimes' touches
func UpdateBallSide(g *core.GameState, ctx *core.TickContext) bool {
	reach := parameter.BallRadius + parameter.NetHalfThickness
	if vmath.Abs(g.BallPosition.X-parameter.NetPlaneX) < reach {
		return false
	}
	side := core.SideOf(g.BallPosition.X)
	if side == g.BallSide {
		return false
	}
	previous := g.BallSide
	g.BallSide = side
	if previous == core.SideNone {
		return false
	}
	for _, id := range core.SlimeIDs {
		g.Slimes[id].TouchesRemaining = parameter.MaxTouches
	}
	ctx.Emit(core.EventSideChange, 0, side)
	return true
}

// ResolveBallWalls reflects the ball off each horizontal wall and the ceiling independently
func ResolveBallWalls(g *core.GameState, ctx *core.TickContext) bool {
	r := parameter.BallRadius
	hx := parameter.CourtHalfX - r
	hz := parameter.CourtHalfZ - r
	hit := false
	if ReflectAxis(&g.BallPosition.X, &g.BallVelocity.X, -hx, hx, parameter.BallRestitution) {
		hit = true
	}
	if ReflectAxis(&g.BallPosition.Z, &g.BallVelocity.Z, -hz, hz, parameter.BallRestitution) {
		hit = true
	}
	if g.BallPosition.Y > parameter.CeilingHeight-r {
		g.BallPosition.Y = parameter.CeilingHeight - r
		if g.BallVelocity.Y > 0 {
			g.BallVelocity.Y = -g.BallVelocity.Y * parameter.BallRestitution
		}
		hit = true
	}
	if hit {
		ctx.Emit(core.EventWall, 0, core.SideOf(g.BallPosition.X))
	}
	return hit
}

// ResolveBallFloor ends the rally when the ball reaches the floor
// The point is credited to the half opposite the ball
func ResolveBallFloor(g *core.GameState, ctx *core.TickContext) bool {
	if g.BallPosition.Y > parameter.BallFloorHeight {
		return false
	}
	g.BallPosition.Y = parameter.BallFloorHeight
	if !g.PointScored {
		g.PointScored = true
		g.ScoringSide = core.ScoringSideFor(g.BallPosition.X)
		ctx.Emit(core.EventFloor, 0, g.ScoringSide)
	}
	return true
}
