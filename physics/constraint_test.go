package physics

import (
	"testing"

	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
	"github.com/lixenwraith/slime-arena/vmath"
)

func TestReflectAxis(t *testing.T) {
	tests := []struct {
		name        string
		pos, vel    float32
		wantPos     float32
		wantVel     float32
		wantClamped bool
	}{
		{"inside", 0.5, 3, 0.5, 3, false},
		{"past high outward", 1.2, 2, 1, -1, true},
		{"past low outward", -1.5, -4, -1, 2, true},
		{"past high already returning", 1.2, -2, 1, -2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.pos, tt.vel
			got := ReflectAxis(&pos, &vel, -1, 1, 0.5)
			if got != tt.wantClamped || pos != tt.wantPos || vel != tt.wantVel {
				t.Fatalf("got (%v, %v, %v), want (%v, %v, %v)", pos, vel, got, tt.wantPos, tt.wantVel, tt.wantClamped)
			}
		})
	}
}

func TestStopAxisZeroesOnlyOutwardVelocity(t *testing.T) {
	pos, vel := float32(2), float32(1)
	if !StopAxis(&pos, &vel, -1, 1) || pos != 1 || vel != 0 {
		t.Fatalf("outward: pos=%v vel=%v", pos, vel)
	}
	pos, vel = 2, -1
	StopAxis(&pos, &vel, -1, 1)
	if pos != 1 || vel != -1 {
		t.Fatalf("inward: pos=%v vel=%v", pos, vel)
	}
}

func TestIntegrateIsSemiImplicit(t *testing.T) {
	pos := vmath.Vec3{Y: 1}
	vel := vmath.Vec3{X: 1}
	prev := Integrate(core.Body{Pos: &pos, Vel: &vel}, vmath.Vec3{Y: -10}, 0.5)

	if prev != (vmath.Vec3{Y: 1}) {
		t.Fatalf("prev %v", prev)
	}
	if vel != (vmath.Vec3{X: 1, Y: -5}) {
		t.Fatalf("vel %v", vel)
	}
	// position uses the updated velocity
	if pos != (vmath.Vec3{X: 0.5, Y: -1.5}) {
		t.Fatalf("pos %v", pos)
	}
}

func TestClampSlimeFloor(t *testing.T) {
	s := core.NewSlime(1, 0)
	s.Position.Y = -1
	s.Velocity.Y = -4
	if !ClampSlimeFloor(s) || s.Position.Y != parameter.SlimeRestHeight || s.Velocity.Y != 0 {
		t.Fatalf("sinking slime: %+v", s)
	}

	s.Position.Y = -1
	s.Velocity.Y = 2
	ClampSlimeFloor(s)
	if s.Position.Y != parameter.SlimeRestHeight || s.Velocity.Y != 2 {
		t.Fatalf("rising slime below floor: %+v", s)
	}
}

func TestClampSlimeNet(t *testing.T) {
	limit := parameter.NetHalfThickness + parameter.SlimeRadius

	s := core.NewSlime(-0.2, 0)
	s.Velocity.X = 3
	if !ClampSlimeNet(s, core.SideLeft) || s.Position.X != -limit || s.Velocity.X != 0 {
		t.Fatalf("left slime: %+v", s)
	}

	s = core.NewSlime(0.3, 0)
	if !ClampSlimeNet(s, core.SideRight) || s.Position.X != limit {
		t.Fatalf("right slime: %+v", s)
	}

	s = core.NewSlime(0.3, 0)
	if ClampSlimeNet(s, core.SideNone) {
		t.Fatal("SideNone must not clamp")
	}

	s = core.NewSlime(-0.2, 0)
	s.Position.Y = parameter.SlimeBlockerHeight + 1
	if ClampSlimeNet(s, core.SideLeft) {
		t.Fatal("slime above blocker height clamped")
	}
}

func TestClampSlimeCourt(t *testing.T) {
	s := core.NewSlime(10, -10)
	s.Velocity = vmath.Vec3{X: 2, Z: -2}
	ClampSlimeCourt(s)
	if s.Position.X != parameter.CourtHalfX-parameter.SlimeRadius || s.Position.Z != -(parameter.CourtHalfZ-parameter.SlimeRadius) {
		t.Fatalf("position %v", s.Position)
	}
	if s.Velocity.X != 0 || s.Velocity.Z != 0 {
		t.Fatalf("velocity %v", s.Velocity)
	}
}

func TestResolveBallNetIgnoresBallAboveNet(t *testing.T) {
	g := core.NewGameState()
	g.BallPosition = vmath.Vec3{X: 0, Y: parameter.NetHeight + parameter.BallRadius + 0.1}
	g.BallVelocity = vmath.Vec3{X: 2}
	var ctx core.TickContext
	if ResolveBallNet(g, vmath.Vec3{X: -0.01, Y: g.BallPosition.Y}, &ctx) {
		t.Fatal("ball above net resolved")
	}
	if len(ctx.Events) != 0 {
		t.Fatalf("events %+v", ctx.Events)
	}
}

func TestResolveBallNetFaceFromEitherSide(t *testing.T) {
	reach := parameter.BallRadius + parameter.NetHalfThickness
	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		dir := float32(side)
		g := core.NewGameState()
		g.BallPosition = vmath.Vec3{X: dir * (reach - 0.05), Y: 0.4}
		g.BallVelocity = vmath.Vec3{X: -dir * 2}
		var ctx core.TickContext

		if !ResolveBallNet(g, vmath.Vec3{X: dir * reach, Y: 0.4}, &ctx) {
			t.Fatalf("%s: no contact", side)
		}
		if g.BallPosition.X != dir*reach {
			t.Fatalf("%s: x=%v", side, g.BallPosition.X)
		}
		if want := dir * 2 * parameter.BallRestitution; vmath.Abs(g.BallVelocity.X-want) > 1e-6 {
			t.Fatalf("%s: vx=%v want %v", side, g.BallVelocity.X, want)
		}
		if len(ctx.Events) != 1 || ctx.Events[0].Kind != core.EventNet || ctx.Events[0].Side != side {
			t.Fatalf("%s: events %+v", side, ctx.Events)
		}
	}
}

func TestResolveBallNetCrossingFromAboveTakesTop(t *testing.T) {
	top := parameter.NetHeight + parameter.BallRadius
	g := core.NewGameState()
	g.BallPosition = vmath.Vec3{X: 0.05, Y: top - 0.002}
	g.BallVelocity = vmath.Vec3{X: 6, Y: -1.2}
	var ctx core.TickContext

	if !ResolveBallNet(g, vmath.Vec3{X: -0.05, Y: top + 0.02}, &ctx) {
		t.Fatal("no contact")
	}
	if g.BallPosition.X != 0.05 || g.BallPosition.Y != top {
		t.Fatalf("ball moved off the top edge: %v", g.BallPosition)
	}
	if g.BallVelocity.X != 6 || g.BallVelocity.Y <= 0 {
		t.Fatalf("velocity %v, want vx kept and vy reflected up", g.BallVelocity)
	}
}

func TestResolveBallNetCrossingFromBesideTakesFace(t *testing.T) {
	reach := parameter.BallRadius + parameter.NetHalfThickness
	g := core.NewGameState()
	g.BallPosition = vmath.Vec3{X: 0.5, Y: 0.6}
	g.BallVelocity = vmath.Vec3{X: 60}
	var ctx core.TickContext

	if !ResolveBallNet(g, vmath.Vec3{X: -0.5, Y: 0.6}, &ctx) {
		t.Fatal("no contact")
	}
	if g.BallPosition.X != -reach || g.BallVelocity.X >= 0 {
		t.Fatalf("ball not returned to its face: pos %v vel %v", g.BallPosition, g.BallVelocity)
	}
}

func TestSlimeNetSide(t *testing.T) {
	tests := []struct {
		id    core.SlimeID
		prevX float32
		want  core.Side
	}{
		{core.SlimeRight, 1, core.SideRight},
		{core.SlimeRight, -1, core.SideLeft},
		{core.SlimeLeft, 2, core.SideRight},
		{core.SlimeRight, 0, core.SideRight},
		{core.SlimeLeft, 0, core.SideLeft},
	}
	for _, tt := range tests {
		if got := SlimeNetSide(tt.id, tt.prevX); got != tt.want {
			t.Errorf("SlimeNetSide(%d, %v) = %s, want %s", tt.id, tt.prevX, got, tt.want)
		}
	}
}

func TestUpdateBallSide(t *testing.T) {
	g := core.NewGameState()
	g.BallSide = core.SideNone
	for _, id := range core.SlimeIDs {
		g.Slimes[id].TouchesRemaining = 1
	}
	var ctx core.TickContext

	g.BallPosition = vmath.Vec3{X: 2, Y: 3}
	if UpdateBallSide(g, &ctx) || g.BallSide != core.SideRight {
		t.Fatalf("first side: %s", g.BallSide)
	}
	if g.Slimes[core.SlimeLeft].TouchesRemaining != 1 {
		t.Fatal("first determination refreshed touches")
	}

	// inside the footprint: undecided
	g.BallPosition.X = -0.1
	if UpdateBallSide(g, &ctx) || g.BallSide != core.SideRight {
		t.Fatalf("footprint changed side to %s", g.BallSide)
	}

	g.BallPosition.X = -2
	if !UpdateBallSide(g, &ctx) || g.BallSide != core.SideLeft {
		t.Fatalf("crossing not detected: %s", g.BallSide)
	}
	for _, id := range core.SlimeIDs {
		if g.Slimes[id].TouchesRemaining != parameter.MaxTouches {
			t.Fatalf("slime %d touches %d", id, g.Slimes[id].TouchesRemaining)
		}
	}
	if len(ctx.Events) != 1 || ctx.Events[0].Kind != core.EventSideChange {
		t.Fatalf("events %+v", ctx.Events)
	}
}

func TestResolveBallFloorScoresOnce(t *testing.T) {
	g := core.NewGameState()
	g.BallPosition = vmath.Vec3{X: 2, Y: 0.1}
	var ctx core.TickContext

	if !ResolveBallFloor(g, &ctx) || !g.PointScored || g.ScoringSide != core.SideLeft {
		t.Fatalf("scored=%v side=%s", g.PointScored, g.ScoringSide)
	}
	if g.BallPosition.Y != parameter.BallFloorHeight {
		t.Fatalf("ball y %v", g.BallPosition.Y)
	}

	// an earlier touch-limit score in the same tick wins
	g = core.NewGameState()
	g.BallPosition = vmath.Vec3{X: 2, Y: 0.1}
	g.PointScored, g.ScoringSide = true, core.SideRight
	ctx.Reset()
	ResolveBallFloor(g, &ctx)
	if g.ScoringSide != core.SideRight || len(ctx.Events) != 0 {
		t.Fatalf("side=%s events=%+v", g.ScoringSide, ctx.Events)
	}
}

func TestResolveSlimeBallTouchRules(t *testing.T) {
	setup := func(touches int, cooldown float32) (*core.GameState, *core.Slime) {
		g := core.NewGameState()
		s := g.Slimes[core.SlimeRight]
		s.TouchesRemaining = touches
		s.TouchCooldown = cooldown
		g.BallPosition = vmath.V3Add(s.Position, vmath.Vec3{Y: parameter.SlimeRadius + parameter.BallRadius - 0.05})
		g.BallVelocity = vmath.Vec3{Y: -4}
		return g, s
	}

	t.Run("touch", func(t *testing.T) {
		g, s := setup(2, 0)
		var ctx core.TickContext
		if !ResolveSlimeBall(g, core.SlimeRight, &ctx) {
			t.Fatal("no contact")
		}
		if s.TouchesRemaining != 1 || s.TouchCooldown != parameter.TouchCooldownSeconds {
			t.Fatalf("touches=%d cooldown=%v", s.TouchesRemaining, s.TouchCooldown)
		}
		if g.BallVelocity.Y <= 0 {
			t.Fatalf("ball vy %v", g.BallVelocity.Y)
		}
	})

	t.Run("debounced", func(t *testing.T) {
		g, s := setup(2, 0.1)
		var ctx core.TickContext
		ResolveSlimeBall(g, core.SlimeRight, &ctx)
		if s.TouchesRemaining != 2 || s.TouchCooldown != 0.1 {
			t.Fatalf("touches=%d cooldown=%v", s.TouchesRemaining, s.TouchCooldown)
		}
		if len(ctx.Events) != 1 || ctx.Events[0].Kind != core.EventContact {
			t.Fatalf("events %+v", ctx.Events)
		}
	})

	t.Run("limit", func(t *testing.T) {
		g, s := setup(0, 0)
		var ctx core.TickContext
		ResolveSlimeBall(g, core.SlimeRight, &ctx)
		if s.TouchesRemaining != 0 || !g.PointScored {
			t.Fatalf("touches=%d scored=%v", s.TouchesRemaining, g.PointScored)
		}
		if g.ScoringSide != core.ScoringSideFor(g.BallPosition.X) {
			t.Fatalf("side %s", g.ScoringSide)
		}
	})
}
