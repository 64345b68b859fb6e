package core

import (
	"github.com/lixenwraith/slime-arena/parameter"
	"github.com/lixenwraith/slime-arena/vmath"
)

// SlimeID identifies one of the two agents
type SlimeID int

const (
	SlimeRight SlimeID = 0 // conventionally plays x > 0
	SlimeLeft  SlimeID = 1 // conventionally plays x < 0
)

// SlimeIDs is the fixed per-tick processing order
var SlimeIDs = [2]SlimeID{SlimeRight, SlimeLeft}

// Other returns the opponent id
func (id SlimeID) Other() SlimeID {
	if id == SlimeRight {
		return SlimeLeft
	}
	return SlimeRight
}

// HomeSide is the half a slime conventionally plays
func (id SlimeID) HomeSide() Side {
	if id == SlimeRight {
		return SideRight
	}
	return SideLeft
}

// Side is a half of the court, split by the net plane
type Side int8

const (
	SideNone  Side = 0
	SideLeft  Side = -1 // x < 0
	SideRight Side = 1  // x > 0
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Opposite returns the other half, SideNone stays SideNone
func (s Side) Opposite() Side {
	return -s
}

// SideOf classifies an x coordinate, exactly on the plane is SideNone
func SideOf(x float32) Side {
	switch {
	case x < parameter.NetPlaneX:
		return SideLeft
	case x > parameter.NetPlaneX:
		return SideRight
	}
	return SideNone
}

// ScoringSideFor returns the side credited when a rally ends with the ball at x
// The half the ball is on loses
func ScoringSideFor(x float32) Side {
	if x < parameter.NetPlaneX {
		return SideRight
	}
	return SideLeft
}

// Slime is one spherical agent
type Slime struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
	// Target is the last commanded destination
	Target           vmath.Vec3
	TouchesRemaining int
	JumpCooldown     float32
	TouchCooldown    float32
}

// NewSlime places a slime at rest on the floor with a full touch budget
func NewSlime(x, z float32) *Slime {
	pos := vmath.Vec3{X: x, Y: parameter.SlimeRestHeight, Z: z}
	return &Slime{
		Position:         pos,
		Target:           pos,
		TouchesRemaining: parameter.MaxTouches,
	}
}

// Grounded reports whether the slime rests on the floor
func (s *Slime) Grounded() bool {
	return s.Position.Y <= parameter.SlimeRestHeight+parameter.GroundTolerance
}

// Body exposes the slime to the collision resolver
func (s *Slime) Body() Body {
	return Body{Pos: &s.Position, Vel: &s.Velocity, Mass: parameter.SlimeMass, Radius: parameter.SlimeRadius}
}

// GameState is one snapshot of a rally
// The engine mutates it in place every tick
type GameState struct {
	Slimes       map[SlimeID]*Slime
	BallPosition vmath.Vec3
	BallVelocity vmath.Vec3

	// PointScored is true only during the tick a rally ends
	PointScored bool
	// ScoringSide is valid iff PointScored
	ScoringSide Side

	Steps int

	// Difficulty selects movement tuning, see parameter.TuningForLevel
	Difficulty int
	// BallSide is the half the ball was last fully outside the net footprint on
	BallSide Side
}

// NewGameState builds a neutral state: slimes mid-half, ball above the right slime
func NewGameState() *GameState {
	return &GameState{
		Slimes: map[SlimeID]*Slime{
			SlimeRight: NewSlime(parameter.CourtHalfX/2, 0),
			SlimeLeft:  NewSlime(-parameter.CourtHalfX/2, 0),
		},
		BallPosition: vmath.Vec3{X: parameter.CourtHalfX / 2, Y: 3},
	}
}

// BallBody exposes the ball to the collision resolver
func (g *GameState) BallBody() Body {
	return Body{Pos: &g.BallPosition, Vel: &g.BallVelocity, Mass: parameter.BallMass, Radius: parameter.BallRadius}
}

// Clone deep-copies the state
func (g *GameState) Clone() *GameState {
	c := *g
	c.Slimes = make(map[SlimeID]*Slime, len(g.Slimes))
	for id, s := range g.Slimes {
		cp := *s
		c.Slimes[id] = &cp
	}
	return &c
}

// Mirror reflects the state across the net plane and swaps slime identities
func (g *GameState) Mirror() *GameState {
	m := g.Clone()
	for id, s := range g.Slimes {
		cp := *s
		cp.Position = vmath.V3MirrorX(s.Position)
		cp.Velocity = vmath.V3MirrorX(s.Velocity)
		cp.Target = vmath.V3MirrorX(s.Target)
		m.Slimes[id.Other()] = &cp
	}
	m.BallPosition = vmath.V3MirrorX(g.BallPosition)
	m.BallVelocity = vmath.V3MirrorX(g.BallVelocity)
	m.ScoringSide = g.ScoringSide.Opposite()
	m.BallSide = g.BallSide.Opposite()
	return m
}

// Validate checks the structural invariants an externally built state must hold
func (g *GameState) Validate() error {
	if len(g.Slimes) != len(SlimeIDs) {
		return errInvalid("expected %d slimes, got %d", len(SlimeIDs), len(g.Slimes))
	}
	for _, id := range SlimeIDs {
		s, ok := g.Slimes[id]
		if !ok || s == nil {
			return errInvalid("missing slime %d", id)
		}
		if s.TouchesRemaining < 0 {
			return errInvalid("slime %d has negative touches", id)
		}
		if s.JumpCooldown < 0 || s.TouchCooldown < 0 {
			return errInvalid("slime %d has negative cooldown", id)
		}
		if !vmath.V3IsFinite(s.Position) || !vmath.V3IsFinite(s.Velocity) || !vmath.V3IsFinite(s.Target) {
			return errInvalid("slime %d has non-finite vector", id)
		}
	}
	if !vmath.V3IsFinite(g.BallPosition) || !vmath.V3IsFinite(g.BallVelocity) {
		return errInvalid("ball has non-finite vector")
	}
	if g.PointScored != (g.ScoringSide != SideNone) {
		return errInvalid("scoring side %s inconsistent with point scored %v", g.ScoringSide, g.PointScored)
	}
	return nil
}
