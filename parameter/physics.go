package parameter

import "github.com/lixenwraith/slime-arena/vmath"

// Simulation rate, all tuning below is defined relative to it
const (
	TickRate = 60
	DT       = float32(1.0 / 60.0)
)

// Gravity is applied to slimes and ball alike
var Gravity = vmath.Vec3{Y: -17}

// Slime body
const (
	SlimeRadius = float32(0.75)
	SlimeMass   = float32(1)
	// SlimeRestHeight is the centre height of a slime sitting on the floor
	SlimeRestHeight = float32(-0.045)
	// GroundTolerance widens the grounded test for jump eligibility
	GroundTolerance = float32(0.01)

	JumpCooldownSeconds  = float32(0.1)
	TouchCooldownSeconds = float32(0.25)
	StoppingDistance     = float32(0.01)
	MaxTouches           = 3
)

// Ball body
const (
	BallRadius      = float32(0.3)
	BallMass        = float32(0.25)
	BallRestitution = float32(0.6)
	// SlimeBallRestitution is fully elastic, slime contacts return the ball lively
	SlimeBallRestitution = float32(1)
	// BallFloorHeight is the centre height at which the ball counts as grounded
	BallFloorHeight = BallRadius
)

// Court geometry, x is the net axis
const (
	CourtHalfX    = float32(6.8)
	CourtHalfZ    = float32(3.5)
	CeilingHeight = float32(14.49)

	NetPlaneX        = float32(0)
	NetHalfThickness = float32(0.1)
	NetHeight        = float32(0.95)
	// SlimeBlockerHeight is the height below which slimes cannot cross the net plane
	SlimeBlockerHeight = float32(30)
)
