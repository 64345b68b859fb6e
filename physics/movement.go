package physics

import (
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
	"github.com/lixenwraith/slime-arena/vmath"
)

// DecayCooldowns counts both slime cooldowns down by dt, never below zero
func DecayCooldowns(s *core.Slime, dt float32) {
	s.JumpCooldown = vmath.Max(0, s.JumpCooldown-dt)
	s.TouchCooldown = vmath.Max(0, s.TouchCooldown-dt)
}

// TryJump applies the jump impulse when requested, grounded and off cooldown
// Returns true if the slime jumped
func TryJump(s *core.Slime, requested bool, t parameter.Tuning) bool {
	if !requested || !s.Grounded() || s.JumpCooldown > 0 {
		return false
	}
	s.Velocity.Y = t.JumpForce
	s.JumpCooldown = parameter.JumpCooldownSeconds
	return true
}

// BrakingSpeed returns the speed cap that lets a body decelerating at accel stop at the target
// dist is the remaining horizontal distance, speed the current horizontal speed
func BrakingSpeed(dist, speed, maxSpeed, accel float32) float32 {
	brakeDist := speed*speed/(2*accel) + parameter.StoppingDistance
	if dist > brakeDist {
		return maxSpeed
	}
	critical := vmath.Sqrt(2 * accel * vmath.Max(dist-parameter.StoppingDistance, 0))
	return vmath.Min(critical, maxSpeed)
}

// Steer updates horizontal velocity toward the slime's target
// Inside the stopping radius velocity decays exponentially; outside it accelerates
// toward a desired velocity capped by the braking curve, by at most accel*dt per tick
func Steer(s *core.Slime, t parameter.Tuning, dt float32) {
	toTarget := vmath.V3Horizontal(vmath.V3Sub(s.Target, s.Position))
	dist := vmath.V3Mag(toTarget)

	if dist <= parameter.StoppingDistance {
		damp := vmath.Max(0, 1-t.Acceleration*dt)
		s.Velocity.X *= damp
		s.Velocity.Z *= damp
		return
	}

	velH := vmath.V3Horizontal(s.Velocity)
	speed := BrakingSpeed(dist, vmath.V3Mag(velH), t.MaxSpeed, t.Acceleration)
	desired := vmath.V3Scale(toTarget, speed/dist)

	next := vmath.V3MoveToward(velH, desired, t.Acceleration*dt)
	s.Velocity.X = next.X
	s.Velocity.Z = next.Z
}
