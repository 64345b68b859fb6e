package physics

import (
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/vmath"
)

// Integrate performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
// Returns the position before the update for constraints that need the origin side
func Integrate(b core.Body, accel vmath.Vec3, dt float32) (prev vmath.Vec3) {
	prev = *b.Pos
	*b.Vel = vmath.V3Add(*b.Vel, vmath.V3Scale(accel, dt))
	*b.Pos = vmath.V3Add(*b.Pos, vmath.V3Scale(*b.Vel, dt))
	return prev
}

// ReflectAxis clamps a position component into [lo, hi] and reflects velocity on the boundary
// Velocity already heading back inside is left untouched
func ReflectAxis(pos, vel *float32, lo, hi, restitution float32) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	return false
}

// StopAxis clamps a position component into [lo, hi] and zeroes outward velocity
func StopAxis(pos, vel *float32, lo, hi float32) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = 0
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = 0
		}
		return true
	}
	return false
}
