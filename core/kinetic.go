package core

import "github.com/lixenwraith/slime-arena/vmath"

// Body is the view of a sphere the collision resolver works on
// Pos and Vel point into the owning state so resolution mutates in place
type Body struct {
	Pos    *vmath.Vec3
	Vel    *vmath.Vec3
	Mass   float32
	Radius float32
}
