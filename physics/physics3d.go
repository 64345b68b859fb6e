package physics

import (
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/vmath"
)

// Contact describes a resolved sphere-sphere collision
type Contact struct {
	Normal  vmath.Vec3 // from A toward B
	Depth   float32    // penetration before correction
	Impulse float32    // scalar impulse along Normal
}

// ElasticCollision3D resolves an overlapping, approaching sphere pair in place
// Impulse j = -(1+e) * vRel·n * reducedMass is applied inversely weighted by mass,
// then both bodies are pushed apart by the penetration depth, each moving by the
// other body's share of total mass
// Returns false when the spheres are apart or already separating
func ElasticCollision3D(a, b core.Body, restitution float32) (Contact, bool) {
	delta := vmath.V3Sub(*b.Pos, *a.Pos)
	// Coincident centres produce a zero normal, which resolves to a no-op instead of NaN
	n, dist := vmath.V3NormalizeEps(delta, vmath.Epsilon)

	sumRadii := a.Radius + b.Radius
	if dist > sumRadii {
		return Contact{}, false
	}

	vRel := vmath.V3Dot(vmath.V3Sub(*b.Vel, *a.Vel), n)
	if vRel > 0 {
		return Contact{}, false
	}

	reducedMass := 1 / (1/a.Mass + 1/b.Mass)
	j := -(1 + restitution) * vRel * reducedMass

	*a.Vel = vmath.V3Sub(*a.Vel, vmath.V3Scale(n, j/a.Mass))
	*b.Vel = vmath.V3Add(*b.Vel, vmath.V3Scale(n, j/b.Mass))

	depth := sumRadii - dist
	totalMass := a.Mass + b.Mass
	*a.Pos = vmath.V3Sub(*a.Pos, vmath.V3Scale(n, depth*b.Mass/totalMass))
	*b.Pos = vmath.V3Add(*b.Pos, vmath.V3Scale(n, depth*a.Mass/totalMass))

	return Contact{Normal: n, Depth: depth, Impulse: j}, true
}
