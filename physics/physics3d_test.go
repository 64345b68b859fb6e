package physics

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/vmath"
)

type sphere struct {
	pos, vel vmath.Vec3
	mass, r  float32
}

func (s *sphere) body() core.Body {
	return core.Body{Pos: &s.pos, Vel: &s.vel, Mass: s.mass, Radius: s.r}
}

func momentum(a, b *sphere) vmath.Vec3 {
	return vmath.V3Add(vmath.V3Scale(a.vel, a.mass), vmath.V3Scale(b.vel, b.mass))
}

func TestElasticCollisionConservesMomentum(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	u := func(lo, hi float32) float32 { return lo + rng.Float32()*(hi-lo) }

	for i := 0; i < 500; i++ {
		a := &sphere{mass: u(0.1, 5), r: u(0.2, 1)}
		b := &sphere{mass: u(0.1, 5), r: u(0.2, 1)}
		dir := vmath.V3Normalize(vmath.Vec3{X: u(-1, 1), Y: u(-1, 1), Z: u(-1, 1)})
		if dir == (vmath.Vec3{}) {
			continue
		}
		b.pos = vmath.V3Scale(dir, (a.r+b.r)*u(0.3, 0.99))
		// approaching along the normal
		a.vel = vmath.V3Add(vmath.V3Scale(dir, u(0.5, 5)), vmath.Vec3{Z: u(-1, 1)})
		b.vel = vmath.V3Scale(dir, -u(0.5, 5))

		before := momentum(a, b)
		c, ok := ElasticCollision3D(a.body(), b.body(), u(0, 1))
		after := momentum(a, b)

		if !ok {
			continue
		}
		if d := vmath.V3Mag(vmath.V3Sub(before, after)); d > 1e-3*(1+vmath.V3Mag(before)) {
			t.Fatalf("case %d: momentum changed by %v (%v -> %v)", i, d, before, after)
		}
		if c.Impulse < 0 {
			t.Fatalf("case %d: negative impulse %v", i, c.Impulse)
		}
		sep := vmath.V3Mag(vmath.V3Sub(b.pos, a.pos))
		if sep < a.r+b.r-1e-4 {
			t.Fatalf("case %d: still overlapping after correction: %v < %v", i, sep, a.r+b.r)
		}
		if vRel := vmath.V3Dot(vmath.V3Sub(b.vel, a.vel), c.Normal); vRel < -1e-4 {
			t.Fatalf("case %d: bodies still approaching, vRel %v", i, vRel)
		}
	}
}

func TestElasticCollisionRestitution(t *testing.T) {
	a := &sphere{vel: vmath.Vec3{X: 2}, mass: 1, r: 0.5}
	b := &sphere{pos: vmath.Vec3{X: 0.9}, vel: vmath.Vec3{X: -2}, mass: 1, r: 0.5}

	if _, ok := ElasticCollision3D(a.body(), b.body(), 1); !ok {
		t.Fatal("expected contact")
	}
	near := func(got, want float32) bool { return vmath.Abs(got-want) < 1e-4 }
	if !near(a.vel.X, -2) || !near(b.vel.X, 2) {
		t.Fatalf("equal masses should swap velocities: %v %v", a.vel, b.vel)
	}
	if !near(a.pos.X, -0.05) || !near(b.pos.X, 0.95) {
		t.Fatalf("positions not split evenly: %v %v", a.pos, b.pos)
	}
}

func TestElasticCollisionSkipsNonContacts(t *testing.T) {
	tests := []struct {
		name string
		a, b sphere
	}{
		{
			name: "apart",
			a:    sphere{vel: vmath.Vec3{X: 1}, mass: 1, r: 0.5},
			b:    sphere{pos: vmath.Vec3{X: 1.5}, mass: 1, r: 0.5},
		},
		{
			name: "separating",
			a:    sphere{vel: vmath.Vec3{X: -1}, mass: 1, r: 0.5},
			b:    sphere{pos: vmath.Vec3{X: 0.8}, vel: vmath.Vec3{X: 1}, mass: 1, r: 0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a, tt.b
			if _, ok := ElasticCollision3D(a.body(), b.body(), 1); ok {
				t.Fatal("unexpected contact")
			}
			if a != tt.a || b != tt.b {
				t.Fatal("bodies mutated without contact")
			}
		})
	}
}

func TestElasticCollisionCoincidentCentres(t *testing.T) {
	a := &sphere{pos: vmath.Vec3{X: 1, Y: 1}, vel: vmath.Vec3{Y: 3}, mass: 1, r: 0.75}
	b := &sphere{pos: vmath.Vec3{X: 1, Y: 1}, vel: vmath.Vec3{Y: -3}, mass: 0.25, r: 0.3}

	ElasticCollision3D(a.body(), b.body(), 1)
	for _, v := range []vmath.Vec3{a.pos, a.vel, b.pos, b.vel} {
		if !vmath.V3IsFinite(v) {
			t.Fatalf("non-finite result %v", v)
		}
	}
}
