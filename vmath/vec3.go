package vmath

// Vec3 is a single-precision 3D vector
// All simulation state uses float32 so repeated runs produce identical bits
type Vec3 struct {
	X, Y, Z float32
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3MagSq(v Vec3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float32 {
	return Sqrt(V3MagSq(v))
}

// V3Normalize returns the unit vector, zero vector for zero input
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3NormalizeEps divides by (magnitude + eps)
// Near-zero input yields a near-zero vector instead of NaN
func V3NormalizeEps(v Vec3, eps float32) (Vec3, float32) {
	mag := V3Mag(v)
	inv := 1 / (mag + eps)
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}, mag
}

// V3Horizontal drops the vertical (Y) component
func V3Horizontal(v Vec3) Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// V3MirrorX negates the net-axis component
func V3MirrorX(v Vec3) Vec3 {
	return Vec3{-v.X, v.Y, v.Z}
}

// V3ClampMagnitude limits vector magnitude
func V3ClampMagnitude(v Vec3, maxMag float32) Vec3 {
	magSq := V3MagSq(v)
	if magSq <= maxMag*maxMag {
		return v
	}
	return V3Scale(V3Normalize(v), maxMag)
}

// V3MoveToward steps from current toward desired by at most maxDelta (magnitude-clamped)
func V3MoveToward(current, desired Vec3, maxDelta float32) Vec3 {
	dv := V3ClampMagnitude(V3Sub(desired, current), maxDelta)
	return V3Add(current, dv)
}

// V3IsFinite reports whether no component is NaN or infinite
func V3IsFinite(v Vec3) bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}
