package core

import "github.com/lixenwraith/slime-arena/vmath"

// Action is one agent's per-tick command
type Action struct {
	Target vmath.Vec3
	Jump   bool
}

// Actions maps agents to their commands, a missing entry holds the previous target without jumping
type Actions map[SlimeID]Action

// ActionFromVector decodes the 4-component form [x, y, z, jump]
// Jump is pressed when the last component is positive
func ActionFromVector(v [4]float32) Action {
	return Action{
		Target: vmath.Vec3{X: v[0], Y: v[1], Z: v[2]},
		Jump:   v[3] > 0,
	}
}

// Vector encodes the action in its 4-component form
func (a Action) Vector() [4]float32 {
	var jump float32
	if a.Jump {
		jump = 1
	}
	return [4]float32{a.Target.X, a.Target.Y, a.Target.Z, jump}
}

// Mirror reflects the target across the net plane
func (a Action) Mirror() Action {
	return Action{Target: vmath.V3MirrorX(a.Target), Jump: a.Jump}
}

// Mirror reflects every action and swaps identities
func (a Actions) Mirror() Actions {
	m := make(Actions, len(a))
	for id, act := range a {
		m[id.Other()] = act.Mirror()
	}
	return m
}
