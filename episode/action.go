package episode

import (
	"github.com/lixenwraith/slime-arena/core"
)

// ActionScale maps unit policy outputs onto court coordinates
const ActionScale = 10

// ParseActions converts raw 4-float policy outputs into engine actions
// Target components are scaled by ActionScale; a slime currently on the
// negative half has x and z flipped so both sides act in the same frame
func ParseActions(raw map[core.SlimeID][4]float32, g *core.GameState) core.Actions {
	out := make(core.Actions, len(raw))
	for id, v := range raw {
		out[id] = parseAction(id, v, g)
	}
	return out
}

func parseAction(id core.SlimeID, v [4]float32, g *core.GameState) core.Action {
	for i := 0; i < 3; i++ {
		v[i] *= ActionScale
	}
	if s, ok := g.Slimes[id]; ok && s.Position.X < 0 {
		v[0] = -v[0]
		v[2] = -v[2]
	}
	return core.ActionFromVector(v)
}
