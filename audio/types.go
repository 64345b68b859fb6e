package audio

import "github.com/lixenwraith/slime-arena/core"

// Cue identifies one sound effect
type Cue int

const (
	CueTouch Cue = iota // slime played the ball
	CueNet              // ball hit the net
	CueWall             // ball hit a wall or the ceiling
	CueJump             // slime jumped
	CueScore            // rally ended
	cueCount
)

var cueNames = [cueCount]string{"touch", "net", "wall", "jump", "score"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// CueForEvent maps a physics event to its sound, if any
func CueForEvent(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventTouch, core.EventContact:
		return CueTouch, true
	case core.EventNet:
		return CueNet, true
	case core.EventWall:
		return CueWall, true
	case core.EventJump:
		return CueJump, true
	case core.EventFloor, core.EventTouchLimit:
		return CueScore, true
	}
	return 0, false
}
