package parameter

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-arena/vmath"
)

// Difficulty levels map an integer knob onto physical movement constants
const (
	MinDifficulty    = 0
	MaxDifficulty    = 10
	DifficultyLevels = MaxDifficulty - MinDifficulty + 1
)

// Base (level 0) and max (level 10) values
const (
	MaxSpeedBase     = float32(4)
	MaxSpeedMax      = float32(12)
	AccelerationBase = float32(50)
	AccelerationMax  = float32(90)
	JumpForceBase    = float32(6)
	JumpForceMax     = float32(12)
)

var ErrDifficultyOutOfRange = errors.New("difficulty out of range")

var (
	maxSpeedTable     = vmath.Linspace(MaxSpeedBase, MaxSpeedMax, DifficultyLevels)
	accelerationTable = vmath.Linspace(AccelerationBase, AccelerationMax, DifficultyLevels)
	jumpForceTable    = vmath.Linspace(JumpForceBase, JumpForceMax, DifficultyLevels)
)

// Tuning holds the movement constants derived from one difficulty level
type Tuning struct {
	Level        int
	MaxSpeed     float32
	Acceleration float32
	JumpForce    float32
}

// TuningForLevel looks up the interpolated constants for a level
// Out-of-range levels are a configuration error, never clamped
func TuningForLevel(level int) (Tuning, error) {
	if level < MinDifficulty || level > MaxDifficulty {
		return Tuning{}, errors.Wrapf(ErrDifficultyOutOfRange, "level %d not in [%d, %d]", level, MinDifficulty, MaxDifficulty)
	}
	i := level - MinDifficulty
	return Tuning{
		Level:        level,
		MaxSpeed:     maxSpeedTable[i],
		Acceleration: accelerationTable[i],
		JumpForce:    jumpForceTable[i],
	}, nil
}

// MustTuning is TuningForLevel for compile-time known levels
func MustTuning(level int) Tuning {
	t, err := TuningForLevel(level)
	if err != nil {
		panic(err)
	}
	return t
}
