package engine

import (
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
)

// Engine advances a GameState one fixed timestep at a time
// Not safe for concurrent use; the caller owns the state during Step
type Engine struct {
	state  *core.GameState
	tuning parameter.Tuning
	ctx    core.TickContext
}

// StepResult summarizes one Step call
type StepResult struct {
	Ticks       int
	PointScored bool
	ScoringSide core.Side
	Events      []core.Event
}

// New creates an engine over an externally built state
// The state's difficulty selects the movement tuning
func New(state *core.GameState) (*Engine, error) {
	e := &Engine{}
	if err := e.SetState(state); err != nil {
		return nil, err
	}
	return e, nil
}

// State returns the live state, repeated calls between ticks return the same snapshot
func (e *Engine) State() *core.GameState {
	return e.state
}

// Tuning returns the movement constants in effect
func (e *Engine) Tuning() parameter.Tuning {
	return e.tuning
}

// SetState replaces the engine's state wholesale
// Tuning is re-derived when the state carries a different difficulty; an
// invalid state or level leaves the engine untouched
func (e *Engine) SetState(state *core.GameState) error {
	if state == nil {
		return errors.Wrap(core.ErrInvalidState, "nil state")
	}
	if err := state.Validate(); err != nil {
		return err
	}

	if e.state == nil || state.Difficulty != e.tuning.Level {
		tuning, err := parameter.TuningForLevel(state.Difficulty)
		if err != nil {
			return errors.Wrap(err, "set state")
		}
		if e.state != nil {
			log.Printf("engine: difficulty %d -> %d", e.tuning.Level, tuning.Level)
		}
		e.tuning = tuning
	}

	e.state = state
	e.ctx.Reset()
	return nil
}

// Step runs up to ticks ticks of the pipeline
// A state that already carries a scored point is frozen: stepping stops before
// the first tick that would begin with PointScored set
func (e *Engine) Step(actions core.Actions, ticks int) StepResult {
	e.ctx.Reset()
	e.ctx.Actions = actions

	var res StepResult
	for i := 0; i < ticks; i++ {
		if e.state.PointScored {
			break
		}
		e.ctx.Tick = e.state.Steps
		e.tick()
		res.Ticks++
	}

	res.PointScored = e.state.PointScored
	res.ScoringSide = e.state.ScoringSide
	if len(e.ctx.Events) > 0 {
		res.Events = make([]core.Event, len(e.ctx.Events))
		copy(res.Events, e.ctx.Events)
	}
	return res
}
