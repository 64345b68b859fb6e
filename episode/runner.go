package episode

import (
	"context"
	"log"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-arena/config"
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/engine"
	"github.com/lixenwraith/slime-arena/store"
)

// Result summarizes one finished episode
type Result struct {
	ID          string
	Seed        int64
	Steps       int // policy decisions
	Ticks       int
	ScoringSide core.Side
	Terminated  bool
	Truncated   bool
	// Returns accumulates each slime's reward over the episode
	Returns map[core.SlimeID]float32
	Events  []core.Event
	Final   *core.GameState
}

// Touches counts registered touches across both slimes
func (r *Result) Touches() int {
	return r.count(core.EventTouch)
}

// NetHits counts ball contacts with the net
func (r *Result) NetHits() int {
	return r.count(core.EventNet)
}

func (r *Result) count(kind core.EventKind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Record converts the result into a store row
func (r *Result) Record(difficulty int) *store.Episode {
	return &store.Episode{
		ID:          r.ID,
		Seed:        r.Seed,
		Difficulty:  difficulty,
		Steps:       r.Steps,
		Ticks:       r.Ticks,
		ScoringSide: r.ScoringSide,
		Terminated:  r.Terminated,
		Truncated:   r.Truncated,
		Touches:     r.Touches(),
		NetHits:     r.NetHits(),
		RewardRight: float64(r.Returns[core.SlimeRight]),
		RewardLeft:  float64(r.Returns[core.SlimeLeft]),
	}
}

// Runner plays whole episodes: reset, then step policies until a condition fires
type Runner struct {
	Difficulty   int
	TicksPerStep int
	Policies     map[core.SlimeID]Policy
	Reward       RewardFunc
	Terminal     Condition
	Truncated    Condition

	// DB receives every finished episode when set
	DB store.DB
	// OnStep observes each step's result, for audio cues or rendering
	OnStep func(g *core.GameState, res engine.StepResult)
}

// NewRunner builds a runner from config with bots on both sides
func NewRunner(cfg *config.Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		Difficulty:   cfg.Difficulty,
		TicksPerStep: cfg.TicksPerStep,
		Policies: map[core.SlimeID]Policy{
			core.SlimeRight: NewChaseBot(),
			core.SlimeLeft:  NewChaseBot(),
		},
		Reward:    DefaultReward(),
		Terminal:  Terminal{},
		Truncated: Truncated{MaxSteps: cfg.MaxSteps},
	}, nil
}

// Run plays one episode seeded by seed
// Cancelling ctx stops between steps and returns the context error
func (r *Runner) Run(ctx context.Context, seed int64) (*Result, error) {
	if r.TicksPerStep < 1 {
		return nil, errors.Wrapf(config.ErrInvalidConfig, "ticks per step %d", r.TicksPerStep)
	}

	rng := rand.New(rand.NewSource(seed))
	g := NewRandomState(rng, r.Difficulty)
	eng, err := engine.New(g)
	if err != nil {
		return nil, errors.Wrap(err, "start episode")
	}

	res := &Result{
		ID:      uuid.New().String(),
		Seed:    seed,
		Returns: make(map[core.SlimeID]float32, len(core.SlimeIDs)),
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		acts := make(core.Actions, len(r.Policies))
		for id, p := range r.Policies {
			acts[id] = p.Act(id, g)
		}

		step := eng.Step(acts, r.TicksPerStep)
		res.Steps++
		res.Ticks += step.Ticks
		res.Events = append(res.Events, step.Events...)
		if r.OnStep != nil {
			r.OnStep(g, step)
		}
		if r.Reward != nil {
			for id, v := range r.Reward.Rewards(g) {
				res.Returns[id] += v
			}
		}

		res.Terminated = r.Terminal != nil && r.Terminal.Done(g)
		res.Truncated = !res.Terminated && r.Truncated != nil && r.Truncated.Done(g)
		// a frozen state cannot progress further
		if res.Terminated || res.Truncated || step.Ticks == 0 {
			break
		}
	}

	res.ScoringSide = g.ScoringSide
	res.Final = g

	log.Printf("episode %s: seed=%d steps=%d ticks=%d scoring=%s touches=%d truncated=%v",
		res.ID, seed, res.Steps, res.Ticks, res.ScoringSide, res.Touches(), res.Truncated)

	if r.DB != nil {
		rec := res.Record(r.Difficulty)
		if err := r.DB.SaveEpisode(rec); err != nil {
			return res, errors.Wrap(err, "record episode")
		}
		if err := r.DB.SaveEvents(rec.ID, res.Events); err != nil {
			return res, errors.Wrap(err, "record events")
		}
	}
	return res, nil
}
