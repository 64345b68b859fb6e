package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slime-arena/audio"
	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/engine"
	"github.com/lixenwraith/slime-arena/episode"
	"github.com/lixenwraith/slime-arena/parameter"
	"github.com/lixenwraith/slime-arena/render"
	"github.com/lixenwraith/slime-arena/vmath"
)

const (
	// scorePauseFrames holds the frozen point on screen before the next serve
	scorePauseFrames = parameter.TickRate
	// humanNudge is how far one arrow press moves the human target
	humanNudge = float32(0.5)
)

// Game drives one interactive session: physics, input, audio and drawing
type Game struct {
	screen   tcell.Screen
	renderer *render.CourtRenderer
	sound    *audio.SoundManager
	engine   *engine.Engine
	rng      *rand.Rand

	difficulty int
	policies   map[core.SlimeID]episode.Policy
	human      bool
	humanJump  bool
	humanGoal  vmath.Vec3

	score      render.Score
	pause      int
	paused     bool
	frameCount int
}

// NewGame builds a session over an initialized screen
func NewGame(screen tcell.Screen, sound *audio.SoundManager, difficulty int, seed int64, human bool) (*Game, error) {
	g := &Game{
		screen:     screen,
		renderer:   render.NewCourtRenderer(screen),
		sound:      sound,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: difficulty,
		human:      human,
		policies: map[core.SlimeID]episode.Policy{
			core.SlimeRight: episode.NewChaseBot(),
			core.SlimeLeft:  episode.NewChaseBot(),
		},
	}

	state := episode.NewRandomState(g.rng, difficulty)
	e, err := engine.New(state)
	if err != nil {
		return nil, err
	}
	g.engine = e
	g.humanGoal = state.Slimes[core.SlimeLeft].Position
	return g, nil
}

// serve starts a new rally
func (g *Game) serve() {
	state := episode.NewRandomState(g.rng, g.difficulty)
	if err := g.engine.SetState(state); err != nil {
		// states built by the mutator are always valid
		log.Printf("serve: %v", err)
		return
	}
	g.humanGoal = state.Slimes[core.SlimeLeft].Position
	g.pause = 0
}

func (g *Game) actions() core.Actions {
	state := g.engine.State()
	acts := make(core.Actions, len(g.policies))
	for id, p := range g.policies {
		if g.human && id == core.SlimeLeft {
			continue
		}
		acts[id] = p.Act(id, state)
	}
	if g.human {
		acts[core.SlimeLeft] = core.Action{Target: g.humanGoal, Jump: g.humanJump}
		g.humanJump = false
	}
	return acts
}

// update advances one frame
func (g *Game) update() {
	if g.paused {
		return
	}
	state := g.engine.State()
	if state.PointScored {
		g.pause++
		if g.pause >= scorePauseFrames {
			g.serve()
		}
		return
	}

	res := g.engine.Step(g.actions(), 1)
	g.sound.HandleEvents(res.Events)
	if res.PointScored {
		g.score.Add(res.ScoringSide)
		log.Printf("point %s at tick %d, score L%d R%d", res.ScoringSide, state.Steps, g.score.Left, g.score.Right)
	}
}

func (g *Game) draw() {
	status := ""
	switch {
	case g.paused:
		status = "paused"
	case g.human:
		status = "arrows move, space jumps"
	}
	g.renderer.Draw(g.engine.State(), g.score, status)
	g.screen.Show()
}

func (g *Game) nudge(dx, dz float32) {
	hx := parameter.CourtHalfX - parameter.SlimeRadius
	hz := parameter.CourtHalfZ - parameter.SlimeRadius
	g.humanGoal.X = vmath.Clamp(g.humanGoal.X+dx, -hx, 0)
	g.humanGoal.Z = vmath.Clamp(g.humanGoal.Z+dz, -hz, hz)
}

// handleInput returns false when the session should end
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.nudge(-humanNudge, 0)
		case tcell.KeyRight:
			g.nudge(humanNudge, 0)
		case tcell.KeyUp:
			g.nudge(0, -humanNudge)
		case tcell.KeyDown:
			g.nudge(0, humanNudge)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				g.serve()
			case 'p':
				g.paused = !g.paused
			case ' ':
				g.humanJump = true
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// run loops at the physics rate until quit
func (g *Game) run() {
	ticker := time.NewTicker(time.Second / parameter.TickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.update()
			g.draw()
			g.frameCount++
		}
	}
}
