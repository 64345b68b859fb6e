package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
)

// SoundManager plays event cues through the system speaker
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [cueCount]int
}

// NewSoundManager creates a sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; disabled audio is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts one cue
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(cue, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[cue]++
}

// HandleEvents plays each distinct cue raised by a step once
// Returns the cues selected, in event order
func (sm *SoundManager) HandleEvents(events []core.Event) []Cue {
	var seen [cueCount]bool
	var cues []Cue
	for _, ev := range events {
		cue, ok := CueForEvent(ev.Kind)
		if !ok || seen[cue] {
			continue
		}
		seen[cue] = true
		cues = append(cues, cue)
	}
	for _, cue := range cues {
		sm.Play(cue)
	}
	return cues
}

// Played returns how many times cue has started since creation
func (sm *SoundManager) Played(cue Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[cue]
}
