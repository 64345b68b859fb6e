package audio

import (
	"github.com/lixenwraith/slime-arena/config"
	"github.com/lixenwraith/slime-arena/parameter"
)

// AudioConfig controls cue synthesis and playback
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[Cue]float64
}

// DefaultAudioConfig returns stock cue levels
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[Cue]float64{
			CueTouch: 0.8,
			CueNet:   0.7,
			CueWall:  0.4,
			CueJump:  0.3,
			CueScore: 1.0,
		},
	}
}

// FromConfig applies the run config's audio switches over the defaults
func FromConfig(cfg *config.Config) *AudioConfig {
	ac := DefaultAudioConfig()
	ac.Enabled = cfg.AudioEnabled
	ac.MasterVolume = cfg.MasterVolume
	return ac
}
