package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100
	// AudioBufferDuration is the speaker buffer, trading latency for underruns
	AudioBufferDuration = 100 * time.Millisecond
)

// Touch cue: short blip when a slime plays the ball
const (
	TouchSoundDuration = 70 * time.Millisecond
	TouchSoundAttack   = 3 * time.Millisecond
	TouchSoundRelease  = 40 * time.Millisecond
)

// Net cue: dull thud
const (
	NetSoundDuration = 120 * time.Millisecond
	NetSoundAttack   = 2 * time.Millisecond
	NetSoundRelease  = 90 * time.Millisecond
)

// Wall cue: noise tick
const (
	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 1 * time.Millisecond
	WallSoundRelease  = 30 * time.Millisecond
)

// Jump cue: rising two-step
const (
	JumpSoundNoteDuration = 45 * time.Millisecond
	JumpSoundAttack       = 2 * time.Millisecond
	JumpSoundRelease      = 20 * time.Millisecond
)

// Score cue: falling chime for the end of a rally
const (
	ScoreSoundNote1Duration = 120 * time.Millisecond
	ScoreSoundNote2Duration = 320 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 40 * time.Millisecond
	ScoreSoundNote2Release  = 250 * time.Millisecond
)
