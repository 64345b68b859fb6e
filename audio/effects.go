package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/slime-arena/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a wave generator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream up over attack and down over release, cutting it at total
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

// gain at sample pos, 1 on the plateau
func (e *envelope) gain(pos int) float64 {
	if pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; left < e.release {
		return float64(left) / float64(e.release)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if room := e.total - e.pos; len(samples) > room {
		samples = samples[:room]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; log2(0) is -Inf so zero gain is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateTouchSound is a bright sine blip
func CreateTouchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	blip := beep.Take(rate.N(parameter.TouchSoundDuration), beep.Mix(
		newVolume(tone(660, WaveSine, parameter.TouchSoundDuration, parameter.TouchSoundAttack, parameter.TouchSoundRelease, rate), 0.8),
		newVolume(tone(1320, WaveSine, parameter.TouchSoundDuration, parameter.TouchSoundAttack, parameter.TouchSoundRelease/2, rate), 0.2),
	))
	return newVolume(blip, cfg.EffectVolumes[CueTouch]*cfg.MasterVolume)
}

// CreateNetSound is a low saw thud
func CreateNetSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	thud := tone(110, WaveSaw, parameter.NetSoundDuration, parameter.NetSoundAttack, parameter.NetSoundRelease, rate)
	return newVolume(thud, cfg.EffectVolumes[CueNet]*cfg.MasterVolume)
}

// CreateWallSound is a short noise tick
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	tick := tone(0, WaveNoise, parameter.WallSoundDuration, parameter.WallSoundAttack, parameter.WallSoundRelease, rate)
	return newVolume(tick, cfg.EffectVolumes[CueWall]*cfg.MasterVolume)
}

// CreateJumpSound is two rising square notes
func CreateJumpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(330, WaveSquare, parameter.JumpSoundNoteDuration, parameter.JumpSoundAttack, parameter.JumpSoundRelease, rate),
		tone(440, WaveSquare, parameter.JumpSoundNoteDuration, parameter.JumpSoundAttack, parameter.JumpSoundRelease, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[CueJump]*cfg.MasterVolume)
}

// CreateScoreSound is a falling two-note chime (E6, B5)
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(1318.51, WaveSquare, parameter.ScoreSoundNote1Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote1Release, rate),
		tone(987.77, WaveSquare, parameter.ScoreSoundNote2Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote2Release, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[CueScore]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for cue, nil for unknown cues
func GetSoundEffect(cue Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case CueTouch:
		return CreateTouchSound(cfg)
	case CueNet:
		return CreateNetSound(cfg)
	case CueWall:
		return CreateWallSound(cfg)
	case CueJump:
		return CreateJumpSound(cfg)
	case CueScore:
		return CreateScoreSound(cfg)
	default:
		return nil
	}
}
