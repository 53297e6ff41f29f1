// Package audio plays short tones for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a single sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	// EatTones is a short rising pair played when food is eaten.
	EatTones = []Tone{{Freq: 660, Duration: 40 * time.Millisecond}, {Freq: 990, Duration: 60 * time.Millisecond}}
	// CrashTones is played on collision.
	CrashTones = []Tone{{Freq: 220, Duration: 120 * time.Millisecond}, {Freq: 110, Duration: 200 * time.Millisecond}}
	// FullTones is an ascending run played when the board fills up.
	FullTones = []Tone{
		{Freq: 523, Duration: 80 * time.Millisecond},
		{Freq: 659, Duration: 80 * time.Millisecond},
		{Freq: 784, Duration: 80 * time.Millisecond},
		{Freq: 1047, Duration: 160 * time.Millisecond},
	}
)

// Player plays tones on the system speaker. A zero Player is silent.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer creates a silent player; call Init to enable output.
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Enabled reports whether tones will be audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayEat plays the eat tones.
func (p *Player) PlayEat() {
	p.play(EatTones)
}

// PlayCrash plays the crash tones.
func (p *Player) PlayCrash() {
	p.play(CrashTones)
}

// PlayFull plays the board-full tones.
func (p *Player) PlayFull() {
	p.play(FullTones)
}

func (p *Player) play(tones []Tone) {
	if !p.Enabled() {
		return
	}
	seq, err := Sequence(tones)
	if err != nil {
		return
	}
	speaker.Play(seq)
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Sequence builds a streamer that plays tones one after another.
func Sequence(tones []Tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", t.Freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(t.Duration), sine))
	}
	return beep.Seq(parts...), nil
}
