// Package audio plays the dialog feedback sounds through a beep speaker.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/hubastard/grove-dialogs/engine/config"
)

// Mixer owns the speaker. A Mixer built from a disabled setup, or one whose
// Init failed, ignores every call.
type Mixer struct {
	cfg     config.Sound
	sr      beep.SampleRate
	mixer   *beep.Mixer
	started bool
}

func New(cfg config.Sound) *Mixer {
	return &Mixer{cfg: cfg, sr: beep.SampleRate(cfg.SampleRate), mixer: &beep.Mixer{}}
}

// Init opens the output device with a 50ms buffer.
func (m *Mixer) Init() error {
	if !m.cfg.Enabled || m.started {
		return nil
	}
	if err := speaker.Init(m.sr, m.sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.started = true
	return nil
}

// Click plays the UI click tone.
func (m *Mixer) Click() {
	if !m.started {
		return
	}
	s, err := Tone(m.sr, m.cfg.ClickTone, time.Duration(m.cfg.ClickMillis)*time.Millisecond, m.cfg.Volume)
	if err != nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (m *Mixer) Close() error {
	if !m.started {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	m.started = false
	return nil
}

// Tone is a sine tone of the given length. volume is in the
// effects.Volume base-2 scale; 0 leaves the amplitude unchanged.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0fHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(d), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}
