package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/hubastard/grove-dialogs/engine/config"
)

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := Tone(sr, 440, 25*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("Tone: %v", err)
	}
	buf := make([][2]float64, 64)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 200 {
		t.Fatalf("streamed %d samples, want 200", total)
	}
}

func TestToneRejectsBadFrequency(t *testing.T) {
	if _, err := Tone(beep.SampleRate(8000), 6000, time.Millisecond, 0); err == nil {
		t.Fatalf("expected error above Nyquist")
	}
}

func TestDisabledMixerIsInert(t *testing.T) {
	m := New(config.Sound{Enabled: false, SampleRate: 44100})
	if err := m.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	m.Click()
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
