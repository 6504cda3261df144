// Package config loads the engine setup file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

//go:embed setup.ini
var defaultSetup []byte

type Setup struct {
	Graphics struct {
		Title      string `ini:"Title"`
		BaseWidth  int    `ini:"BaseWidth"`
		BaseHeight int    `ini:"BaseHeight"`
		Scale      int    `ini:"Scale"`
		FPS        int    `ini:"FPS"`
		VSync      bool   `ini:"VSync"`
		Icon       string `ini:"Icon"`
	} `ini:"Graphics"`
	Dialog struct {
		FontFile string  `ini:"FontFile"`
		FontSize float64 `ini:"FontSize"`
	} `ini:"Dialog"`
	Sound Sound `ini:"Sound"`
	Misc  struct {
		TempDir string `ini:"TempDir"`
	} `ini:"Misc"`

	// Path is the user file the setup was read from, if any.
	Path string `ini:"-"`
}

type Sound struct {
	Enabled     bool    `ini:"Enabled"`
	SampleRate  int     `ini:"SampleRate"`
	ClickTone   float64 `ini:"ClickTone"`
	ClickMillis int     `ini:"ClickMillis"`
	Volume      float64 `ini:"Volume"`
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		Insensitive:             false,
		IgnoreInlineComment:     false,
		SkipUnrecognizableLines: true,
	}
}

// Load reads the embedded defaults and overlays path when it exists. An
// empty path loads the defaults only.
func Load(path string) (*Setup, error) {
	sources := []any{defaultSetup}
	var s Setup
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			sources = append(sources, path)
			s.Path = path
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	f, err := ini.LoadSources(loadOptions(), sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("config: read setup: %w", err)
	}
	if err := f.MapTo(&s); err != nil {
		return nil, fmt.Errorf("config: map setup: %w", err)
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes s to path in INI form.
func (s *Setup) Save(path string) error {
	f := ini.Empty()
	if err := ini.ReflectFrom(f, s); err != nil {
		return fmt.Errorf("config: reflect setup: %w", err)
	}
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	return nil
}

// WindowSize is the window size in pixels before any framebuffer scaling.
func (s *Setup) WindowSize() (int, int) {
	return s.Graphics.BaseWidth * s.Graphics.Scale, s.Graphics.BaseHeight * s.Graphics.Scale
}

func (s *Setup) normalize() error {
	g := &s.Graphics
	if g.BaseWidth <= 0 || g.BaseHeight <= 0 {
		return fmt.Errorf("config: invalid base resolution %dx%d", g.BaseWidth, g.BaseHeight)
	}
	if g.Scale < 1 {
		g.Scale = 1
	}
	if g.FPS <= 0 {
		g.FPS = 40
	}
	if s.Dialog.FontSize <= 0 {
		s.Dialog.FontSize = 10
	}
	if s.Sound.SampleRate <= 0 {
		s.Sound.SampleRate = 44100
	}
	if s.Misc.TempDir == "" {
		s.Misc.TempDir = os.TempDir()
	}
	return nil
}
