package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// CompactMode selects how the compact-device classification is made.
type CompactMode int

const (
	CompactAuto CompactMode = iota
	CompactOn
	CompactOff
)

func (m *CompactMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "auto":
		*m = CompactAuto
	case "true", "1", "yes", "on":
		*m = CompactOn
	case "false", "0", "no", "off":
		*m = CompactOff
	default:
		return fmt.Errorf("unknown compact mode %q", string(text))
	}
	return nil
}

func (m CompactMode) String() string {
	switch m {
	case CompactOn:
		return "on"
	case CompactOff:
		return "off"
	}
	return "auto"
}

// Runtime holds settings read from the environment at startup.
type Runtime struct {
	Width    int         `env:"STARSONG_WIDTH" envDefault:"960"`
	Height   int         `env:"STARSONG_HEIGHT" envDefault:"540"`
	Compact  CompactMode `env:"STARSONG_COMPACT" envDefault:"auto"`
	AssetDir string      `env:"STARSONG_ASSET_DIR"`
	Debug    bool        `env:"STARSONG_DEBUG" envDefault:"false"`
	Mute     bool        `env:"STARSONG_MUTE" envDefault:"false"`
	Volume   float64     `env:"STARSONG_VOLUME" envDefault:"1"`
}

// LoadRuntime parses runtime settings from environment variables.
func LoadRuntime() (Runtime, error) {
	var r Runtime
	if err := env.Parse(&r); err != nil {
		return Runtime{}, fmt.Errorf("parse env: %w", err)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return Runtime{}, fmt.Errorf("invalid window size %dx%d", r.Width, r.Height)
	}
	if r.Volume < 0 {
		r.Volume = 0
	} else if r.Volume > 1 {
		r.Volume = 1
	}
	return r, nil
}

// DefaultRuntime returns the settings used when the environment is unusable.
func DefaultRuntime() Runtime {
	return Runtime{
		Width:  C.Width,
		Height: C.Height,
		Volume: Audio.Volume,
	}
}

// Apply copies runtime settings into the global configuration.
func (r Runtime) Apply() {
	C.Width = r.Width
	C.Height = r.Height
	Debug.ShowColliders = r.Debug
	Audio.Volume = r.Volume
	if r.Mute {
		Audio.Volume = 0
	}
}
