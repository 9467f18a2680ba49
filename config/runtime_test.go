package config

import (
	"strings"
	"testing"
)

func TestLoadRuntimeDefaults(t *testing.T) {
	r, err := LoadRuntime()
	if err != nil {
		t.Fatalf("load runtime: %v", err)
	}
	if r.Width != 960 || r.Height != 540 {
		t.Fatalf("expected 960x540, got %dx%d", r.Width, r.Height)
	}
	if r.Compact != CompactAuto {
		t.Fatalf("expected compact auto, got %s", r.Compact)
	}
	if r.Volume != 1 {
		t.Fatalf("expected volume 1, got %v", r.Volume)
	}
}

func TestLoadRuntimeOverrides(t *testing.T) {
	t.Setenv("STARSONG_WIDTH", "800")
	t.Setenv("STARSONG_HEIGHT", "400")
	t.Setenv("STARSONG_COMPACT", "true")
	t.Setenv("STARSONG_DEBUG", "true")
	t.Setenv("STARSONG_VOLUME", "3")

	r, err := LoadRuntime()
	if err != nil {
		t.Fatalf("load runtime: %v", err)
	}
	if r.Width != 800 || r.Height != 400 {
		t.Fatalf("expected 800x400, got %dx%d", r.Width, r.Height)
	}
	if r.Compact != CompactOn {
		t.Fatalf("expected compact on, got %s", r.Compact)
	}
	if !r.Debug {
		t.Fatal("expected debug enabled")
	}
	if r.Volume != 1 {
		t.Fatalf("expected volume clamped to 1, got %v", r.Volume)
	}
}

func TestLoadRuntimeErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad width", "STARSONG_WIDTH", "wide"},
		{"bad compact", "STARSONG_COMPACT", "sometimes"},
		{"zero height", "STARSONG_HEIGHT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadRuntime(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadRuntimeWrapsParseErrors(t *testing.T) {
	t.Setenv("STARSONG_VOLUME", "loud")

	_, err := LoadRuntime()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestRuntimeApplyMute(t *testing.T) {
	saved := Audio.Volume
	savedC := C
	savedDebug := Debug
	t.Cleanup(func() {
		Audio.Volume = saved
		C = savedC
		Debug = savedDebug
	})

	Runtime{Width: 640, Height: 360, Volume: 0.5, Mute: true, Debug: true}.Apply()
	if Audio.Volume != 0 {
		t.Fatalf("expected muted volume 0, got %v", Audio.Volume)
	}
	if C.Width != 640 || C.Height != 360 {
		t.Fatalf("expected 640x360, got %dx%d", C.Width, C.Height)
	}
	if !Debug.ShowColliders {
		t.Fatal("expected collider overlay enabled")
	}
}

func TestCompactDevice(t *testing.T) {
	tests := []struct {
		mode CompactMode
		want bool
	}{
		{CompactOn, true},
		{CompactOff, false},
		{CompactAuto, false}, // no user agent outside the browser
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := (Runtime{Compact: tt.mode}).CompactDevice(); got != tt.want {
				t.Errorf("CompactDevice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompactUserAgent(t *testing.T) {
	tests := []struct {
		ua   string
		want bool
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148", true},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8)", true},
		{"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", true},
		{"Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/130.0", false},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/128.0", false},
	}
	for _, tt := range tests {
		if got := CompactUserAgent(tt.ua); got != tt.want {
			t.Errorf("CompactUserAgent(%q) = %v, want %v", tt.ua, got, tt.want)
		}
	}
}
