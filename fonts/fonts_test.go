package fonts

import (
	"testing"

	cfg "github.com/automoto/starsong/config"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Prompt, Hint, Dedication} {
		if !Loaded(name) {
			t.Errorf("font %s not loaded", name)
		}
	}
	if Dedication.Face().Metrics().HAscent <= Hint.Face().Metrics().HAscent {
		t.Error("dedication face is not larger than the hint face")
	}
}

func TestFaceIsReused(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	first := Dedication.Face()
	for range 3 {
		if Dedication.Face() != first {
			t.Fatal("Face() built a new face; glyph cache would be lost every frame")
		}
	}

	if err := LoadFontWithSize(Dedication, goregular.TTF, cfg.UI.DedicationSize); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	if Dedication.Face() == first {
		t.Error("reloading kept the old face")
	}
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("nope"), 12); err == nil {
		t.Fatal("expected an error for invalid font data")
	}
	if Loaded("broken") {
		t.Error("invalid font was registered")
	}
	if err := LoadFontWithSize("ok", goregular.TTF, 12); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
}
