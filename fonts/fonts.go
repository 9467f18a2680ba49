package fonts

import (
	"fmt"

	cfg "github.com/automoto/starsong/config"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Prompt     FontName = "prompt"
	Hint       FontName = "hint"
	Dedication FontName = "dedication"
)

// Face returns the text/v2 face for drawing and ebitenui labels. Faces are
// built once per load so their glyph caches live across frames.
func (f FontName) Face() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]*text.GoXFace{}
)

// LoadDefaults loads every overlay font from the bundled Go Regular face.
func LoadDefaults() error {
	sizes := map[FontName]float64{
		Prompt:     cfg.UI.PromptFontSize,
		Hint:       cfg.UI.HintFontSize,
		Dedication: cfg.UI.DedicationSize,
	}
	for name, size := range sizes {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = text.NewGoXFace(truetype.NewFace(fontData, &truetype.Options{Size: size}))
	return nil
}

// Loaded reports whether name has a face.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) *text.GoXFace {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
