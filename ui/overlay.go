package ui

import (
	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Overlay holds the ebitenui screen text: the rotate prompt while blocked
// and the start instructions while idle.
type Overlay struct {
	UI *ebitenui.UI

	rotateLabel *widget.Label
	startLabel  *widget.Label
	hintLabel   *widget.Label

	promptFace text.Face
	hintFace   text.Face

	width, height int
	compact       bool
	state         components.SessionState
}

// NewOverlay creates an overlay for the given screen size. Fonts must be
// loaded first.
func NewOverlay(width, height int, compact bool) *Overlay {
	o := &Overlay{
		promptFace: fonts.Prompt.Face(),
		hintFace:   fonts.Hint.Face(),
		compact:    compact,
		state:      components.SessionIdle,
	}
	o.Resize(width, height)
	return o
}

// Resize rebuilds the layout when the screen size changes.
func (o *Overlay) Resize(width, height int) {
	if o.UI != nil && width == o.width && height == o.height {
		return
	}
	o.width, o.height = width, height
	o.buildUI()
	o.Sync(o.state)
}

func (o *Overlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	promptTop := int(float64(o.height)*cfg.UI.PromptY - cfg.UI.PromptFontSize)
	hintTop := int(float64(o.height)*cfg.UI.HintY - cfg.UI.HintFontSize)

	o.rotateLabel = o.newLabel(&o.promptFace)
	o.startLabel = o.newLabel(&o.promptFace)
	o.hintLabel = o.newLabel(&o.hintFace)

	rootContainer.AddChild(line(o.rotateLabel, widget.AnchorLayoutPositionCenter, 0))
	rootContainer.AddChild(line(o.startLabel, widget.AnchorLayoutPositionStart, promptTop))
	rootContainer.AddChild(line(o.hintLabel, widget.AnchorLayoutPositionStart, hintTop))

	o.UI = &ebitenui.UI{Container: rootContainer}
}

func (o *Overlay) newLabel(face *text.Face) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	)
}

// line wraps a label in a full-screen container that centers it
// horizontally, top inset pixels down (or vertically centered).
func line(label *widget.Label, vertical widget.AnchorLayoutPosition, top int) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: top}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	label.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   vertical,
	}
	c.AddChild(label)
	return c
}

// Sync shows the text for a session state.
func (o *Overlay) Sync(state components.SessionState) {
	o.state = state
	o.rotateLabel.Label = ""
	o.startLabel.Label = ""
	o.hintLabel.Label = ""

	switch state {
	case components.SessionBlocked:
		o.rotateLabel.Label = cfg.UI.RotatePrompt
	case components.SessionIdle:
		o.startLabel.Label = cfg.UI.StartText(o.compact)
		o.hintLabel.Label = cfg.UI.ControlsText(o.compact)
	}
}

// Texts returns the visible lines, top to bottom.
func (o *Overlay) Texts() []string {
	var out []string
	for _, l := range []*widget.Label{o.rotateLabel, o.startLabel, o.hintLabel} {
		if l.Label != "" {
			out = append(out, l.Label)
		}
	}
	return out
}

func (o *Overlay) Update() {
	o.UI.Update()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.UI.Draw(screen)
}
