//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"game-of-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the frame-rate meter and simulation parameters on top of the
// grid. F toggles it.
type Overlay struct {
	sim     core.Sim
	fps     *FPSMeter
	visible bool
	panel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, fps: NewFPSMeter(time.Now()), visible: true}
}

// Update records a frame and handles the visibility toggle.
func (o *Overlay) Update() {
	o.fps.Frame(time.Now())
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	lines := []string{o.fps.Stats().String()}
	if provider, ok := o.sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			for _, p := range group.Params {
				lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
			}
		}
	}
	msg := strings.Join(lines, "\n")

	face := basicfont.Face7x13
	n := strings.Count(msg, "\n") + 1
	w, h := 200, n*face.Metrics().Height.Ceil()+8
	if o.panel == nil || o.panel.Bounds().Dy() != h {
		o.panel = ebiten.NewImage(w, h)
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(o.panel, msg, face, 4, face.Metrics().Ascent.Ceil()+4, color.White)
	screen.DrawImage(o.panel, nil)
}
