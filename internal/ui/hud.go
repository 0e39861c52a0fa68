//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the clipboard status panel to the right of the world view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD with the provided panel width in pixels.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the status lines onto a panel anchored at offsetX. The first
// line is treated as the title.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, lines []string) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	titleColor := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	lineColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	y := panelPadding + lineBaseline
	for i, line := range lines {
		c := lineColor
		if i == 0 {
			c = titleColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, c)
		y += lineHeight
		if y >= height {
			break
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding = 12
	lineHeight   = 16
	lineBaseline = 10
)
