package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD shows.
type HUDData struct {
	Title      string
	Slide      int
	SlideCount int
	ImageName  string
	Samples    int
	PoolSize   int
	Pending    bool
	Tick       int64
	FPS        int32
	MeanFrame  time.Duration
	P95Frame   time.Duration
}

// HUD renders the heads-up display.
type HUD struct {
	renderer *Renderer
	visible  bool
}

// NewHUD creates a visible HUD.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer(), visible: true}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Visible reports whether the HUD is drawn.
func (h *HUD) Visible() bool {
	return h.visible
}

// Draw renders the HUD panel in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	if !h.visible {
		return
	}

	r := h.renderer
	t := r.Theme
	x, y := int32(10), int32(10)
	width := int32(220)
	height := t.LineHeight*8 + t.Padding*2

	r.DrawPanel(x, y, width, height)
	x += t.Padding
	y += t.Padding

	rl.DrawText(data.Title, x, y, t.HeaderFontSize, t.ValueColor)
	y += t.LineHeight + 6

	y = r.DrawLabelValue(x, y, "Slide", fmt.Sprintf("%d / %d", data.Slide+1, data.SlideCount))
	y = r.DrawLabelValue(x, y, "Image", data.ImageName)
	y = r.DrawLabelValue(x, y, "Samples", fmt.Sprintf("%d", data.Samples))
	y = r.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", data.PoolSize))
	y = r.DrawLabelValue(x, y, "Frame", fmt.Sprintf("%s (p95 %s)",
		data.MeanFrame.Round(time.Microsecond), data.P95Frame.Round(time.Microsecond)))
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))

	if data.Pending {
		rl.DrawText("settling...", x, y, t.FontSize, t.AccentColor)
	}
}

// DrawControls renders the key legend at the bottom-left of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	if !h.visible {
		return
	}
	rl.DrawText(controls, 10, screenHeight-20, 12, rl.Gray)
}
