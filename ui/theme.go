// Package ui draws the carousel controls and the heads-up display.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	AccentColor    rl.Color
	DotIdle        rl.Color
	DotActive      rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns a theme that reads on a white background.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 245, G: 245, B: 245, A: 220},
		PanelBorder:    rl.Color{R: 200, G: 200, B: 200, A: 255},
		LabelColor:     rl.Gray,
		ValueColor:     rl.DarkGray,
		AccentColor:    rl.Color{R: 0xFA, G: 0x2E, B: 0x59, A: 255},
		DotIdle:        rl.Color{R: 200, G: 200, B: 200, A: 255},
		DotActive:      rl.DarkGray,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     70,
		FontSize:       12,
		HeaderFontSize: 16,
	}
}

// Renderer handles UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawLabelValue draws a label and value on the same line and returns the next Y.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}
