package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
)

// CarouselAction is what the user asked the carousel to do this frame.
type CarouselAction int

const (
	ActionNone CarouselAction = iota
	ActionPrev
	ActionNext
	ActionSelect // jump to CarouselControls.Picked
)

// CarouselControls draws prev/next buttons and one dot per slide along the
// bottom edge of the window.
type CarouselControls struct {
	renderer *Renderer
	Picked   int
}

// NewCarouselControls creates the carousel control strip.
func NewCarouselControls() *CarouselControls {
	return &CarouselControls{renderer: NewRenderer()}
}

// Draw renders the controls for n slides with selected highlighted and
// returns the requested action.
func (c *CarouselControls) Draw(screenW, screenH int32, n, selected int, label string) CarouselAction {
	t := c.renderer.Theme
	action := ActionNone

	const (
		buttonW = 36
		buttonH = 28
		dotR    = 5
		dotGap  = 18
	)

	y := float32(screenH - buttonH - 20)
	stripW := float32(n*dotGap) + 2*buttonW + 40
	x := (float32(screenW) - stripW) / 2

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: buttonH}, "<") {
		action = ActionPrev
	}

	dotX := x + buttonW + 20 + dotGap/2
	dotY := y + buttonH/2
	mouse := rl.GetMousePosition()
	for i := 0; i < n; i++ {
		center := rl.Vector2{X: dotX + float32(i*dotGap), Y: dotY}
		col := t.DotIdle
		if i == selected {
			col = t.DotActive
		}
		rl.DrawCircleV(center, dotR, col)

		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointCircle(mouse, center, dotR+3) {
			c.Picked = i
			action = ActionSelect
		}
	}

	if gui.Button(rl.Rectangle{X: x + stripW - buttonW, Y: y, Width: buttonW, Height: buttonH}, ">") {
		action = ActionNext
	}

	if label != "" {
		w := rl.MeasureText(label, t.FontSize)
		rl.DrawText(label, (screenW-w)/2, int32(y)-t.LineHeight-4, t.FontSize, t.LabelColor)
	}

	return action
}
