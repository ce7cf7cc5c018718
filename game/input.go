package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes pointer, keyboard and window events.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.hud.Toggle()
	}

	// Slide navigation
	if rl.IsKeyPressed(rl.KeyRight) {
		g.carousel.Next()
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		g.carousel.Prev()
	}

	// Camera follows the pointer only when it moves
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		p := rl.GetMousePosition()
		g.camera.PointerMoved(float64(p.X), float64(p.Y), g.viewport)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if !g.viewport.Resize(w, h) {
		return
	}

	g.camera.Resize(g.viewport)
	g.pool.SetViewportWidth(w)
}
