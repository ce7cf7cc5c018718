// Sample preview tool - shows which pixels of a slide become particles.
//
// Usage: go run ./cmd/samplepreview [-images dir]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/config"
	"github.com/pthm-cable/inkfield/images"
	"github.com/pthm-cable/inkfield/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// PreviewParams holds the adjustable sampling parameters.
type PreviewParams struct {
	Slide      int
	CanvasSize int
	PointSize  float32
	Persist    bool // keep the canvas between slides, as the display does
}

func defaultParams(cfg *config.Config) PreviewParams {
	return PreviewParams{
		Slide:      0,
		CanvasSize: cfg.Canvas.Width,
		PointSize:  1.5,
		Persist:    true,
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	imagesDir := flag.String("images", "", "Directory of slide images (empty = built-in images)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	var slides *images.Collection
	if *imagesDir != "" {
		coll, err := images.LoadDir(*imagesDir)
		if err != nil {
			slog.Error("failed to load images", "error", err)
			os.Exit(1)
		}
		slides = coll
	} else {
		slides = images.Builtin(cfg.Canvas.Width, cfg.Canvas.Height)
	}

	rl.InitWindow(windowWidth, windowHeight, "Sample Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams(cfg)

	var (
		sampler *systems.ImageSampler
		samples []systems.Sample
		texture rl.Texture2D
		loaded  bool
	)
	defer func() {
		if loaded {
			rl.UnloadTexture(texture)
		}
	}()

	resample := func() {
		if sampler == nil || !params.Persist {
			sampler = systems.NewImageSampler(params.CanvasSize, params.CanvasSize)
		}
		samples = sampler.Sample(slides.At(params.Slide))

		if loaded {
			rl.UnloadTexture(texture)
		}
		img := rl.NewImageFromImage(sampler.Canvas())
		texture = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		loaded = true
	}

	needsResample := true

	for !rl.WindowShouldClose() {
		if needsResample {
			resample()
			needsResample = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Canvas on the left, sampled points overlaid in the same frame
		canvasRect := rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize}
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(params.CanvasSize), Height: float32(params.CanvasSize)},
			canvasRect,
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.Fade(rl.White, 0.35),
		)
		drawSamples(samples, params, canvasRect, cfg.Derived.Palette)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Stats
		mapper := systems.NewPositionMapper(cfg)
		mapper.OffsetX = float64(params.CanvasSize) / 2
		mapper.OffsetY = float64(params.CanvasSize) / 4
		lo, hi := sampleExtent(mapper, samples)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Slide %d/%d: %s", params.Slide+1, slides.Len(), slides.Name(params.Slide)), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Samples: %d", len(samples)), 15, statsY+20, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Scene X: %.0f .. %.0f", lo.X, hi.X), 15, statsY+40, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Scene Y: %.0f .. %.0f", lo.Y, hi.Y), 15, statsY+60, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Sampling Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Slide slider
		rl.DrawText("Slide", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSlide := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", fmt.Sprintf("%d", slides.Len()),
			float32(params.Slide), 0, float32(slides.Len()-1),
		)
		rl.DrawText(fmt.Sprintf("%d", params.Slide+1), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newSlide+0.5) != params.Slide {
			params.Slide = int(newSlide + 0.5)
			needsResample = true
		}
		panelY += 35

		// Canvas size slider
		rl.DrawText("Canvas size (pixels per side)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSize := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"60", "480",
			float32(params.CanvasSize), 60, 480,
		)
		rl.DrawText(fmt.Sprintf("%d", params.CanvasSize), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if size := int(newSize) &^ 1; size != params.CanvasSize {
			params.CanvasSize = size
			sampler = nil
			needsResample = true
		}
		panelY += 35

		// Point size slider
		rl.DrawText("Point size", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.PointSize = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.5", "4.0",
			params.PointSize, 0.5, 4.0,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.PointSize), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		newPersist := gui.CheckBox(rl.Rectangle{X: panelX, Y: panelY, Width: 20, Height: 20}, "Keep canvas between slides", params.Persist)
		if newPersist != params.Persist {
			params.Persist = newPersist
			sampler = nil
			needsResample = true
		}
		panelY += 40

		// Separator
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Prev") {
			params.Slide = (params.Slide - 1 + slides.Len()) % slides.Len()
			needsResample = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Next") {
			params.Slide = (params.Slide + 1) % slides.Len()
			needsResample = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Clear Canvas") {
			if sampler != nil {
				sampler.Reset()
			}
			needsResample = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(cfg)
			sampler = nil
			needsResample = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlText := canvasYAML(params)
		for _, line := range strings.Split(yamlText, "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText)
		}

		rl.EndDrawing()
	}
}

func canvasYAML(p PreviewParams) string {
	return fmt.Sprintf("canvas:\n  width: %d\n  height: %d", p.CanvasSize, p.CanvasSize)
}

// drawSamples plots each sample in the preview rectangle. Samples are
// y-up, so rows are flipped back for display.
func drawSamples(samples []systems.Sample, p PreviewParams, dst rl.Rectangle, palette []color.RGBA) {
	scale := dst.Width / float32(p.CanvasSize)
	for i, s := range samples {
		x := dst.X + float32(s.X)*scale
		y := dst.Y + float32(p.CanvasSize-s.Y)*scale
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, p.PointSize, palette[i%len(palette)])
	}
}

// sampleExtent returns the scene-space box covering every mapped sample.
func sampleExtent(m systems.PositionMapper, samples []systems.Sample) (lo, hi r3.Vec) {
	for i, s := range samples {
		slo, shi := m.Bounds(s)
		if i == 0 {
			lo, hi = slo, shi
			continue
		}
		lo = r3.Vec{X: math.Min(lo.X, slo.X), Y: math.Min(lo.Y, slo.Y), Z: math.Min(lo.Z, slo.Z)}
		hi = r3.Vec{X: math.Max(hi.X, shi.X), Y: math.Max(hi.Y, shi.Y), Z: math.Max(hi.Z, shi.Z)}
	}
	return lo, hi
}
