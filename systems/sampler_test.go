package systems

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func filled(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleSingleMark(t *testing.T) {
	img := filled(240, 240, color.White)
	// Sample space is y-up: row 140 of a 240-high canvas is y = 100.
	img.Set(100, 140, color.Black)

	s := NewImageSampler(240, 240)
	got := s.Sample(img)

	if len(got) != 1 {
		t.Fatalf("expected 1 sample, got %d: %v", len(got), got)
	}
	if got[0] != (Sample{X: 100, Y: 100}) {
		t.Errorf("expected sample (100,100), got %v", got[0])
	}
}

func TestSampleSkipsOddAndZeroCoordinates(t *testing.T) {
	img := filled(240, 240, color.White)
	img.Set(101, 140, color.Black) // odd x
	img.Set(100, 141, color.Black) // y = 99, odd
	img.Set(0, 140, color.Black)   // x = 0
	img.Set(10, 0, color.Black)    // row 0 -> y = 240, kept

	got := NewImageSampler(240, 240).Sample(img)
	if len(got) != 1 || got[0] != (Sample{X: 10, Y: 240}) {
		t.Errorf("expected only (10,240), got %v", got)
	}
}

func TestSampleEvenNonZeroProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	img := filled(64, 48, color.White)
	for i := 0; i < 800; i++ {
		img.Set(rng.Intn(64), rng.Intn(48), color.Black)
	}
	// Entire first column is ink but x = 0 must never be emitted.
	for y := 0; y < 48; y++ {
		img.Set(0, y, color.Black)
	}

	got := NewImageSampler(64, 48).Sample(img)
	if len(got) == 0 {
		t.Fatal("expected some samples")
	}
	seen := make(map[Sample]bool)
	for _, s := range got {
		if s.X == 0 || s.Y == 0 || s.X%2 != 0 || s.Y%2 != 0 {
			t.Errorf("sample %v is not even and non-zero", s)
		}
		if seen[s] {
			t.Errorf("duplicate sample %v", s)
		}
		seen[s] = true
	}
}

func TestSampleReverseScanOrder(t *testing.T) {
	img := filled(20, 20, color.White)
	img.Set(4, 2, color.Black)  // early in scan order, y = 18
	img.Set(6, 10, color.Black) // later in scan order, y = 10

	got := NewImageSampler(20, 20).Sample(img)
	want := []Sample{{X: 6, Y: 10}, {X: 4, Y: 18}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	img := filled(50, 50, color.White)
	for i := 0; i < 200; i++ {
		img.Set(rng.Intn(50), rng.Intn(50), color.Black)
	}

	a := NewImageSampler(50, 50).Sample(img)
	b := NewImageSampler(50, 50).Sample(img)
	if len(a) != len(b) {
		t.Fatalf("sample counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample[%d] differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSampleScalesToCanvas(t *testing.T) {
	img := filled(120, 120, color.Black)

	got := NewImageSampler(240, 240).Sample(img)

	// x in {2..238} even = 119 values, y in {2..240} even = 120 values
	if want := 119 * 120; len(got) != want {
		t.Errorf("expected %d samples from a solid black image, got %d", want, len(got))
	}
}

func TestSampleKeepsCanvasUnderTransparency(t *testing.T) {
	s := NewImageSampler(40, 40)
	mark := filled(40, 40, color.White)
	mark.Set(20, 20, color.Black)
	first := s.Sample(mark)

	clearImg := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	second := s.Sample(clearImg)

	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Errorf("transparent image should leave previous canvas: first=%v second=%v", first, second)
	}

	s.Reset()
	// A cleared canvas is transparent black, which reads as ink everywhere.
	if got := s.Sample(clearImg); len(got) != 19*20 {
		t.Errorf("expected %d samples after reset, got %d", 19*20, len(got))
	}
}

func TestSampleNilImagePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil image")
		}
	}()
	NewImageSampler(10, 10).Sample(nil)
}
