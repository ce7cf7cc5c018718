package images

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.png", true},
		{"b.JPG", true},
		{"c.jpeg", true},
		{"d.webp", true},
		{"e.bmp", true},
		{"f.gif", true},
		{"notes.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsImageFile(tt.name); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLoadDirSortedByName(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), color.White)
	writePNG(t, filepath.Join(dir, "a.png"), color.Black)
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("skip"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 images, got %d", c.Len())
	}
	if c.Name(0) != "a.png" || c.Name(1) != "b.png" {
		t.Errorf("unexpected order %q, %q", c.Name(0), c.Name(1))
	}
	if r, _, _, _ := c.At(0).At(0, 0).RGBA(); r != 0 {
		t.Errorf("a.png should be black, red = %d", r)
	}
	if c.IndexOf("b.png") != 1 || c.IndexOf("missing.png") != -1 {
		t.Error("IndexOf returned unexpected results")
	}
}

func TestLoadDirErrors(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("expected error for directory without images")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); err == nil {
		t.Error("expected decode error for a corrupt file")
	}
}

func TestReplace(t *testing.T) {
	c := Builtin(16, 16)
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	c.Replace(2, img)
	if c.At(2) != image.Image(img) {
		t.Error("Replace did not swap the image")
	}
}

func TestBuiltinShapesHaveInk(t *testing.T) {
	c := Builtin(240, 240)
	if c.Len() != 4 {
		t.Fatalf("expected 4 builtin images, got %d", c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		img := c.At(i)
		var ink, paper int
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if r, _, _, _ := img.At(x, y).RGBA(); r == 0 {
					ink++
				} else {
					paper++
				}
			}
		}
		if ink == 0 || paper == 0 {
			t.Errorf("%s: ink=%d paper=%d, want both non-zero", c.Name(i), ink, paper)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	if err != nil {
		t.Skip("fsnotify not supported: ", err)
	}
	defer w.Close()

	writePNG(t, filepath.Join(dir, "slide.png"), color.Black)

	deadline := time.After(5 * time.Second)
	for {
		select {
		case u := <-w.Updates():
			if u.Name != "slide.png" {
				t.Fatalf("unexpected update for %q", u.Name)
			}
			// Early events can catch a half-written file
			if u.Err == nil && u.Image != nil {
				return
			}
		case <-deadline:
			t.Fatal("timeout waiting for image update")
		}
	}
}
