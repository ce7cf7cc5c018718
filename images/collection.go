// Package images provides the indexed image sources shown by the carousel.
package images

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Collection is an ordered set of decoded images addressed by slide index.
type Collection struct {
	names  []string
	images []image.Image
}

// NewCollection pairs names with images. Panics if the lengths differ.
func NewCollection(names []string, imgs []image.Image) *Collection {
	if len(names) != len(imgs) {
		panic(fmt.Sprintf("images: %d names for %d images", len(names), len(imgs)))
	}
	return &Collection{names: names, images: imgs}
}

// Len returns the number of images.
func (c *Collection) Len() int { return len(c.images) }

// At returns the image at index i.
func (c *Collection) At(i int) image.Image { return c.images[i] }

// Name returns the name of image i.
func (c *Collection) Name(i int) string { return c.names[i] }

// IndexOf returns the index of the named image, or -1.
func (c *Collection) IndexOf(name string) int {
	for i, n := range c.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Replace swaps the image at index i.
func (c *Collection) Replace(i int, img image.Image) {
	c.images[i] = img
}

var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// IsImageFile reports whether name has a decodable image extension.
func IsImageFile(name string) bool {
	return extensions[strings.ToLower(filepath.Ext(name))]
}

// Decode reads and decodes one image file.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// LoadDir decodes every image file in dir, ordered by file name.
func LoadDir(dir string) (*Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && IsImageFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no images found in %s", dir)
	}

	imgs := make([]image.Image, len(names))
	for i, name := range names {
		img, err := Decode(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		imgs[i] = img
	}
	return NewCollection(names, imgs), nil
}
