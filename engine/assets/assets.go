// Package assets resolves and reads files under the game's assets folder.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// Root is the folder asset paths are resolved against.
var Root = "assets"

// Path joins kind ("fonts", "icons", ...) and name under Root.
func Path(kind, name string) string {
	return filepath.Join(Root, kind, name)
}

// Read returns the contents of an asset.
func Read(kind, name string) ([]byte, error) {
	path := Path(kind, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load asset %q: %w", path, err)
	}
	return b, nil
}

// LoadPNG decodes a PNG asset into a tightly packed RGBA image.
func LoadPNG(kind, name string) (*image.RGBA, error) {
	path := Path(kind, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
