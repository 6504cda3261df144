package text

import (
	"image/color"
	"testing"

	"github.com/hubastard/grove-dialogs/engine/render"
)

func loadDefault(t *testing.T) *Font {
	t.Helper()
	f, err := Default(13)
	if err != nil {
		t.Fatalf("load default font: %v", err)
	}
	t.Cleanup(f.Close)
	return f
}

func TestMeasureTextEmpty(t *testing.T) {
	f := loadDefault(t)
	if w, h := MeasureText(f, ""); w != 0 || h != 0 {
		t.Fatalf("expected 0x0 for empty string, got %dx%d", w, h)
	}
}

func TestMeasureTextGrowsWithContent(t *testing.T) {
	f := loadDefault(t)
	short := MeasureWidth(f, "OK")
	long := MeasureWidth(f, "Cancel everything")
	if short <= 0 || long <= short {
		t.Fatalf("expected widths to grow with text: %d vs %d", short, long)
	}
}

func TestMeasureTextMultiline(t *testing.T) {
	f := loadDefault(t)
	w1, h1 := MeasureText(f, "first line")
	w2, h2 := MeasureText(f, "first line\nsecond")
	if h2 != 2*h1 {
		t.Fatalf("expected two line heights, got %d vs %d", h2, h1)
	}
	if w2 != w1 {
		t.Fatalf("width should be the widest line: %d vs %d", w2, w1)
	}
}

func TestDrawTextMarksPixels(t *testing.T) {
	f := loadDefault(t)
	fb := render.NewFrameBuffer(64, 32)
	DrawText(fb, f, 2, 2, "Hi", color.RGBA{255, 255, 255, 255})

	found := false
	for _, v := range fb.Pixels() {
		if v != 0 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected glyph coverage in framebuffer")
	}
}
