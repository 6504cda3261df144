package render

import (
	"image"
	"image/color"
	"testing"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestFillRectClipsToSurface(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.FillRect(-5, -5, 8, 8, red)

	if got := fb.At(2, 2); got != red {
		t.Fatalf("expected red inside clipped rect, got %v", got)
	}
	if got := fb.At(3, 3); got == red {
		t.Fatalf("fill leaked outside rect at (3,3)")
	}
}

func TestStrokeRectLeavesInteriorUntouched(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.StrokeRect(0, 0, 10, 10, 1, blue)

	for _, p := range []image.Point{{0, 0}, {9, 0}, {0, 9}, {9, 9}, {5, 0}} {
		if got := fb.At(p.X, p.Y); got != blue {
			t.Fatalf("expected border at %v, got %v", p, got)
		}
	}
	if got := fb.At(5, 5); got == blue {
		t.Fatalf("interior was stroked")
	}
}

func TestSnapshotBlitRoundTrip(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	fb.Clear(blue)
	fb.FillRect(4, 4, 2, 2, red)

	region := image.Rect(3, 3, 8, 8)
	snap := fb.Snapshot(region)
	if snap.W != 5 || snap.H != 5 {
		t.Fatalf("unexpected snapshot size %dx%d", snap.W, snap.H)
	}
	if got := snap.At(1, 1); got != red {
		t.Fatalf("snapshot lost contents, got %v", got)
	}

	fb.FillRect(3, 3, 5, 5, color.RGBA{0, 255, 0, 255})
	fb.Blit(snap, region.Min.X, region.Min.Y)

	if got := fb.At(4, 4); got != red {
		t.Fatalf("restore failed at (4,4): %v", got)
	}
	if got := fb.At(7, 7); got != blue {
		t.Fatalf("restore failed at (7,7): %v", got)
	}
}

func TestSnapshotOffscreenRegionIsTransparent(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.Clear(red)

	snap := fb.Snapshot(image.Rect(-2, -2, 2, 2))
	if got := snap.At(0, 0); got.A != 0 {
		t.Fatalf("expected transparent offscreen pixel, got %v", got)
	}
	if got := snap.At(3, 3); got != red {
		t.Fatalf("expected copied pixel, got %v", got)
	}
}
