package tileatlas

import (
	"image"
	"image/color"
	"testing"
)

func TestPixmap_PixelAccess(t *testing.T) {
	pm := NewPixmap(10, 10)
	red := color.RGBA{R: 255, A: 255}
	pm.SetPixel(5, 5, red)

	if got := pm.GetPixel(5, 5); got != red {
		t.Errorf("GetPixel(5, 5) = %v, want %v", got, red)
	}

	// Out-of-bounds writes are silently ignored.
	for _, c := range []struct{ x, y int }{{-1, 5}, {10, 5}, {5, -1}, {5, 10}} {
		pm.SetPixel(c.x, c.y, red)
		if got := pm.GetPixel(c.x, c.y); got != (color.RGBA{}) {
			t.Errorf("GetPixel(%d, %d) = %v, want transparent", c.x, c.y, got)
		}
	}
}

func TestPixmap_FreeKeepsSize(t *testing.T) {
	pm := NewPixmap(8, 4)
	pm.Fill(color.RGBA{R: 1, G: 2, B: 3, A: 4})

	if !pm.HasData() {
		t.Fatal("HasData() = false before Free")
	}
	pm.Free()
	if pm.HasData() {
		t.Error("HasData() = true after Free")
	}
	if w, h := pm.Size(); w != 8 || h != 4 {
		t.Errorf("Size() = %dx%d after Free, want 8x4", w, h)
	}
	if pm.Data() != nil {
		t.Error("Data() != nil after Free")
	}
	// Accessors degrade gracefully.
	pm.SetPixel(0, 0, color.RGBA{A: 255})
	if got := pm.GetPixel(0, 0); got != (color.RGBA{}) {
		t.Errorf("GetPixel after Free = %v, want transparent", got)
	}
}

func TestPixmap_SubRect(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(2, 1, color.RGBA{G: 255, A: 255})

	sub := pm.SubRect(image.Rect(1, 1, 3, 3))
	if w, h := sub.Size(); w != 2 || h != 2 {
		t.Fatalf("SubRect size = %dx%d, want 2x2", w, h)
	}
	if got := sub.GetPixel(1, 0); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("SubRect pixel = %v, want green", got)
	}

	// Rectangles are clipped to the source bounds.
	clipped := pm.SubRect(image.Rect(2, 2, 10, 10))
	if w, h := clipped.Size(); w != 2 || h != 2 {
		t.Errorf("clipped SubRect size = %dx%d, want 2x2", w, h)
	}
}

func TestPixmap_BorderedWraps(t *testing.T) {
	// 2x2 checkerboard: the border must replicate the opposite edge.
	pm := NewPixmap(2, 2)
	a := color.RGBA{R: 255, A: 255}
	b := color.RGBA{B: 255, A: 255}
	pm.SetPixel(0, 0, a)
	pm.SetPixel(1, 0, b)
	pm.SetPixel(0, 1, b)
	pm.SetPixel(1, 1, a)

	out := pm.Bordered(1)
	if w, h := out.Size(); w != 4 || h != 4 {
		t.Fatalf("Bordered size = %dx%d, want 4x4", w, h)
	}

	// Interior is the original image shifted by the border.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if out.GetPixel(x+1, y+1) != pm.GetPixel(x, y) {
				t.Errorf("interior pixel (%d, %d) not preserved", x, y)
			}
		}
	}
	// With a 2x2 source and border 1, every border pixel wraps to the
	// opposite source row/column.
	cases := []struct{ bx, by, sx, sy int }{
		{0, 0, 1, 1}, // top-left corner wraps to bottom-right
		{3, 0, 0, 1}, // top-right corner wraps to bottom-left
		{0, 3, 1, 0},
		{3, 3, 0, 0},
		{1, 0, 0, 1}, // top edge wraps to bottom row
		{2, 3, 1, 0}, // bottom edge wraps to top row
		{0, 1, 1, 0}, // left edge wraps to right column
		{3, 2, 0, 1}, // right edge wraps to left column
	}
	for _, c := range cases {
		if got, want := out.GetPixel(c.bx, c.by), pm.GetPixel(c.sx, c.sy); got != want {
			t.Errorf("border pixel (%d, %d) = %v, want source (%d, %d) = %v",
				c.bx, c.by, got, c.sx, c.sy, want)
		}
	}

	// Non-positive borders return a plain copy.
	if w, h := pm.Bordered(0).Size(); w != 2 || h != 2 {
		t.Errorf("Bordered(0) size = %dx%d, want 2x2", w, h)
	}
}

func TestPixmap_FromImageRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	pm := FromImage(img)
	if w, h := pm.Size(); w != 3 || h != 2 {
		t.Fatalf("FromImage size = %dx%d, want 3x2", w, h)
	}
	if got := pm.GetPixel(2, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("FromImage pixel = %v", got)
	}

	back := pm.ToImage()
	if got := back.RGBAAt(2, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("ToImage pixel = %v", got)
	}
}
