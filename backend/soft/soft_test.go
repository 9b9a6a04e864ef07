package soft

import (
	"image/color"
	"testing"

	"github.com/gogpu/tileatlas"
)

func solid(w, h int, c color.RGBA) *tileatlas.Pixmap {
	pm := tileatlas.NewPixmap(w, h)
	pm.Fill(c)
	return pm
}

func TestStore_ResizeSemantics(t *testing.T) {
	s := New()

	if !s.Resize(128, 1, 1) {
		t.Error("first Resize() = false, want true")
	}
	if s.Resize(128, 1, 1) {
		t.Error("same-geometry Resize() = true, want false")
	}
	if !s.Resize(128, 2, 1) {
		t.Error("layer-count change Resize() = false, want true")
	}
	if s.Size() != 128 || s.Layers() != 2 {
		t.Errorf("store geometry = %d px, %d layers", s.Size(), s.Layers())
	}
	if s.ResizeCount() != 2 {
		t.Errorf("ResizeCount() = %d, want 2", s.ResizeCount())
	}
}

func TestStore_MipPages(t *testing.T) {
	s := New()
	s.Resize(64, 1, 3)

	for m, want := range []int{64, 32, 16} {
		page := s.Page(0, m)
		if page == nil {
			t.Fatalf("Page(0, %d) = nil", m)
		}
		if w, h := page.Size(); w != want || h != want {
			t.Errorf("mip %d page = %dx%d, want %dx%d", m, w, h, want, want)
		}
	}
	if s.Page(1, 0) != nil || s.Page(0, 3) != nil || s.Page(-1, 0) != nil {
		t.Error("out-of-range Page() lookups should return nil")
	}
}

func TestStore_CompositesTiles(t *testing.T) {
	s := New()
	atlas, err := tileatlas.New(s.Resize, s.Modify)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	if _, err := atlas.Add(solid(64, 64, red), 0); err != nil {
		t.Fatalf("Add() = %v", err)
	}
	if _, err := atlas.Add(solid(64, 64, blue), 0); err != nil {
		t.Fatalf("Add() = %v", err)
	}
	if err := atlas.UpdateTexture(); err != nil {
		t.Fatalf("UpdateTexture() = %v", err)
	}

	page := s.Page(0, 0)
	if page == nil {
		t.Fatal("Page(0, 0) = nil after update")
	}
	if w, _ := page.Size(); w != 128 {
		t.Fatalf("page size = %d, want 128", w)
	}
	// First tile fills the (0,0) cell, second the (64,0) cell.
	if got := page.GetPixel(10, 10); got != red {
		t.Errorf("pixel in first tile = %v, want %v", got, red)
	}
	if got := page.GetPixel(70, 10); got != blue {
		t.Errorf("pixel in second tile = %v, want %v", got, blue)
	}
	// Untouched cells stay transparent.
	if got := page.GetPixel(10, 70); got != (color.RGBA{}) {
		t.Errorf("pixel in empty cell = %v, want transparent", got)
	}
	if s.WriteCount() != 2 {
		t.Errorf("WriteCount() = %d, want 2", s.WriteCount())
	}
}

func TestStore_ReuploadAfterGrowth(t *testing.T) {
	s := New()
	atlas, err := tileatlas.New(s.Resize, s.Modify)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	red := color.RGBA{R: 255, A: 255}
	if _, err := atlas.Add(solid(64, 64, red), 0); err != nil {
		t.Fatalf("Add() = %v", err)
	}
	_ = atlas.UpdateTexture()

	// Growing past the 2x2 grid reallocates the pages; the engine must
	// re-upload the old tile into the fresh 256px page.
	for i := 0; i < 4; i++ {
		if _, err := atlas.Add(solid(64, 64, red), 0); err != nil {
			t.Fatalf("Add() = %v", err)
		}
	}
	_ = atlas.UpdateTexture()

	page := s.Page(0, 0)
	if w, _ := page.Size(); w != 256 {
		t.Fatalf("page size = %d, want 256", w)
	}
	if got := page.GetPixel(10, 10); got != red {
		t.Errorf("first tile lost after reallocation: pixel = %v", got)
	}
	if got := page.GetPixel(130, 10); got != red {
		t.Errorf("fifth tile missing at (128,0) cell: pixel = %v", got)
	}
}
