// Package ebitentex provides a tileatlas backing store for ebiten games:
// one ebiten.Image page per atlas layer, with tile uploads applied through
// SubImage + WritePixels.
//
// Ebiten manages mipmaps internally, so only mip level 0 is stored;
// configure the atlas with the default single mip level.
package ebitentex

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/tileatlas"
)

// Store keeps the composite pages as ebiten images. Bind its method values
// when creating the atlas:
//
//	store := ebitentex.New()
//	atlas, err := tileatlas.New(store.Resize, store.Modify)
//
// Store follows the atlas's single-thread contract; drive atlas updates
// from the game's Update loop.
type Store struct {
	size  int
	pages []*ebiten.Image
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Resize implements the atlas resize callback. Changing geometry
// deallocates the old pages and creates fresh ones; their prior contents
// do not survive.
func (s *Store) Resize(size, layers, mipLevels int) bool {
	if size == s.size && layers == len(s.pages) {
		return false
	}
	for _, page := range s.pages {
		page.Deallocate()
	}
	pages := make([]*ebiten.Image, layers)
	for z := range pages {
		pages[z] = ebiten.NewImage(size, size)
	}
	s.size = size
	s.pages = pages
	return true
}

// Modify implements the atlas modify callback. Mip levels other than 0 are
// ignored; payloads that do not implement tileatlas.PixelSource are
// skipped with a warning.
func (s *Store) Modify(img tileatlas.Image, pos tileatlas.Position, mipLevel int) {
	if mipLevel != 0 || pos.Z < 0 || pos.Z >= len(s.pages) {
		return
	}
	src, ok := img.(tileatlas.PixelSource)
	if !ok {
		tileatlas.Logger().Warn("ebitentex: payload does not expose raw pixels, upload skipped",
			"pos", pos)
		return
	}
	w, h := src.Size()
	rect := image.Rect(pos.X, pos.Y, pos.X+w, pos.Y+h)
	sub := s.pages[pos.Z].SubImage(rect).(*ebiten.Image)
	sub.WritePixels(src.Data())
}

// Size returns the current page edge length.
func (s *Store) Size() int { return s.size }

// Pages returns the layer pages for drawing. The slice is replaced, not
// mutated, on resize.
func (s *Store) Pages() []*ebiten.Image { return s.pages }
