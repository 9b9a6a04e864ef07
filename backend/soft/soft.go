// Package soft provides a pure-CPU backing store for tileatlas: the
// composite texture array is a set of Pixmap pages, one per layer and mip
// level. It needs no GPU and is what the tests and tooling build on.
package soft

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/tileatlas"
)

// Store composites uploaded tiles into in-memory pages. Bind its method
// values when creating the atlas:
//
//	store := soft.New()
//	atlas, err := tileatlas.New(store.Resize, store.Modify)
//
// Store follows the atlas's single-thread contract.
type Store struct {
	size int
	mips int

	// pages[layer][mip] is the composite image of one z-slice at one mip
	// level.
	pages [][]*tileatlas.Pixmap

	// Statistics
	resizeCount int
	writeCount  int
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Resize implements the atlas resize callback. It reallocates the pages
// when the requested geometry differs from the current one and reports
// whether it did; prior contents do not survive a reallocation.
func (s *Store) Resize(size, layers, mipLevels int) bool {
	if size == s.size && layers == len(s.pages) && mipLevels == s.mips {
		return false
	}
	pages := make([][]*tileatlas.Pixmap, layers)
	for z := range pages {
		pages[z] = make([]*tileatlas.Pixmap, mipLevels)
		for m := range pages[z] {
			edge := size >> m
			if edge < 1 {
				edge = 1
			}
			pages[z][m] = tileatlas.NewPixmap(edge, edge)
		}
	}
	s.size = size
	s.mips = mipLevels
	s.pages = pages
	s.resizeCount++
	return true
}

// Modify implements the atlas modify callback: it blits the tile image
// into the addressed page. Payloads that are not image.Image are skipped
// with a warning; *tileatlas.Pixmap always qualifies.
func (s *Store) Modify(img tileatlas.Image, pos tileatlas.Position, mipLevel int) {
	src, ok := img.(image.Image)
	if !ok {
		tileatlas.Logger().Warn("soft: payload does not expose pixels, upload skipped",
			"pos", pos, "mipLevel", mipLevel)
		return
	}
	if pos.Z < 0 || pos.Z >= len(s.pages) || mipLevel < 0 || mipLevel >= s.mips {
		return
	}
	dst := s.pages[pos.Z][mipLevel]
	draw.Copy(dst, image.Pt(pos.X, pos.Y), src, src.Bounds(), draw.Src, nil)
	s.writeCount++
}

// Size returns the current page edge length at mip level 0.
func (s *Store) Size() int { return s.size }

// Layers returns the current layer count.
func (s *Store) Layers() int { return len(s.pages) }

// Page returns the composite image of one layer at one mip level, or nil
// if the store has not been sized to cover it.
func (s *Store) Page(layer, mipLevel int) *tileatlas.Pixmap {
	if layer < 0 || layer >= len(s.pages) || mipLevel < 0 || mipLevel >= s.mips {
		return nil
	}
	return s.pages[layer][mipLevel]
}

// ResizeCount returns how many reallocations have occurred.
func (s *Store) ResizeCount() int { return s.resizeCount }

// WriteCount returns how many tile uploads have been applied.
func (s *Store) WriteCount() int { return s.writeCount }
