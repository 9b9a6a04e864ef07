// Package tileatlas packs image tiles into texture-atlas layers.
//
// # Overview
//
// tileatlas is a Pure Go online tile packer designed to integrate with the
// GoGPU ecosystem. Callers register image tiles of arbitrary sizes; the
// engine groups them into layers by power-of-two size class, places each
// tile on a Morton-order grid inside its layer, and tells a backing store
// what to allocate and where to upload through two injected callbacks.
// The engine itself never touches pixels, GPU state, or files.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/tileatlas"
//	    "github.com/gogpu/tileatlas/backend/soft"
//	)
//
//	store := soft.New()
//	atlas, err := tileatlas.New(store.Resize, store.Modify)
//	if err != nil { ... }
//
//	h, err := atlas.Add(tileatlas.FromImage(img), 0)
//	if err != nil { ... }
//
//	// Push pending tiles to the backing store.
//	_ = atlas.UpdateTexture()
//
//	pos, _ := h.Position() // pixel offset and layer of the tile
//
// # Backing stores
//
// The backend packages provide ready-made callback pairs:
//   - backend/soft: CPU compositing into Pixmap pages, useful for tests,
//     tooling and software rendering
//   - backend/wgputex: a 2D texture array managed through gogpu/wgpu
//   - backend/ebitentex: one ebiten.Image page per layer
//
// Any other store works by supplying the two callbacks directly.
//
// # Placement
//
// Slot indices map to grid cells in Z-order (Morton order), adjusted for
// non-square size classes, so partially filled layers stay roughly square.
// Removals leave gaps that later insertions fill before the layer grows;
// removing a layer's last tile erases the layer and shifts later layers
// down, keeping the z dimension tightly packed.
//
// # Lifecycle
//
// Tiles are referenced through invalidation-aware handles: removing a tile
// empties every handle bound to it instead of leaving them dangling.
// Freeze performs a final upload, drops all payloads, and returns a
// read-only lookup facade.
package tileatlas

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
