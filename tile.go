package tileatlas

// tile is one registered image payload plus its placement bookkeeping.
// Tiles are heap nodes owned by the atlas; layers and handles keep raw
// pointers into them, so a tile is only ever touched through its pointer.
type tile struct {
	// images is the mip chain; level 0 is always present.
	images []Image

	// border is the padding thickness already baked into the image sizes.
	border int

	// name is the registry key for tiles added through AddNamed, so that
	// removal can drop the registry entry no matter which path removes
	// the tile. Empty for anonymous tiles.
	name string

	// wLog2/hLog2 identify the size class of the bordered level-0 image.
	wLog2 int
	hLog2 int

	layer *layer
	index int // slot within layer

	// written marks whether the modify callback ran for the current
	// backing-store generation. Cleared whenever the resize callback
	// reports an actual reallocation.
	written bool

	// handles lists every live TileHandle bound to this tile, so that
	// destroying the tile can null them all.
	handles []*TileHandle
}

// position derives the tile's pixel+layer coordinate from its slot index.
// Deriving instead of caching keeps positions correct when layer removal
// shifts later layers down in z.
func (t *tile) position() Position {
	return t.layer.position(t.index)
}

// register binds h to the tile.
func (t *tile) register(h *TileHandle) {
	h.t = t
	t.handles = append(t.handles, h)
}

// unregister unbinds h without invalidating the tile.
func (t *tile) unregister(h *TileHandle) {
	for i, cur := range t.handles {
		if cur == h {
			last := len(t.handles) - 1
			t.handles[i] = t.handles[last]
			t.handles[last] = nil
			t.handles = t.handles[:last]
			break
		}
	}
	h.t = nil
}

// invalidate nulls every live handle bound to the tile. This is the one
// handle transition not initiated by the handle itself and runs when the
// tile is removed from the atlas.
func (t *tile) invalidate() {
	for _, h := range t.handles {
		h.t = nil
	}
	t.handles = nil
}
