package tileatlas

// TileHandle is a non-owning, invalidation-aware reference to a tile.
// Handles are either empty or bound; removing the tile from its atlas (or
// a dangling Reset) transitions a bound handle back to empty, so a handle
// never dereferences a destroyed tile.
//
// Handles are created by [Atlas.Add] and shared via [TileHandle.Clone];
// passing the pointer around is the moved-handle case and needs no
// bookkeeping. The zero value is an empty handle.
//
// Handles follow the atlas's single-thread contract: they must not be
// cloned, reset or queried concurrently with atlas mutation.
type TileHandle struct {
	t *tile
}

// Empty reports whether the handle is unbound. A nil handle is empty.
func (h *TileHandle) Empty() bool {
	return h == nil || h.t == nil
}

// Reset unbinds the handle. Resetting an empty handle is a no-op.
func (h *TileHandle) Reset() {
	if h == nil || h.t == nil {
		return
	}
	h.t.unregister(h)
}

// Clone returns a new handle bound to the same tile. Cloning an empty
// handle returns an empty handle.
func (h *TileHandle) Clone() *TileHandle {
	c := &TileHandle{}
	if !h.Empty() {
		h.t.register(c)
	}
	return c
}

// Equal reports whether two handles reference the same tile record, or are
// both empty.
func (h *TileHandle) Equal(o *TileHandle) bool {
	if h.Empty() {
		return o.Empty()
	}
	return !o.Empty() && h.t == o.t
}

// Position returns the tile's current pixel+layer coordinate. ok is false
// for empty handles.
func (h *TileHandle) Position() (pos Position, ok bool) {
	if h.Empty() {
		return Position{}, false
	}
	return h.t.position(), true
}

// Size returns the bordered pixel size of the tile's level-0 image, or
// (0, 0) for empty handles.
func (h *TileHandle) Size() (w, ht int) {
	if h.Empty() {
		return 0, 0
	}
	return h.t.images[0].Size()
}

// Border returns the tile's border padding thickness in pixels, or 0 for
// empty handles.
func (h *TileHandle) Border() int {
	if h.Empty() {
		return 0
	}
	return h.t.border
}
