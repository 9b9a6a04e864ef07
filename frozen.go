package tileatlas

// Frozen is the read-only facade returned by [Atlas.Freeze]. Tile payloads
// are gone, but placement metadata survives: handles keep resolving to
// positions and sizes, and named lookup still works. No mutation of any
// kind is possible.
type Frozen struct {
	atlas *Atlas
}

// Contains reports whether the handle refers to a tile of the frozen atlas.
func (f *Frozen) Contains(h *TileHandle) bool {
	return f.atlas.Contains(h)
}

// Handle returns a new handle to the named tile, or an empty handle when
// the name is unknown.
func (f *Frozen) Handle(name string) *TileHandle {
	return f.atlas.Handle(name)
}

// Exists reports whether a tile is bound to the name.
func (f *Frozen) Exists(name string) bool {
	return f.atlas.Exists(name)
}

// Len returns the number of tiles.
func (f *Frozen) Len() int {
	return f.atlas.Len()
}

// NumLayers returns the number of size-class layers.
func (f *Frozen) NumLayers() int {
	return f.atlas.NumLayers()
}

// RequiredSize returns the texture edge length of the final upload.
func (f *Frozen) RequiredSize() int {
	return f.atlas.RequiredSize()
}
