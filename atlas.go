package tileatlas

import (
	"math/bits"
)

// Atlas packs image tiles into the layers of an abstract texture array and
// synchronizes the result with a backing store through two injected
// callbacks. It owns all tile and layer records; callers refer to tiles
// only through [TileHandle] values.
//
// An Atlas is not safe for concurrent use. All operations run to completion
// on the calling goroutine; callers needing concurrent access must
// serialize externally.
type Atlas struct {
	cfg    config
	resize ResizeFn
	modify ModifyFn

	// maxLog2 is floor(log2(cfg.maxTextureSize)): the largest usable
	// power-of-two texture edge.
	maxLog2 int

	layers []*layer
	names  map[string]*TileHandle

	frozen bool
}

// New creates an atlas bound to a backing store via its resize and modify
// callbacks. Method values of the backend stores (for example
// soft.Store.Resize) bind directly.
func New(resize ResizeFn, modify ModifyFn, opts ...Option) (*Atlas, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if resize == nil {
		return nil, &LimitError{Field: "ResizeFn", Reason: "must not be nil"}
	}
	if modify == nil {
		return nil, &LimitError{Field: "ModifyFn", Reason: "must not be nil"}
	}
	return &Atlas{
		cfg:     cfg,
		resize:  resize,
		modify:  modify,
		maxLog2: bits.Len(uint(cfg.maxTextureSize)) - 1,
		names:   map[string]*TileHandle{},
	}, nil
}

// MaxTextureSize returns the configured texture edge limit.
func (a *Atlas) MaxTextureSize() int { return a.cfg.maxTextureSize }

// MaxLayerCount returns the configured layer limit.
func (a *Atlas) MaxLayerCount() int { return a.cfg.maxLayerCount }

// Len returns the number of live tiles.
func (a *Atlas) Len() int {
	n := 0
	for _, l := range a.layers {
		n += l.count
	}
	return n
}

// NumLayers returns the number of size-class layers currently allocated.
func (a *Atlas) NumLayers() int { return len(a.layers) }

// RequiredSize returns the texture edge length the backing store must
// currently provide, or 0 for an empty atlas.
func (a *Atlas) RequiredSize() int {
	sizeLog2 := -1
	for _, l := range a.layers {
		if s := l.requiredSizeLog2(); s > sizeLog2 {
			sizeLog2 = s
		}
	}
	if sizeLog2 < 0 {
		return 0
	}
	return 1 << sizeLog2
}

// Add registers one image tile and returns a handle to it. The image's
// size must already include border pixels of padding on every side.
//
// Add fails without touching atlas state when the image is nil or carries
// no data, the border does not fit the image, the padded power-of-two cell
// exceeds MaxTextureSize, or placement would exceed MaxLayerCount.
func (a *Atlas) Add(img Image, border int) (*TileHandle, error) {
	return a.add([]Image{img}, border)
}

// AddMipmapped registers a tile with an explicit mip chain; imgs[0] is
// level 0 and each subsequent level must halve in size (rounding down,
// minimum 1 pixel). The chain may not exceed the configured mip level
// count.
func (a *Atlas) AddMipmapped(imgs []Image, border int) (*TileHandle, error) {
	return a.add(imgs, border)
}

func (a *Atlas) add(imgs []Image, border int) (*TileHandle, error) {
	t, err := a.validate(imgs, border)
	if err != nil {
		return nil, err
	}
	l, err := a.layerFor(t)
	if err != nil {
		return nil, err
	}
	l.place(t)
	h := &TileHandle{}
	t.register(h)
	return h, nil
}

// validate performs every argument check for add before any state changes,
// preserving the strong guarantee.
func (a *Atlas) validate(imgs []Image, border int) (*tile, error) {
	if a.frozen {
		return nil, ErrFrozen
	}
	if len(imgs) == 0 || imgs[0] == nil || !imgs[0].HasData() {
		return nil, ErrNoPixelData
	}
	if len(imgs) > a.cfg.mipLevels {
		return nil, ErrMipChainMismatch
	}
	w, h := imgs[0].Size()
	if border < 0 || w-2*border < 1 || h-2*border < 1 {
		return nil, ErrBorderInvalid
	}
	for m := 1; m < len(imgs); m++ {
		if imgs[m] == nil || !imgs[m].HasData() {
			return nil, ErrNoPixelData
		}
		mw, mh := imgs[m].Size()
		if mw != max(w>>m, 1) || mh != max(h>>m, 1) {
			return nil, ErrMipChainMismatch
		}
	}
	wLog2 := ceilLog2(w)
	hLog2 := ceilLog2(h)
	if wLog2 > a.maxLog2 || hLog2 > a.maxLog2 {
		return nil, &TileTooLargeError{Width: w, Height: h, Max: a.cfg.maxTextureSize}
	}
	return &tile{
		images: imgs,
		border: border,
		wLog2:  wLog2,
		hLog2:  hLog2,
	}, nil
}

// layerFor finds a non-full layer of t's size class and border, creating
// one if the layer budget allows.
func (a *Atlas) layerFor(t *tile) (*layer, error) {
	for _, l := range a.layers {
		if l.matches(t.wLog2, t.hLog2, t.border) && !l.full() {
			return l, nil
		}
	}
	if len(a.layers) >= a.cfg.maxLayerCount {
		return nil, &CapacityError{Layers: len(a.layers), Max: a.cfg.maxLayerCount}
	}
	l := newLayer(a, t.wLog2, t.hLog2, t.border, len(a.layers), a.maxLog2)
	a.layers = append(a.layers, l)
	Logger().Debug("tileatlas: layer created",
		"z", l.z, "tileWidth", 1<<t.wLog2, "tileHeight", 1<<t.hLog2, "border", t.border)
	return l, nil
}

// AddNamed registers a tile under a name for later lookup instead of
// returning the handle. It fails with ErrNameTaken while the name is bound
// to a live tile.
func (a *Atlas) AddNamed(name string, img Image, border int) error {
	if a.Exists(name) {
		return ErrNameTaken
	}
	h, err := a.Add(img, border)
	if err != nil {
		return err
	}
	h.t.name = name
	a.names[name] = h
	return nil
}

// Handle returns a new handle to the named tile, or an empty handle when
// the name is unknown or its tile has been removed.
func (a *Atlas) Handle(name string) *TileHandle {
	return a.names[name].Clone()
}

// Exists reports whether a live tile is bound to the name.
func (a *Atlas) Exists(name string) bool {
	return !a.names[name].Empty()
}

// RemoveNamed removes the named tile, reporting whether a live tile was
// bound to the name.
func (a *Atlas) RemoveNamed(name string) bool {
	if a.frozen {
		return false
	}
	return a.TryRemove(a.names[name])
}

// Contains reports whether the handle refers to a live tile of this atlas.
func (a *Atlas) Contains(h *TileHandle) bool {
	return !h.Empty() && h.t.layer != nil && h.t.layer.atlas == a
}

// Remove destroys the tile behind h. Every handle bound to the tile,
// including h, becomes empty. It fails with ErrInvalidHandle when h is
// empty or belongs to another atlas.
func (a *Atlas) Remove(h *TileHandle) error {
	if a.frozen {
		return ErrFrozen
	}
	if !a.Contains(h) {
		return ErrInvalidHandle
	}
	a.removeTile(h.t)
	return nil
}

// TryRemove is the non-erroring variant of Remove: it reports false
// instead of failing on an empty or foreign handle.
func (a *Atlas) TryRemove(h *TileHandle) bool {
	if a.frozen || !a.Contains(h) {
		return false
	}
	a.removeTile(h.t)
	return true
}

func (a *Atlas) removeTile(t *tile) {
	l := t.layer
	l.remove(t)
	t.invalidate()
	if t.name != "" {
		delete(a.names, t.name)
	}
	if l.count > 0 {
		return
	}
	// Layers are tightly packed in z: erase the empty layer and shift
	// every later layer down.
	a.layers = append(a.layers[:l.z], a.layers[l.z+1:]...)
	for _, rest := range a.layers[l.z:] {
		rest.z--
	}
	Logger().Debug("tileatlas: layer removed", "z", l.z, "layers", len(a.layers))
}

// UpdateTexture synchronizes pending tiles to the backing store: it first
// ensures the store is large enough (a reallocation invalidates everything
// written so far), then uploads every tile not yet written for the current
// store generation. It is repeatable; with no changes it issues no modify
// calls.
func (a *Atlas) UpdateTexture() error {
	if a.frozen {
		return ErrFrozen
	}
	a.sync(false)
	return nil
}

// Freeze performs a final UpdateTexture, frees every tile payload
// (regardless of write history), and returns a read-only facade. The atlas
// itself permanently rejects further mutation with ErrFrozen.
func (a *Atlas) Freeze() (*Frozen, error) {
	if a.frozen {
		return nil, ErrFrozen
	}
	a.sync(true)
	a.frozen = true
	Logger().Debug("tileatlas: frozen", "tiles", a.Len(), "layers", len(a.layers))
	return &Frozen{atlas: a}, nil
}

func (a *Atlas) sync(freeing bool) {
	if len(a.layers) > 0 {
		size := a.RequiredSize()
		if a.resize(size, len(a.layers), a.cfg.mipLevels) {
			for _, l := range a.layers {
				l.invalidate()
			}
			Logger().Debug("tileatlas: backing store resized",
				"size", size, "layers", len(a.layers), "mipLevels", a.cfg.mipLevels)
		}
	}
	for _, l := range a.layers {
		l.draw(a.modify, freeing)
	}
}

// ceilLog2 returns the smallest n with 1<<n >= v; v must be positive.
func ceilLog2(v int) int {
	return bits.Len(uint(v - 1))
}
