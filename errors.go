package tileatlas

import (
	"errors"
	"fmt"
)

// Atlas-related errors.
var (
	// ErrNoPixelData is returned when a tile is added with a nil image or
	// one whose payload has already been freed.
	ErrNoPixelData = errors.New("tileatlas: image has no pixel data")

	// ErrInvalidHandle is returned when an empty handle, or a handle that
	// belongs to a different atlas, is passed to Remove.
	ErrInvalidHandle = errors.New("tileatlas: handle is empty or not from this atlas")

	// ErrFrozen is returned when mutating an atlas after Freeze.
	ErrFrozen = errors.New("tileatlas: atlas is frozen")

	// ErrNameTaken is returned by AddNamed when the name is already bound
	// to a live tile.
	ErrNameTaken = errors.New("tileatlas: tile name already in use")

	// ErrBorderInvalid is returned when a tile's border is negative or
	// leaves no interior pixels.
	ErrBorderInvalid = errors.New("tileatlas: border padding does not fit the image")

	// ErrMipChainMismatch is returned when a mip chain's level sizes do not
	// halve from one level to the next.
	ErrMipChainMismatch = errors.New("tileatlas: mip chain sizes do not halve")
)

// TileTooLargeError reports an image that cannot fit a single layer because
// its padded power-of-two cell exceeds the atlas texture size limit.
type TileTooLargeError struct {
	Width  int // bordered image width in pixels
	Height int // bordered image height in pixels
	Max    int // atlas MaxTextureSize
}

func (e *TileTooLargeError) Error() string {
	return fmt.Sprintf("tileatlas: %dx%d tile exceeds max texture size %d", e.Width, e.Height, e.Max)
}

// CapacityError reports that placing a tile would require a new size-class
// layer beyond the configured layer limit.
type CapacityError struct {
	Layers int // current layer count
	Max    int // atlas MaxLayerCount
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("tileatlas: tile needs a new layer but all %d of %d layers are in use", e.Layers, e.Max)
}

// LimitError reports an invalid atlas configuration value.
type LimitError struct {
	Field  string
	Reason string
}

func (e *LimitError) Error() string {
	return "tileatlas: invalid config." + e.Field + ": " + e.Reason
}
