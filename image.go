package tileatlas

import "fmt"

// Position locates a tile inside the composite texture: a pixel offset
// within layer Z of the backing texture array.
type Position struct {
	X int
	Y int
	Z int
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d layer %d)", p.X, p.Y, p.Z)
}

// Image is the payload contract the atlas requires from tile images.
// The atlas never inspects pixels; it only needs dimensions, a data/no-data
// flag, and the ability to drop the payload after upload.
type Image interface {
	// Size returns the pixel dimensions. It must keep reporting the same
	// values after Free.
	Size() (w, h int)

	// HasData reports whether the payload is still present.
	HasData() bool

	// Free drops the payload but keeps the dimensions. Called by Freeze
	// after the final upload.
	Free()
}

// PixelSource is implemented by payloads that expose raw RGBA8 bytes in
// row-major order, 4 bytes per pixel. Backing-store adapters need it to
// perform the actual upload; *Pixmap satisfies it.
type PixelSource interface {
	Image

	// Data returns the raw pixel data, or nil after Free.
	Data() []uint8
}

// ResizeFn (re)allocates the backing store to hold a size x size x layers
// texture array with the given mip level count. It returns whether an
// actual reallocation occurred; true invalidates everything uploaded so far
// and forces re-upload on the next update pass.
type ResizeFn func(size, layers, mipLevels int) bool

// ModifyFn uploads one tile image into the backing store at the given
// offset and mip level. The callback must not retain img beyond the call.
type ModifyFn func(img Image, pos Position, mipLevel int)
