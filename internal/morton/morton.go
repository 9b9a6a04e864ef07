// Package morton implements the bit-interleaved slot-index to grid-cell
// codec used to place tiles inside an atlas layer.
//
// Indices fill the grid in Z-order (Morton order), so a partially filled
// layer stays roughly square instead of growing row by row. For non-square
// tile size classes the low-order index bits are absorbed by the axis
// perpendicular to the tile's long side before interleaving resumes, which
// keeps the layer's pixel footprint square-ish as well.
package morton

import "math/bits"

// spread distributes the low 32 bits of v so that bit i of the input ends
// up at bit 2i of the output, with zeros in between.
func spread(v uint64) uint64 {
	v &= 0x00000000ffffffff
	v = (v | v<<16) & 0x0000ffff0000ffff
	v = (v | v<<8) & 0x00ff00ff00ff00ff
	v = (v | v<<4) & 0x0f0f0f0f0f0f0f0f
	v = (v | v<<2) & 0x3333333333333333
	v = (v | v<<1) & 0x5555555555555555
	return v
}

// compact is the inverse of spread: it gathers the even bits of v into the
// low 32 bits of the result.
func compact(v uint64) uint64 {
	v &= 0x5555555555555555
	v = (v | v>>1) & 0x3333333333333333
	v = (v | v>>2) & 0x0f0f0f0f0f0f0f0f
	v = (v | v>>4) & 0x00ff00ff00ff00ff
	v = (v | v>>8) & 0x0000ffff0000ffff
	v = (v | v>>16) & 0x00000000ffffffff
	return v
}

// Interleave combines x and y into a single Morton code, x on even bits and
// y on odd bits.
func Interleave(x, y uint64) uint64 {
	return spread(x) | spread(y)<<1
}

// Deinterleave splits a Morton code back into its x and y components.
func Deinterleave(code uint64) (x, y uint64) {
	return compact(code), compact(code >> 1)
}

// Codec maps slot indices to grid cells for one tile size class, identified
// by the base-2 logarithms of the tile's pixel width and height.
//
// The mapping is a bijection between [0, 1<<n) and an n-bit cell space for
// every n, and the first k indices always fit inside the smallest grid whose
// pixel footprint is the square returned by RequiredSizeLog2(k).
type Codec struct {
	WLog2 int
	HLog2 int
}

// diff returns the absolute size-class aspect difference in bits.
func (c Codec) diff() uint {
	if c.WLog2 >= c.HLog2 {
		return uint(c.WLog2 - c.HLog2)
	}
	return uint(c.HLog2 - c.WLog2)
}

// IndexToCell returns the grid cell occupied by the given slot index.
//
// Tiles wider than tall need extra rows to stay square in pixels, so the
// low |WLog2-HLog2| index bits go to y (and symmetrically to x for tiles
// taller than wide); the remaining bits interleave, x on even positions.
func (c Codec) IndexToCell(index int) (x, y int) {
	i := uint64(index)
	d := c.diff()
	low := i & (1<<d - 1)
	rest := i >> d
	ex, ey := Deinterleave(rest)
	if c.WLog2 >= c.HLog2 {
		return int(ex), int(ey<<d | low)
	}
	return int(ex<<d | low), int(ey)
}

// CellToIndex is the inverse of IndexToCell.
func (c Codec) CellToIndex(x, y int) int {
	d := c.diff()
	if c.WLog2 >= c.HLog2 {
		low := uint64(y) & (1<<d - 1)
		rest := Interleave(uint64(x), uint64(y)>>d)
		return int(rest<<d | low)
	}
	low := uint64(x) & (1<<d - 1)
	rest := Interleave(uint64(x)>>d, uint64(y))
	return int(rest<<d | low)
}

// RequiredSizeLog2 returns the log2 of the smallest power-of-two square, in
// pixels, that covers the first n slots of this size class.
func (c Codec) RequiredSizeLog2(n int) int {
	base := c.WLog2
	if c.HLog2 > base {
		base = c.HLog2
	}
	if n <= 1 {
		return base
	}
	rem := bits.Len(uint(n-1)) - int(c.diff())
	if rem < 0 {
		rem = 0
	}
	return base + (rem+1)/2
}
