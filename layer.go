package tileatlas

import (
	"github.com/gogpu/tileatlas/internal/morton"
)

// layer is a homogeneous grid holding tiles of one size class and border
// thickness. It corresponds to one z-slice of the backing texture array.
//
// Slots may contain gaps (nil) after removal; the in-layer grid tolerates
// fragmentation, unlike the z dimension, which the atlas keeps tightly
// packed.
type layer struct {
	atlas *Atlas
	codec morton.Codec

	border int
	z      int

	// slots holds placed tiles indexed by slot number; removed tiles leave
	// nil gaps that later insertions fill first. Trailing gaps are trimmed.
	slots     []*tile
	firstFree int
	count     int

	// maxTiles is the slot capacity imposed by the atlas texture size
	// limit.
	maxTiles int
}

// newLayer creates an empty layer for a size class; maxLog2 is the log2 of
// the largest representable texture edge.
func newLayer(a *Atlas, wLog2, hLog2, border, z, maxLog2 int) *layer {
	return &layer{
		atlas:    a,
		codec:    morton.Codec{WLog2: wLog2, HLog2: hLog2},
		border:   border,
		z:        z,
		maxTiles: 1 << ((maxLog2 - wLog2) + (maxLog2 - hLog2)),
	}
}

// matches reports whether a tile of the given size class and border may be
// placed here.
func (l *layer) matches(wLog2, hLog2, border int) bool {
	return l.codec.WLog2 == wLog2 && l.codec.HLog2 == hLog2 && l.border == border
}

// full reports whether every slot up to capacity is occupied.
func (l *layer) full() bool {
	return l.count == l.maxTiles
}

// position maps a slot index to its pixel+layer coordinate.
func (l *layer) position(index int) Position {
	x, y := l.codec.IndexToCell(index)
	return Position{X: x << l.codec.WLog2, Y: y << l.codec.HLog2, Z: l.z}
}

// requiredSizeLog2 returns the log2 of the smallest power-of-two square
// texture that covers this layer's slot range, gaps included.
func (l *layer) requiredSizeLog2() int {
	return l.codec.RequiredSizeLog2(len(l.slots))
}

// place claims the lowest free slot for t. Gaps left by removals are
// reused before the slot range grows. The caller must have checked full().
func (l *layer) place(t *tile) {
	index := l.firstFree
	if index < len(l.slots) {
		l.slots[index] = t
		// Advance to the next gap, or past the end.
		l.firstFree++
		for l.firstFree < len(l.slots) && l.slots[l.firstFree] != nil {
			l.firstFree++
		}
	} else {
		l.slots = append(l.slots, t)
		l.firstFree = len(l.slots)
	}
	l.count++
	t.layer = l
	t.index = index
	t.written = false
}

// remove frees t's slot, lowering firstFree and trimming any trailing run
// of gaps so the required texture size can shrink again.
func (l *layer) remove(t *tile) {
	l.slots[t.index] = nil
	l.count--
	if t.index < l.firstFree {
		l.firstFree = t.index
	}
	for n := len(l.slots); n > 0 && l.slots[n-1] == nil; n-- {
		l.slots = l.slots[:n-1]
	}
	if l.firstFree > len(l.slots) {
		l.firstFree = len(l.slots)
	}
	t.layer = nil
}

// draw uploads every unwritten tile through the modify callback, one call
// per available mip level, then marks it written. With freeing set it also
// drops every payload afterwards, written or not; that is the freeze pass.
func (l *layer) draw(modify ModifyFn, freeing bool) {
	for i, t := range l.slots {
		if t == nil {
			continue
		}
		if !t.written {
			pos := l.position(i)
			for m, img := range t.images {
				if img == nil || !img.HasData() {
					continue
				}
				modify(img, Position{X: pos.X >> m, Y: pos.Y >> m, Z: pos.Z}, m)
			}
			t.written = true
		}
		if freeing {
			for _, img := range t.images {
				if img != nil {
					img.Free()
				}
			}
		}
	}
}

// invalidate clears every tile's written flag. Called after the backing
// store reports an actual reallocation, which loses prior contents.
func (l *layer) invalidate() {
	for _, t := range l.slots {
		if t != nil {
			t.written = false
		}
	}
}
