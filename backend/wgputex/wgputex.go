// Package wgputex provides a tileatlas backing store over gogpu/wgpu: the
// composite texture is a 2D texture array created on a HAL device and
// written through the queue with sub-rect offsets.
//
// The store owns the texture and recreates it whenever the atlas requests
// a different geometry; bind the Texture() result into bind groups after
// every atlas update that may have resized.
package wgputex

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/tileatlas"
)

// Device is the subset of hal.Device the store needs.
type Device interface {
	CreateTexture(*hal.TextureDescriptor) (hal.Texture, error)
	DestroyTexture(hal.Texture)
}

// Queue is the subset of hal.Queue the store needs.
type Queue interface {
	WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D)
}

// Option configures a Store during creation.
type Option func(*Store)

// WithFormat sets the texture format. Default: RGBA8Unorm. The format must
// be 4 bytes per pixel; tile payloads provide RGBA8 rows.
func WithFormat(format gputypes.TextureFormat) Option {
	return func(s *Store) {
		s.format = format
	}
}

// WithUsage overrides the texture usage flags. Default:
// TextureBinding | CopyDst.
func WithUsage(usage gputypes.TextureUsage) Option {
	return func(s *Store) {
		s.usage = usage
	}
}

// WithLabel sets the GPU debug label prefix.
func WithLabel(label string) Option {
	return func(s *Store) {
		s.label = label
	}
}

// Store manages the atlas texture array on a GPU device.
//
// The atlas callback protocol carries no error channel, so creation
// failures are recorded instead of returned: Err reports the first one and
// uploads are skipped until the next successful resize.
type Store struct {
	device Device
	queue  Queue

	format gputypes.TextureFormat
	usage  gputypes.TextureUsage
	label  string

	tex    hal.Texture
	size   int
	layers int
	mips   int

	err error
}

// New creates a store on the given device and queue.
func New(device Device, queue Queue, opts ...Option) *Store {
	s := &Store{
		device: device,
		queue:  queue,
		format: gputypes.TextureFormatRGBA8Unorm,
		usage:  gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		label:  "tileatlas",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resize implements the atlas resize callback. It destroys and recreates
// the texture array when the requested geometry differs from the current
// one and reports whether it did.
func (s *Store) Resize(size, layers, mipLevels int) bool {
	if s.tex != nil && size == s.size && layers == s.layers && mipLevels == s.mips {
		return false
	}
	s.Release()

	tex, err := s.device.CreateTexture(&hal.TextureDescriptor{
		Label: s.label + "_array",
		Size: hal.Extent3D{
			Width:              uint32(size),
			Height:             uint32(size),
			DepthOrArrayLayers: uint32(layers),
		},
		MipLevelCount: uint32(mipLevels),
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        s.format,
		Usage:         s.usage,
	})
	if err != nil {
		s.err = err
		tileatlas.Logger().Warn("wgputex: texture creation failed",
			"size", size, "layers", layers, "err", err)
		return true
	}
	s.tex = tex
	s.size = size
	s.layers = layers
	s.mips = mipLevels
	s.err = nil
	return true
}

// Modify implements the atlas modify callback: it uploads the tile's RGBA8
// rows at the given offset and mip level. Payloads that do not implement
// tileatlas.PixelSource are skipped with a warning.
func (s *Store) Modify(img tileatlas.Image, pos tileatlas.Position, mipLevel int) {
	if s.tex == nil {
		return
	}
	src, ok := img.(tileatlas.PixelSource)
	if !ok {
		tileatlas.Logger().Warn("wgputex: payload does not expose raw pixels, upload skipped",
			"pos", pos, "mipLevel", mipLevel)
		return
	}
	w, h := src.Size()
	s.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  s.tex,
			MipLevel: uint32(mipLevel),
			Origin:   hal.Origin3D{X: uint32(pos.X), Y: uint32(pos.Y), Z: uint32(pos.Z)},
		},
		src.Data(),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(w * 4),
			RowsPerImage: uint32(h),
		},
		&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)
}

// Texture returns the current texture array, or nil before the first
// resize or after a failed one.
func (s *Store) Texture() hal.Texture { return s.tex }

// Size returns the current texture edge length.
func (s *Store) Size() int { return s.size }

// Layers returns the current array layer count.
func (s *Store) Layers() int { return s.layers }

// Err returns the error of the most recent failed texture creation, or
// nil.
func (s *Store) Err() error { return s.err }

// Release destroys the texture. The store stays usable; the next Resize
// recreates it.
func (s *Store) Release() {
	if s.tex != nil {
		s.device.DestroyTexture(s.tex)
		s.tex = nil
		s.size = 0
		s.layers = 0
		s.mips = 0
	}
}
