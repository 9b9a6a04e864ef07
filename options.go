package tileatlas

// Default atlas limits.
const (
	// DefaultMaxTextureSize bounds the composite texture's edge length.
	// Matches the guaranteed-minimum 2D texture dimension of current GPUs.
	DefaultMaxTextureSize = 16384

	// DefaultMaxLayerCount bounds the number of size-class layers, which is
	// the depth of the backing texture array.
	DefaultMaxLayerCount = 256

	// DefaultMipLevels is the number of mip levels requested from the
	// backing store.
	DefaultMipLevels = 1
)

// Option configures an Atlas during creation.
//
// Example:
//
//	// Default limits
//	atlas, err := tileatlas.New(store.Resize, store.Modify)
//
//	// Small atlas for a fixed tile budget
//	atlas, err := tileatlas.New(store.Resize, store.Modify,
//	    tileatlas.WithMaxTextureSize(256),
//	    tileatlas.WithMaxLayerCount(4))
type Option func(*config)

// config holds optional Atlas configuration.
type config struct {
	maxTextureSize int
	maxLayerCount  int
	mipLevels      int
}

// defaultConfig returns the default atlas configuration.
func defaultConfig() config {
	return config{
		maxTextureSize: DefaultMaxTextureSize,
		maxLayerCount:  DefaultMaxLayerCount,
		mipLevels:      DefaultMipLevels,
	}
}

// validate checks the configured limits.
func (c *config) validate() error {
	if c.maxTextureSize < 1 {
		return &LimitError{Field: "MaxTextureSize", Reason: "must be positive"}
	}
	if c.maxLayerCount < 1 {
		return &LimitError{Field: "MaxLayerCount", Reason: "must be positive"}
	}
	if c.mipLevels < 1 {
		return &LimitError{Field: "MipLevels", Reason: "must be at least 1"}
	}
	return nil
}

// WithMaxTextureSize limits the edge length of the composite texture.
// Tiles whose padded power-of-two cell exceeds this in either dimension are
// rejected by Add.
func WithMaxTextureSize(size int) Option {
	return func(c *config) {
		c.maxTextureSize = size
	}
}

// WithMaxLayerCount limits how many size-class layers the atlas may create.
func WithMaxLayerCount(count int) Option {
	return func(c *config) {
		c.maxLayerCount = count
	}
}

// WithMipLevels sets the mip level count requested from the backing store.
// Tiles added via AddMipmapped may carry up to this many levels.
func WithMipLevels(levels int) Option {
	return func(c *config) {
		c.mipLevels = levels
	}
}
