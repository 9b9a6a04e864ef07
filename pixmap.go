package tileatlas

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap is a rectangular RGBA8 pixel buffer. It is the canonical tile
// payload: it implements [Image], [PixelSource], image.Image and
// draw.Image, so it works both as atlas input and as a CPU compositing
// target.
//
// After Free the dimensions remain valid but all pixel accessors see an
// empty buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel; nil after Free
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Size implements [Image].
func (p *Pixmap) Size() (w, h int) {
	return p.width, p.height
}

// Data returns the raw pixel data (RGBA format), or nil after Free.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// HasData implements [Image].
func (p *Pixmap) HasData() bool {
	return p.data != nil
}

// Free implements [Image]: it drops the payload but keeps the dimensions.
func (p *Pixmap) Free() {
	p.data = nil
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates and
// freed pixmaps are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c color.RGBA) {
	if p.data == nil || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Out-of-bounds coordinates
// and freed pixmaps return transparent black.
func (p *Pixmap) GetPixel(x, y int) color.RGBA {
	if p.data == nil || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Fill sets every pixel to the given color.
func (p *Pixmap) Fill(c color.RGBA) {
	for i := 0; i+3 < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// SubRect returns a copy of the pixels inside r, clipped to the pixmap
// bounds.
func (p *Pixmap) SubRect(r image.Rectangle) *Pixmap {
	r = r.Intersect(p.Bounds())
	sub := NewPixmap(r.Dx(), r.Dy())
	draw.Copy(sub, image.Point{}, p, r, draw.Src, nil)
	return sub
}

// Bordered returns a copy grown by border pixels on every side, with the
// padding taken from the opposite edge of the image. Sampling the result
// with clamped texture coordinates then behaves like seamless wrapping,
// which is what atlas tiles placed next to unrelated neighbors need.
//
// A non-positive border returns a plain copy.
func (p *Pixmap) Bordered(border int) *Pixmap {
	if border <= 0 {
		return p.SubRect(p.Bounds())
	}
	w, h := p.width, p.height
	if border > w {
		border = w
	}
	if border > h {
		border = h
	}
	dst := NewPixmap(w+2*border, h+2*border)

	// Source column/row spans for the left/center/right (top/center/bottom)
	// bands. Border bands wrap around to the opposite edge.
	xs := [3][2]int{{w - border, w}, {0, w}, {0, border}}
	ys := [3][2]int{{h - border, h}, {0, h}, {0, border}}

	dx := 0
	for _, sx := range xs {
		dy := 0
		for _, sy := range ys {
			sr := image.Rect(sx[0], sy[0], sx[1], sy[1])
			draw.Copy(dst, image.Pt(dx, dy), p, sr, draw.Src, nil)
			dy += sr.Dy()
		}
		dx += sx[1] - sx[0]
	}
	return dst
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	draw.Copy(pm, image.Point{}, img, bounds, draw.Src, nil)
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}
