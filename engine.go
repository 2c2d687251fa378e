package colorkey

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
)

// Engine runs the color key transform and reports finished files to Out.
type Engine struct {
	Out io.Writer
}

// NewEngine constructs an Engine that reports to standard output.
func NewEngine() *Engine {
	return &Engine{Out: os.Stdout}
}

// MakeTransparent applies the color key to img with a fresh engine.
func MakeTransparent(img image.Image, key Key) (*image.NRGBA, error) {
	return NewEngine().MakeTransparent(img, key)
}

// MakeTransparent returns a copy of img in which every pixel matching key is
// replaced by the key color at zero alpha. Other pixels keep their values,
// alpha included. Sources without an alpha channel come out fully opaque.
// KeyNone produces a plain copy. img is never modified.
func (e *Engine) MakeTransparent(img image.Image, key Key) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image provided")
	}

	out := cloneToNRGBA(img)

	if match := key.matcher(); match != nil {
		applyColorKey(out, match, key.Transparent())
	}

	return out, nil
}

// cloneToNRGBA copies the image into a non-premultiplied 8-bit buffer. Values
// that are already NRGBA are copied as is; going through draw.Draw would
// round partially transparent pixels via premultiplied alpha.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)

	if n, ok := src.(*image.NRGBA); ok {
		rowLen := bounds.Dx() * 4
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			copy(dst.Pix[dst.PixOffset(bounds.Min.X, y):][:rowLen], n.Pix[n.PixOffset(bounds.Min.X, y):][:rowLen])
		}
		return dst
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
		}
	}
	return dst
}

// applyColorKey rewrites matched pixels in place.
func applyColorKey(img *image.NRGBA, match func(r, g, b uint8) bool, keyed color.NRGBA) {
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.Pix[offset : offset+4 : offset+4]
			if match(px[0], px[1], px[2]) {
				px[0], px[1], px[2], px[3] = keyed.R, keyed.G, keyed.B, keyed.A
			}
			offset += 4
		}
	}
}
