package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// SizeError reports an image whose dimensions cannot be stored in the
// single-byte header fields.
type SizeError struct {
	Width  int
	Height int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("bitmap: image %dx%d exceeds %d pixels per side", e.Width, e.Height, MaxSide)
}

// Encode writes m to w as a packed asset: the height and width bytes followed
// by the big-endian pixel payload. Images wider or taller than MaxSide are
// rejected with *SizeError rather than silently truncating the header.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() > MaxSide || b.Dy() > MaxSide {
		return &SizeError{Width: b.Dx(), Height: b.Dy()}
	}

	buf := make([]byte, 2, 2+2*b.Dx()*b.Dy())
	buf[0] = uint8(b.Dy())
	buf[1] = uint8(b.Dx())

	_, err := w.Write(appendPixels(buf, m))
	return err
}

// Pixels returns the packed payload for m in row-major order, without the
// dimension header. The screen link sends these bytes after a window header.
func Pixels(m image.Image) []byte {
	b := m.Bounds()
	return appendPixels(make([]byte, 0, 2*b.Dx()*b.Dy()), m)
}

func appendPixels(buf []byte, m image.Image) []byte {
	b := m.Bounds()
	switch src := m.(type) {
	case *RGB565:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			buf = append(buf, src.Pix[i:i+2*b.Dx()]...)
		}
	case *image.NRGBA:
		// Raw Pix bytes carry the stored non-premultiplied channel values, so
		// reading them quantizes the true RGB and drops alpha outright.
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				c := Pack(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
				buf = append(buf, uint8(c>>8), uint8(c))
				i += 4
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				n := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				c := Pack(n.R, n.G, n.B)
				buf = append(buf, uint8(c>>8), uint8(c))
			}
		}
	}
	return buf
}
