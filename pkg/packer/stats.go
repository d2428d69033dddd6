package packer

import (
	"image"

	"gonum.org/v1/gonum/floats"
)

// Stats holds the normalized red channel extrema of a converted image, a
// quick sanity check that the source spans the range the quantizer expects.
type Stats struct {
	RedMin float64
	RedMax float64
}

func channelStats(m *image.NRGBA) Stats {
	b := m.Bounds()
	if b.Dx()*b.Dy() == 0 {
		return Stats{}
	}

	red := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			red = append(red, float64(m.Pix[i])/255)
			i += 4
		}
	}

	return Stats{
		RedMin: floats.Min(red),
		RedMax: floats.Max(red),
	}
}
